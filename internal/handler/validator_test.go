package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testQuery struct {
	ID       string `query:"id" validate:"required,max=256,nocontrol"`
	Category string `query:"cat" validate:"category"`
	Limit    int    `query:"limit" validate:"min=1,max=500"`
}

func TestValidator_IdentifierValidation(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"namespaced id", "minecraft:diamond_sword", false},
		{"embedded variant", "minecraft:potion.swiftness", false},
		{"no namespace", "stone", false},
		{"non ascii", "mymod:ダイヤ", false},
		{"exactly max length", strings.Repeat("a", 256), false},

		{"empty", "", true},
		{"over max length", strings.Repeat("a", 257), true},
		{"with newline", "minecraft:stone\n", true},
		{"with tab", "minecraft:\tstone", true},
		{"with null byte", "minecraft:\x00stone", true},
		{"with escape", "minecraft:\x1bstone", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(testQuery{ID: tt.id, Limit: 10})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_CategoryValidation(t *testing.T) {
	v := GetValidator()

	for _, c := range []string{"", "all", "building_blocks", "brewing"} {
		assert.NoError(t, v.ValidateStruct(testQuery{ID: "x", Category: c, Limit: 1}), c)
	}
	for _, c := range []string{"Brewing", "weapons", " all"} {
		assert.Error(t, v.ValidateStruct(testQuery{ID: "x", Category: c, Limit: 1}), c)
	}
}

func TestFormatValidationError(t *testing.T) {
	v := GetValidator()

	err := v.ValidateStruct(testQuery{ID: "", Category: "weapons", Limit: 0})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, map[string]string{
		"id":    ValidationMsgRequired,
		"cat":   ValidationMsgCategory,
		"limit": "Must be at least 1",
	}, fields)

	err = v.ValidateStruct(testQuery{ID: "a\nb", Limit: 501})
	fields = FormatValidationError(err)
	assert.Equal(t, ValidationMsgNoControl, fields["id"])
	assert.Equal(t, "Must be between 1 and 500", fields["limit"])

	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": ValidationMsgFormat}, FormatValidationError(assert.AnError))
}
