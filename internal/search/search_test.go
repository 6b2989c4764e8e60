package search

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testIDs = []string{
	"minecraft:diamond_sword",
	"minecraft:iron_sword",
	"minecraft:potion",
	"minecraft:potion.swiftness",
	"minecraft:stone",
	"mymod:Ruby_Block",
}

func titleName(id string) string {
	names := map[string]string{
		"minecraft:diamond_sword":    "Diamond Sword",
		"minecraft:iron_sword":       "Iron Sword",
		"minecraft:potion":           "ポーション",
		"minecraft:potion.swiftness": "ポーション: 移動速度上昇",
		"minecraft:stone":            "石",
		"mymod:Ruby_Block":           "Ruby Block",
	}
	return names[id]
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"empty query yields everything", "", testIDs},
		{"raw id match", "sword", []string{"minecraft:diamond_sword", "minecraft:iron_sword"}},
		{"case insensitive", "SWORD", []string{"minecraft:diamond_sword", "minecraft:iron_sword"}},
		{"namespace query", "minecraft:", testIDs[:5]},
		{"formatted name with space", "diamond s", []string{"minecraft:diamond_sword"}},
		{"localized name", "石", []string{"minecraft:stone"}},
		{"localized variant", "移動", []string{"minecraft:potion.swiftness"}},
		{"mixed case id", "ruby_block", []string{"mymod:Ruby_Block"}},
		{"no match", "netherite", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(Filter(tt.query, slices.Values(testIDs), titleName))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFilter_Subsequence(t *testing.T) {
	for _, q := range []string{"", "o", "potion", "sword", "zzz"} {
		got := slices.Collect(Filter(q, slices.Values(testIDs), titleName))
		// every result appears in the input, in input order
		last := -1
		for _, id := range got {
			i := slices.Index(testIDs, id)
			assert.Greater(t, i, last, "query %q", q)
			last = i
		}
	}
}

func TestFilter_Idempotent(t *testing.T) {
	once := slices.Collect(Filter("sword", slices.Values(testIDs), titleName))
	twice := slices.Collect(Filter("sword", slices.Values(once), titleName))
	assert.Equal(t, once, twice)
}

func TestFilter_Restartable(t *testing.T) {
	seq := Filter("potion", slices.Values(testIDs), titleName)
	assert.Equal(t, slices.Collect(seq), slices.Collect(seq))
}

func TestFilter_Lazy(t *testing.T) {
	calls := 0
	format := func(id string) string {
		calls++
		return strings.ToUpper(id)
	}
	for range Filter("minecraft", slices.Values(testIDs), format) {
		break
	}
	assert.Zero(t, calls, "raw id matched first, the formatter is never needed")
}

func TestFilter_NilFormat(t *testing.T) {
	got := slices.Collect(Filter("stone", slices.Values(testIDs), nil))
	assert.Equal(t, []string{"minecraft:stone"}, got)
}

func TestCollect(t *testing.T) {
	all := Filter("", slices.Values(testIDs), nil)
	assert.Len(t, Collect(all, 0), len(testIDs))
	assert.Equal(t, testIDs[:2], Collect(all, 2))
	assert.Equal(t, []string{}, Collect(Filter("zzz", slices.Values(testIDs), nil), 5))
}

func BenchmarkFilter(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for range Filter("sword", slices.Values(testIDs), titleName) {
		}
	}
}
