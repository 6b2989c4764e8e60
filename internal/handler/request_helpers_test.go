package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodeTarget struct {
	ID       string `query:"id" validate:"max=256"`
	BaseURL  string `query:"base_url"`
	Limit    int    `query:"limit" validate:"min=1,max=500"`
	Strict   bool   `query:"strict"`
	Internal string
}

func decodeQuery(t *testing.T, params url.Values, into *decodeTarget) (*httptest.ResponseRecorder, error) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/?"+params.Encode(), nil)
	w := httptest.NewRecorder()
	return w, DecodeAndValidateQuery(req, w, into, "Decode test")
}

func TestDecodeAndValidateQuery(t *testing.T) {
	t.Run("absent parameters keep defaults", func(t *testing.T) {
		got := decodeTarget{Limit: 25, BaseURL: "/static"}
		_, err := decodeQuery(t, url.Values{"id": {"minecraft:stone"}}, &got)
		require.NoError(t, err)
		assert.Equal(t, decodeTarget{ID: "minecraft:stone", BaseURL: "/static", Limit: 25}, got)
	})

	t.Run("explicit empty string overrides default", func(t *testing.T) {
		got := decodeTarget{Limit: 25, BaseURL: "/static"}
		_, err := decodeQuery(t, url.Values{"base_url": {""}}, &got)
		require.NoError(t, err)
		assert.Empty(t, got.BaseURL)
	})

	t.Run("typed fields are parsed", func(t *testing.T) {
		got := decodeTarget{Limit: 25}
		_, err := decodeQuery(t, url.Values{"limit": {"7"}, "strict": {"true"}}, &got)
		require.NoError(t, err)
		assert.Equal(t, 7, got.Limit)
		assert.True(t, got.Strict)
	})

	t.Run("untagged fields are not bound", func(t *testing.T) {
		got := decodeTarget{Limit: 25}
		_, err := decodeQuery(t, url.Values{"Internal": {"x"}}, &got)
		require.NoError(t, err)
		assert.Empty(t, got.Internal)
	})

	t.Run("every malformed parameter is reported", func(t *testing.T) {
		got := decodeTarget{Limit: 25}
		w, err := decodeQuery(t, url.Values{"limit": {"ten"}, "strict": {"maybe"}}, &got)
		require.Error(t, err)
		require.Equal(t, http.StatusBadRequest, w.Code)

		resp := decodeBody[ValidationErrorResponse](t, w)
		assert.Equal(t, ErrMsgInvalidRequestSummary, resp.Error)
		assert.Equal(t, map[string]string{
			"limit":  "Invalid limit query parameter",
			"strict": "Invalid strict query parameter",
		}, resp.Fields)
	})

	t.Run("validation runs after decoding", func(t *testing.T) {
		got := decodeTarget{Limit: 25}
		w, err := decodeQuery(t, url.Values{"limit": {"0"}}, &got)
		require.Error(t, err)
		resp := decodeBody[ValidationErrorResponse](t, w)
		assert.Equal(t, "Must be at least 1", resp.Fields["limit"])
	})

	t.Run("non pointer target", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?id=x", nil)
		w := httptest.NewRecorder()
		err := DecodeAndValidateQuery(req, w, decodeTarget{}, "Decode test")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeBody[ValidationErrorResponse](t, w)
		assert.Equal(t, map[string]string{"error": ValidationMsgFormat}, resp.Fields)
	})
}
