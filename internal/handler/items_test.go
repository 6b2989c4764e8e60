package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MinecraftItemIcon_Go/internal/catalogue"
	"github.com/osse101/MinecraftItemIcon_Go/internal/fallback"
	"github.com/osse101/MinecraftItemIcon_Go/internal/itemicon"
	"github.com/osse101/MinecraftItemIcon_Go/internal/localization"
	"github.com/osse101/MinecraftItemIcon_Go/internal/texture"
)

func newTestEngine(t *testing.T) *itemicon.Engine {
	t.Helper()
	cat, err := catalogue.Default()
	require.NoError(t, err)
	loc, err := localization.Default()
	require.NoError(t, err)
	engine, err := itemicon.New(cat, loc, texture.DefaultVersion)
	require.NoError(t, err)
	return engine
}

func doGet(t *testing.T, h http.HandlerFunc, path string, params url.Values) *httptest.ResponseRecorder {
	t.Helper()
	target := path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHandleResolveTexture(t *testing.T) {
	engine := newTestEngine(t)
	h := HandleResolveTexture(engine, "https://cdn.example/textures")

	tests := []struct {
		name         string
		params       url.Values
		expectedCode int
		expectedPath string
	}{
		{
			name:         "plain item uses configured base url",
			params:       url.Values{"id": {"minecraft:diamond_sword"}},
			expectedCode: http.StatusOK,
			expectedPath: "https://cdn.example/textures/1.16.1/items/minecraft_diamond_sword.png",
		},
		{
			name:         "explicit empty base url is root relative",
			params:       url.Values{"id": {"minecraft:shulker_box"}, "base_url": {""}},
			expectedCode: http.StatusOK,
			expectedPath: "/1.16.1/items/minecraft_purple_shulker_box.png",
		},
		{
			name:         "metadata variant",
			params:       url.Values{"id": {"minecraft:potion"}, "variant": {"minecraft:strong_swiftness"}, "base_url": {"/static"}},
			expectedCode: http.StatusOK,
			expectedPath: "/static/1.16.1/items/minecraft_potion_swiftness.png",
		},
		{
			name:         "embedded variant wins",
			params:       url.Values{"id": {"minecraft:splash_potion.poison"}, "variant": {"minecraft:swiftness"}, "base_url": {""}},
			expectedCode: http.StatusOK,
			expectedPath: "/1.16.1/items/minecraft_splash_potion_poison.png",
		},
		{
			name:         "missing id",
			params:       url.Values{},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "control characters rejected",
			params:       url.Values{"id": {"minecraft:stone\n"}},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(t, h, "/api/v1/items/texture", tt.params)
			require.Equal(t, tt.expectedCode, w.Code, w.Body.String())
			if tt.expectedCode != http.StatusOK {
				resp := decodeBody[ValidationErrorResponse](t, w)
				assert.Equal(t, ErrMsgInvalidRequestSummary, resp.Error)
				assert.Contains(t, resp.Fields, "id")
				return
			}
			resp := decodeBody[TextureResponse](t, w)
			assert.Equal(t, tt.params.Get("id"), resp.ID)
			assert.Equal(t, tt.expectedPath, resp.Path)
		})
	}
}

func TestHandleFormatName(t *testing.T) {
	h := HandleFormatName(newTestEngine(t))

	tests := []struct {
		id       string
		expected string
	}{
		{"minecraft:diamond_sword", "ダイヤモンドの剣"},
		{"minecraft:target", "Target"},
		{"mymod:copper_widget", "Copper Widget"},
		{"minecraft:potion.swiftness", "ポーション: 移動速度上昇"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			w := doGet(t, h, "/api/v1/items/name", url.Values{"id": {tt.id}})
			require.Equal(t, http.StatusOK, w.Code)
			resp := decodeBody[NameResponse](t, w)
			assert.Equal(t, tt.expected, resp.Name)
		})
	}

	t.Run("too long", func(t *testing.T) {
		long := make([]byte, 257)
		for i := range long {
			long[i] = 'a'
		}
		w := doGet(t, h, "/api/v1/items/name", url.Values{"id": {string(long)}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeBody[ValidationErrorResponse](t, w)
		assert.Equal(t, "Must be at most 256 characters", resp.Fields["id"])
	})
}

func TestHandleParseIdentifier(t *testing.T) {
	h := HandleParseIdentifier(newTestEngine(t))

	w := doGet(t, h, "/api/v1/items/parse", url.Values{"id": {"minecraft:lingering_potion.long_fire_resistance"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"base_id":"minecraft:lingering_potion","variant":"minecraft:long_fire_resistance"}`, w.Body.String())

	w = doGet(t, h, "/api/v1/items/parse", url.Values{"id": {"minecraft:stone"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"base_id":"minecraft:stone"}`, w.Body.String())
}

func TestHandleSearch(t *testing.T) {
	engine := newTestEngine(t)
	h := HandleSearch(engine, 50, "")

	t.Run("limit applies in catalogue order", func(t *testing.T) {
		w := doGet(t, h, "/api/v1/items/search", url.Values{"q": {"DIAMOND"}, "limit": {"3"}})
		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody[SearchResponse](t, w)
		assert.Equal(t, "DIAMOND", resp.Query)
		require.Equal(t, 3, resp.Count)
		assert.Equal(t, "minecraft:diamond_block", resp.Items[0].ID)
		assert.Equal(t, "minecraft:diamond", resp.Items[1].ID)
		assert.Equal(t, "minecraft:diamond_pickaxe", resp.Items[2].ID)
		assert.Equal(t, "/1.16.1/items/minecraft_diamond.png", resp.Items[1].Texture)
		assert.NotEmpty(t, resp.Items[1].Name)
	})

	t.Run("localized names are searchable", func(t *testing.T) {
		w := doGet(t, h, "/api/v1/items/search", url.Values{"q": {"ダイヤモンドの剣"}})
		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody[SearchResponse](t, w)
		require.Equal(t, 1, resp.Count)
		assert.Equal(t, "minecraft:diamond_sword", resp.Items[0].ID)
	})

	t.Run("no match gives empty list", func(t *testing.T) {
		w := doGet(t, h, "/api/v1/items/search", url.Values{"q": {"zzzz-nothing"}})
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"query":"zzzz-nothing","count":0,"items":[]}`, w.Body.String())
	})

	t.Run("empty query uses default limit", func(t *testing.T) {
		w := doGet(t, h, "/api/v1/items/search", nil)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody[SearchResponse](t, w)
		assert.Equal(t, 50, resp.Count)
	})

	t.Run("invalid limit", func(t *testing.T) {
		for _, limit := range []string{"0", "501", "abc"} {
			w := doGet(t, h, "/api/v1/items/search", url.Values{"limit": {limit}})
			assert.Equal(t, http.StatusBadRequest, w.Code, limit)
			resp := decodeBody[ValidationErrorResponse](t, w)
			assert.Contains(t, resp.Fields, "limit", limit)
		}
	})
}

func TestHandleFallback(t *testing.T) {
	h := HandleFallback(newTestEngine(t))

	w := doGet(t, h, "/api/v1/items/fallback", url.Values{"id": {"minecraft:splash_potion"}})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[FallbackResponse](t, w)
	assert.Equal(t, fallback.PotionColor, resp.Color)
	assert.Equal(t, fallback.Emoji("minecraft:splash_potion"), resp.Emoji)
}

func TestHandleGetEntry(t *testing.T) {
	h := HandleGetEntry(newTestEngine(t))

	t.Run("found", func(t *testing.T) {
		w := doGet(t, h, "/api/v1/items/entry", url.Values{"id": {"minecraft:diamond_sword"}})
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":"minecraft:diamond_sword","name":"Diamond Sword","category":"combat","stack_size":1,"craftable":true}`, w.Body.String())
	})

	t.Run("expanded potion entry", func(t *testing.T) {
		w := doGet(t, h, "/api/v1/items/entry", url.Values{"id": {"minecraft:potion.swiftness"}})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"variant":"minecraft:swiftness"`)
	})

	t.Run("unknown item is 404", func(t *testing.T) {
		w := doGet(t, h, "/api/v1/items/entry", url.Values{"id": {"minecraft:unobtainium"}})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"`+ErrMsgItemNotFoundError+`"}`, w.Body.String())
	})
}
