package handler

import (
	"iter"
	"net/http"

	"github.com/osse101/MinecraftItemIcon_Go/internal/domain"
	"github.com/osse101/MinecraftItemIcon_Go/internal/fallback"
	"github.com/osse101/MinecraftItemIcon_Go/internal/identifier"
	"github.com/osse101/MinecraftItemIcon_Go/internal/itemicon"
	"github.com/osse101/MinecraftItemIcon_Go/internal/logger"
	"github.com/osse101/MinecraftItemIcon_Go/internal/metrics"
	"github.com/osse101/MinecraftItemIcon_Go/internal/search"
)

// ItemEngine is the subset of itemicon.Engine the item handlers use
type ItemEngine interface {
	ResolveTexturePath(id string, meta itemicon.Metadata, baseURL string) string
	FormatDisplayName(id string) string
	SearchCatalogue(query string) iter.Seq[string]
	ParseVariantIdentifier(id string) identifier.Parsed
	Entry(id string) (domain.CatalogueEntry, error)
	Fallback(id string) fallback.Visual
}

// TextureRequest holds the query of a texture lookup
type TextureRequest struct {
	ID      string `query:"id" validate:"required,max=256,nocontrol"`
	Variant string `query:"variant" validate:"max=256,nocontrol"`
	BaseURL string `query:"base_url" validate:"max=1024,nocontrol"`
}

// TextureResponse is the resolved texture location of an item
type TextureResponse struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

// ItemRequest holds the query of single-item lookups
type ItemRequest struct {
	ID string `query:"id" validate:"required,max=256,nocontrol"`
}

// NameResponse is the display name of an item
type NameResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FallbackResponse carries the placeholder visuals of an item
type FallbackResponse struct {
	ID    string `json:"id"`
	Color string `json:"color"`
	Emoji string `json:"emoji"`
}

// SearchRequest holds the query of a catalogue search
type SearchRequest struct {
	Query string `query:"q" validate:"max=100,nocontrol"`
	Limit int    `query:"limit" validate:"min=1,max=500"`
}

// SearchItem is one search hit
type SearchItem struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Texture string `json:"texture"`
}

// SearchResponse lists the search hits in catalogue order
type SearchResponse struct {
	Query string       `json:"query"`
	Count int          `json:"count"`
	Items []SearchItem `json:"items"`
}

// HandleResolveTexture resolves the texture path of an item.
// base_url falls back to defaultBaseURL only when absent; an explicit empty
// value yields a root-relative path.
// @Summary Resolve texture path
// @Description Returns the texture image path for an item identifier, with an optional metadata variant
// @Tags items
// @Produce json
// @Param id query string true "Item identifier, e.g. minecraft:potion.swiftness"
// @Param variant query string false "Metadata variant, e.g. minecraft:swiftness"
// @Param base_url query string false "Texture base URL"
// @Success 200 {object} TextureResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/items/texture [get]
func HandleResolveTexture(engine ItemEngine, defaultBaseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := TextureRequest{BaseURL: defaultBaseURL}
		if err := DecodeAndValidateQuery(r, w, &req, "Resolve texture"); err != nil {
			return
		}

		path := engine.ResolveTexturePath(req.ID, itemicon.Metadata{Variant: req.Variant}, req.BaseURL)
		embedded := engine.ParseVariantIdentifier(req.ID).HasVariant()
		metrics.RecordTextureResolution(embedded, req.Variant)

		LogRequestFields(logger.FromContext(r.Context()), "id", req.ID, "variant", req.Variant, "path", path)
		respondJSON(w, http.StatusOK, TextureResponse{ID: req.ID, Path: path})
	}
}

// HandleFormatName returns the display name of an item
// @Summary Format display name
// @Description Returns the localized name when one exists, otherwise a title-cased name
// @Tags items
// @Produce json
// @Param id query string true "Item identifier"
// @Success 200 {object} NameResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/items/name [get]
func HandleFormatName(engine ItemEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ItemRequest
		if err := DecodeAndValidateQuery(r, w, &req, "Format name"); err != nil {
			return
		}

		metrics.NameFormats.Inc()
		respondJSON(w, http.StatusOK, NameResponse{ID: req.ID, Name: engine.FormatDisplayName(req.ID)})
	}
}

// HandleParseIdentifier splits an identifier into its base item and embedded variant
// @Summary Parse variant identifier
// @Tags items
// @Produce json
// @Param id query string true "Item identifier"
// @Success 200 {object} identifier.Parsed
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/items/parse [get]
func HandleParseIdentifier(engine ItemEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ItemRequest
		if err := DecodeAndValidateQuery(r, w, &req, "Parse identifier"); err != nil {
			return
		}
		respondJSON(w, http.StatusOK, engine.ParseVariantIdentifier(req.ID))
	}
}

// HandleSearch searches the catalogue
// @Summary Search the item catalogue
// @Description Case-insensitive substring match on the identifier, the identifier without namespace, or the display name
// @Tags items
// @Produce json
// @Param q query string false "Search text; empty returns the whole catalogue"
// @Param limit query int false "Maximum number of results"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/items/search [get]
func HandleSearch(engine ItemEngine, defaultLimit int, textureBaseURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := SearchRequest{Limit: defaultLimit}
		if err := DecodeAndValidateQuery(r, w, &req, "Search items"); err != nil {
			return
		}

		ids := search.Collect(engine.SearchCatalogue(req.Query), req.Limit)
		items := make([]SearchItem, 0, len(ids))
		for _, id := range ids {
			items = append(items, SearchItem{
				ID:      id,
				Name:    engine.FormatDisplayName(id),
				Texture: engine.ResolveTexturePath(id, itemicon.Metadata{}, textureBaseURL),
			})
		}
		metrics.RecordSearch(len(items))

		logger.FromContext(r.Context()).Debug(LogMsgSearchCompleted, "query", req.Query, "results", len(items))
		respondJSON(w, http.StatusOK, SearchResponse{Query: req.Query, Count: len(items), Items: items})
	}
}

// HandleFallback returns the placeholder color and emoji shown when a texture fails to load
// @Summary Fallback visuals
// @Tags items
// @Produce json
// @Param id query string true "Item identifier"
// @Success 200 {object} FallbackResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/items/fallback [get]
func HandleFallback(engine ItemEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ItemRequest
		if err := DecodeAndValidateQuery(r, w, &req, "Fallback visuals"); err != nil {
			return
		}
		visual := engine.Fallback(req.ID)
		respondJSON(w, http.StatusOK, FallbackResponse{ID: req.ID, Color: visual.Color, Emoji: visual.Emoji})
	}
}

// HandleGetEntry returns the catalogue entry of an item
// @Summary Catalogue entry
// @Tags items
// @Produce json
// @Param id query string true "Item identifier"
// @Success 200 {object} domain.CatalogueEntry
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/entry [get]
func HandleGetEntry(engine ItemEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ItemRequest
		if err := DecodeAndValidateQuery(r, w, &req, "Get entry"); err != nil {
			return
		}

		entry, err := engine.Entry(req.ID)
		if err != nil {
			respondServiceError(w, r, ErrMsgEntryLookupFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, entry)
	}
}
