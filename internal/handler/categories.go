package handler

import (
	"iter"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/MinecraftItemIcon_Go/internal/domain"
)

// CategoryEngine is the subset of itemicon.Engine the category handlers use
type CategoryEngine interface {
	Categories() []domain.CategoryDefinition
	ItemsByCategory(category domain.Category) (iter.Seq[domain.CatalogueEntry], error)
	CraftableItemsByCategory(category domain.Category) (iter.Seq[domain.CatalogueEntry], error)
}

// CategoryItemsRequest holds the path and query of a category listing
type CategoryItemsRequest struct {
	Category  string `query:"-" validate:"required,category"`
	Craftable bool   `query:"craftable"`
}

// HandleListCategories lists the catalogue categories in display order
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {object} ListResponse[domain.CategoryDefinition]
// @Router /api/v1/categories [get]
func HandleListCategories(engine CategoryEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, newListResponse(engine.Categories()))
	}
}

// HandleCategoryItems lists the entries of one category; "all" lists every entry
// @Summary List category items
// @Tags categories
// @Produce json
// @Param category path string true "Category id, e.g. brewing"
// @Param craftable query bool false "Only craftable entries"
// @Success 200 {object} ListResponse[domain.CatalogueEntry]
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/categories/{category}/items [get]
func HandleCategoryItems(engine CategoryEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := CategoryItemsRequest{Category: chi.URLParam(r, "category")}
		if err := DecodeAndValidateQuery(r, w, &req, "List category items"); err != nil {
			return
		}

		list := engine.ItemsByCategory
		if req.Craftable {
			list = engine.CraftableItemsByCategory
		}

		entries, err := list(domain.Category(req.Category))
		if err != nil {
			respondServiceError(w, r, ErrMsgCategoryLookupFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, newListResponse(slices.Collect(entries)))
	}
}
