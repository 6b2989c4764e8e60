package handler

import (
	"net/http"

	"github.com/osse101/MinecraftItemIcon_Go/internal/domain"
	"github.com/osse101/MinecraftItemIcon_Go/internal/potion"
)

// PotionEngine is the subset of itemicon.Engine the potion handlers use
type PotionEngine interface {
	PotionEffects() []domain.PotionEffect
	PotionEffect(code string) (domain.PotionEffect, bool)
}

// PotionEffectResponse is one potion effect with its rendered names
type PotionEffectResponse struct {
	domain.PotionEffect
	DisplayName string `json:"display_name"` // "Swiftness II"
	Formatted   string `json:"formatted"`    // "Swiftness II (1:30)"
}

func newPotionEffectResponse(effect domain.PotionEffect) PotionEffectResponse {
	return PotionEffectResponse{
		PotionEffect: effect,
		DisplayName:  potion.DisplayName(effect),
		Formatted:    potion.FormatEffect(effect),
	}
}

// HandleListPotions returns the potion effect table
// @Summary List potion effects
// @Tags potions
// @Produce json
// @Success 200 {object} ListResponse[PotionEffectResponse]
// @Router /api/v1/potions [get]
func HandleListPotions(engine PotionEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		effects := engine.PotionEffects()
		out := make([]PotionEffectResponse, 0, len(effects))
		for _, effect := range effects {
			out = append(out, newPotionEffectResponse(effect))
		}
		respondJSON(w, http.StatusOK, newListResponse(out))
	}
}

// HandleGetPotion returns one potion effect
// @Summary Potion effect details
// @Tags potions
// @Produce json
// @Param code query string true "Effect code, e.g. minecraft:strong_swiftness"
// @Success 200 {object} PotionEffectResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/potions/effect [get]
func HandleGetPotion(engine PotionEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code, ok := GetQueryParam(r, w, "code")
		if !ok {
			return
		}

		effect, found := engine.PotionEffect(code)
		if !found {
			respondError(w, http.StatusNotFound, ErrMsgPotionNotFound)
			return
		}
		respondJSON(w, http.StatusOK, newPotionEffectResponse(effect))
	}
}
