package handler

import (
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/MinecraftItemIcon_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"item not found", domain.ErrItemNotFound, http.StatusNotFound, ErrMsgItemNotFoundError},
		{"wrapped item not found", fmt.Errorf("%w: %q", domain.ErrItemNotFound, "x"), http.StatusNotFound, ErrMsgItemNotFoundError},
		{"unknown category", fmt.Errorf("lookup: %w", domain.ErrUnknownCategory), http.StatusBadRequest, ErrMsgUnknownCategoryErr},
		{"catalogue unavailable", domain.ErrCatalogueUnavailable, http.StatusServiceUnavailable, ErrMsgCatalogueUnavailErr},
		{"internal detail hidden", assert.AnError, http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedMsg, msg)
		})
	}
}

func TestRespondJSON_EncodeFailure(t *testing.T) {
	w := httptest.NewRecorder()
	respondJSON(w, http.StatusOK, math.Inf(1))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
}

func TestNewListResponse_NeverNull(t *testing.T) {
	w := httptest.NewRecorder()
	respondJSON(w, http.StatusOK, newListResponse[string](nil))
	assert.JSONEq(t, `{"count":0,"items":[]}`, w.Body.String())
}
