package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/form/v4"

	"github.com/osse101/MinecraftItemIcon_Go/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// QueryTagName is the struct tag naming a field's query parameter
const QueryTagName = "query"

// queryDecoder caches struct metadata and is safe for concurrent use
var queryDecoder = newQueryDecoder()

func newQueryDecoder() *form.Decoder {
	d := form.NewDecoder()
	d.SetTagName(QueryTagName)
	d.SetMode(form.ModeExplicit)
	return d
}

// DecodeAndValidateQuery fills req from the request's query string and validates it.
//
// req must be a pointer to a struct whose fields carry `query:"name"` tags.
// Absent parameters leave the field untouched, so defaults can be set before the call.
//
// If this function returns an error, the HTTP response has already been written
// and the handler should return.
//
// Example usage:
//
//	req := SearchRequest{Limit: h.searchLimit}
//	if err := DecodeAndValidateQuery(r, w, &req, "Search items"); err != nil {
//	    return
//	}
func DecodeAndValidateQuery(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := queryDecoder.Decode(req, r.URL.Query()); err != nil {
		log.Warn(LogMsgInvalidQueryParam, "action", actionName, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: formatDecodeError(err),
		})
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn(LogMsgValidationFailed, "action", actionName, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))
	return nil
}

// formatDecodeError maps each malformed parameter to a message keyed by its name
func formatDecodeError(err error) map[string]string {
	var decodeErrs form.DecodeErrors
	if !errors.As(err, &decodeErrs) {
		return map[string]string{"error": ValidationMsgFormat}
	}
	fields := make(map[string]string, len(decodeErrs))
	for name := range decodeErrs {
		fields[name] = fmt.Sprintf(ErrMsgInvalidQueryParam, name)
	}
	return fields
}

// GetQueryParam retrieves a required query parameter from the request.
// If the parameter is missing or empty, it writes an error response and returns false.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(LogMsgMissingQueryParam, "param", paramName)
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// LogRequestFields logs common request fields at debug level
func LogRequestFields(log *slog.Logger, keyvals ...interface{}) {
	if len(keyvals)%2 != 0 {
		log.Warn("LogRequestFields called with odd number of arguments")
		return
	}
	log.Debug("Request details", keyvals...)
}
