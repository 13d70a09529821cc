// Package httputil holds the shared JSON response helpers used by every
// handler.
package httputil

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/equibridge/backend/internal/apperr"
)

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps an application error to its HTTP status. Unknown errors
// become 500 with a generic body so internals never leak to clients.
func WriteError(w http.ResponseWriter, log *slog.Logger, err error) {
	code := apperr.CodeOf(err)
	switch code {
	case apperr.CodeNotFound:
		WriteJSON(w, http.StatusNotFound, errorBody{Error: err.Error(), Code: code})
	case apperr.CodeConflict:
		WriteJSON(w, http.StatusConflict, errorBody{Error: err.Error(), Code: code})
	case apperr.CodeInsufficientFunds, apperr.CodeInvalid:
		WriteJSON(w, http.StatusBadRequest, errorBody{Error: err.Error(), Code: code})
	default:
		if log != nil {
			log.Error("request failed", "error", err)
		}
		WriteJSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}
}

// DecodeJSON decodes the request body into v, rejecting unknown fields.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return apperr.Invalid("invalid JSON body")
	}
	return nil
}
