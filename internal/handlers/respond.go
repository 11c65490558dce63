// Package handlers contains the JSON API handler groups for the catalog:
// categories, content, and ratings. Handlers validate input, call the
// stores, and shape responses through the presenter package.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

// writeJSON serializes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// errorResponse is the uniform error body shape.
type errorResponse struct {
	Error string `json:"error"`
}

// writeError sends a JSON error body. Server-side failures are logged;
// client errors are the caller's problem and stay quiet.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// serverError logs err and sends an opaque 500 to the client.
func serverError(w http.ResponseWriter, op string, err error) {
	slog.Error(op, "error", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}

// decodeJSON decodes the request body into v, rejecting unknown fields
// so client typos surface instead of being silently dropped.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	// A second value means trailing garbage after the JSON document.
	if dec.More() {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}
