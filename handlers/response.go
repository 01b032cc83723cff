package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"productcatalog/logger"
	"productcatalog/models"
	"productcatalog/services"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.WithFields(map[string]interface{}{"error": err.Error()}).Warn("Failed to encode response")
	}
}

// writeValidationError answers 422 with field-keyed messages.
func writeValidationError(w http.ResponseWriter, verr *services.ValidationError) {
	writeJSON(w, http.StatusUnprocessableEntity, models.ValidationFailedResponse(verr.Summary(), verr.Messages()))
}

// asValidationError unwraps err into a *services.ValidationError.
func asValidationError(err error) (*services.ValidationError, bool) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// expectsJSON reports whether the client asked for a JSON response.
func expectsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "/json") || strings.Contains(accept, "+json")
}

// isPageVisit reports whether the request comes from the page client's router.
func isPageVisit(r *http.Request) bool {
	return r.Header.Get(InertiaHeader) != ""
}

// requestBaseURL rebuilds scheme://host for absolute pagination links.
func requestBaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeJSON(w, http.StatusMethodNotAllowed, models.ErrorResponse("Method not allowed", nil))
}
