package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sukirti-panigrahi/Comeo/internal/delivery/http/dto/response"
	"github.com/sukirti-panigrahi/Comeo/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidState):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrExternalService):
		status = http.StatusBadGateway
	}
	writeJSON(w, status, response.ErrorResponse{Error: err.Error()})
}

// actorID returns the authenticated user set by the auth layer in front of
// this service.
func actorID(r *http.Request) string {
	return r.Header.Get("X-User-ID")
}
