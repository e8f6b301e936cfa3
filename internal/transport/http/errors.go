package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"jobboard/internal/domain"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// writeError maps the domain error taxonomy onto stable response kinds.
// Anything unmapped is a 500 with the detail kept out of the response.
func writeError(w http.ResponseWriter, err error) {
	var (
		status = http.StatusInternalServerError
		kind   = "internal"
		msg    = "internal error"
	)
	switch {
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrInvalidCredentials):
		status, kind, msg = http.StatusUnauthorized, "unauthorized", err.Error()
	case errors.Is(err, domain.ErrNotActivated):
		status, kind, msg = http.StatusForbidden, "not_activated", err.Error()
	case errors.Is(err, domain.ErrForbidden):
		status, kind, msg = http.StatusForbidden, "forbidden", err.Error()
	case errors.Is(err, domain.ErrValidation):
		status, kind, msg = http.StatusBadRequest, "validation", err.Error()
	case errors.Is(err, domain.ErrInvalidToken):
		status, kind, msg = http.StatusBadRequest, "invalid_token", err.Error()
	case errors.Is(err, domain.ErrNotFound):
		status, kind, msg = http.StatusNotFound, "not_found", err.Error()
	case errors.Is(err, domain.ErrDuplicateEntity):
		status, kind, msg = http.StatusConflict, "duplicate_entity", err.Error()
	case errors.Is(err, domain.ErrInvalidTransition):
		status, kind, msg = http.StatusConflict, "invalid_transition", err.Error()
	case errors.Is(err, domain.ErrNoOwnedCompany):
		status, kind, msg = http.StatusUnprocessableEntity, "no_owned_company", err.Error()
	default:
		slog.Error("request failed", "error", err)
	}
	writeJSON(w, status, errorBody{Error: errorDetail{Kind: kind, Message: msg}})
}
