package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"focusflow/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError maps the service error taxonomy onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *service.ValidationError
	var externalErr *service.ExternalServiceError

	switch {
	case errors.Is(err, service.ErrEmptyTaskID):
		writeError(w, http.StatusBadRequest, "please provide a task id")
	case errors.Is(err, service.ErrTaskNotFound):
		writeError(w, http.StatusNotFound, service.ErrTaskNotFound.Error())
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &externalErr):
		// Surface enough detail for the error-details panel without
		// crashing anything.
		writeError(w, http.StatusBadGateway, externalErr.Error())
	default:
		log.Printf("internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
