package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/Skirmish_Go/internal/domain"
)

// Standard response types for consistent API responses

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

const responseBufferSize = 1024

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding.
// Combat journals make most responses larger than a few hundred bytes.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, responseBufferSize))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgAuthFailedError    = "Authentication failed. Please check your API key."

	ErrMsgEmptyRosterError   = "At least one enemy is required"
	ErrMsgUnknownEnemyError  = "Unknown enemy type"
	ErrMsgInvalidEnemyError  = "Enemy count and level must be at least 1"
	ErrMsgInvalidLevelError  = "Hero level must be at least 1"
	ErrMsgMissingHeroIDError = "Hero id is required"
	ErrMsgInvalidActionError = "Action must be fisico or especial"
	ErrMsgInvalidInputError  = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Unrecognised errors become a generic 500 so internal details never leak.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrEmptyRoster):
		return http.StatusBadRequest, ErrMsgEmptyRosterError
	case errors.Is(err, domain.ErrUnknownEnemy):
		return http.StatusBadRequest, ErrMsgUnknownEnemyError
	case errors.Is(err, domain.ErrInvalidEnemy):
		return http.StatusBadRequest, ErrMsgInvalidEnemyError
	case errors.Is(err, domain.ErrInvalidLevel):
		return http.StatusBadRequest, ErrMsgInvalidLevelError
	case errors.Is(err, domain.ErrMissingHeroID):
		return http.StatusBadRequest, ErrMsgMissingHeroIDError
	case errors.Is(err, domain.ErrInvalidAction):
		return http.StatusBadRequest, ErrMsgInvalidActionError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrDatabaseError),
		errors.Is(err, domain.ErrStorage),
		errors.Is(err, domain.ErrCorruptPayload):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
