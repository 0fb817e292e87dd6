package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/MineRewards_Go/internal/domain"
)

// Standard response types for consistent API responses

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error  string            `json:"error"`
	Reason domain.ReasonCode `json:"reason,omitempty"`
}

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding.
// Responses carrying full catalog entries run well past the stdlib default.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 2048))
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
		slog.Error(LogMsgEncodeFailed, LogFieldError, err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, LogFieldError, err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError maps err and sends it
func respondServiceError(w http.ResponseWriter, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	respondJSON(w, status, ErrorResponse{Error: msg, Reason: domain.ReasonFor(err)})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgUnavailableError    = "Server is temporarily unavailable. Please try again later."

	ErrMsgInvalidDrawCountError = "Draw count must be at least 1"
	ErrMsgInvalidPolicyError    = "Unknown draw policy. Use weighted or diverse."
	ErrMsgAlreadyClaimedError   = "This transaction has already been claimed"
	ErrMsgClaimNotFoundError    = "No claim recorded for this transaction"
	ErrMsgClaimMismatchError    = "This transaction was already settled with a different draw count or policy"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Unrecognised errors never leak their text.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidDrawCount):
		return http.StatusBadRequest, ErrMsgInvalidDrawCountError
	case errors.Is(err, domain.ErrInvalidPolicy):
		return http.StatusBadRequest, ErrMsgInvalidPolicyError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrAlreadyClaimed):
		return http.StatusConflict, ErrMsgAlreadyClaimedError
	case errors.Is(err, domain.ErrClaimMismatch):
		return http.StatusConflict, ErrMsgClaimMismatchError
	case errors.Is(err, domain.ErrClaimNotFound):
		return http.StatusNotFound, ErrMsgClaimNotFoundError
	case errors.Is(err, domain.ErrLedgerUnavailable):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
