package apierr

import (
	"encoding/json"
	"net/http"

	"github.com/wheelparty/fortunegame-go/internal/services/engine"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Error codes for request-level failures; game-level failures reuse the
// engine's result kinds verbatim.
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInternalError  = engine.KindInternalError
)

// StatusForKind maps an engine failure kind to an HTTP status code
func StatusForKind(kind string) int {
	switch kind {
	case engine.KindSetupError, engine.KindInvalidLetter, engine.KindInvalidWheel:
		return http.StatusBadRequest
	case engine.KindGameNotFound:
		return http.StatusNotFound
	case engine.KindIllegalAction, engine.KindInsufficientFunds:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteInvalidRequest writes a 400 for a malformed request body or path
func WriteInvalidRequest(w http.ResponseWriter, message string) {
	write(w, http.StatusBadRequest, APIError{CodeInvalidRequest, message})
}

// WriteInternalError writes a generic 500
func WriteInternalError(w http.ResponseWriter) {
	write(w, http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"})
}

func write(w http.ResponseWriter, status int, apiError APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: apiError})
}
