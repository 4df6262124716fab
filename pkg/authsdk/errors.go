package authsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/messagely/pkg/httpx"
)

// ============================================================================
// Error Codes
// ============================================================================

const (
	ErrorCodeBadRequest        = "bad_request"
	ErrorCodeUnauthorized      = "unauthorized"
	ErrorCodeNotFound          = "not_found"
	ErrorCodeDuplicateKey      = "duplicate_key"
	ErrorCodeRateLimitExceeded = "rate_limit_exceeded"
	ErrorCodeServerError       = "server_error"
)

// ============================================================================
// APIError
// ============================================================================

// APIError is the error body shared by the server and the client. Handlers
// write it with WriteError; the client decodes non-2xx responses into it.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// Is matches APIErrors by status code and error code, ignoring the
// description, so errors.Is(err, authsdk.ErrDuplicateKey) works on decoded
// responses.
func (e *APIError) Is(target error) bool {
	var t *APIError
	if !errors.As(target, &t) {
		return false
	}
	return e.StatusCode == t.StatusCode && e.Code == t.Code
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteError(w, e.StatusCode, e.Code, e.Description)
}

// WithDescription returns a copy of e with a different description.
func (e *APIError) WithDescription(desc string) *APIError {
	cp := *e
	cp.Description = desc
	return &cp
}

// ============================================================================
// Predefined Errors
// ============================================================================

var (
	// ErrBadRequest is returned when the body is malformed or fails validation.
	ErrBadRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeBadRequest,
		Description: "the request is malformed or missing required fields",
	}

	// ErrUnauthorized is returned for bad credentials or a missing/invalid token.
	ErrUnauthorized = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeUnauthorized,
		Description: "invalid credentials",
	}

	// ErrNotFound is returned when a referenced user does not exist.
	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "not found",
	}

	// ErrDuplicateKey is returned when registering a username that is taken.
	ErrDuplicateKey = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeDuplicateKey,
		Description: "username already taken",
	}

	// ErrServerError is returned when the server hit an unexpected condition.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// NewAPIError creates a new APIError with the given status code, error code, and description.
func NewAPIError(statusCode int, code, description string) *APIError {
	return &APIError{
		StatusCode:  statusCode,
		Code:        code,
		Description: description,
	}
}

// ============================================================================
// Error Parsing Helpers
// ============================================================================

// parseErrorResponse converts a non-2xx response into an *APIError.
// Returns nil if the response indicates success (2xx status code).
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	// Fallback: create generic error from status code
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
