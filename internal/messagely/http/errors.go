package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/messagely/internal/messagely/service"
	"github.com/aussiebroadwan/messagely/pkg/authsdk"
	"github.com/aussiebroadwan/messagely/pkg/slogx"
)

// writeServiceError maps service errors onto API errors. Anything unmapped
// is logged and reported as a 500 without detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrBadRequest):
		authsdk.ErrBadRequest.WithDescription(err.Error()).WriteError(w)
	case errors.Is(err, service.ErrUnauthorized):
		authsdk.ErrUnauthorized.WithDescription("Invalid username/password").WriteError(w)
	case errors.Is(err, service.ErrNotFound):
		authsdk.ErrNotFound.WriteError(w)
	case errors.Is(err, service.ErrDuplicateKey):
		authsdk.ErrDuplicateKey.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		authsdk.ErrServerError.WriteError(w)
	}
}
