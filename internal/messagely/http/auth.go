package http

import (
	"net/http"

	"github.com/aussiebroadwan/messagely/internal/messagely/service"
	"github.com/aussiebroadwan/messagely/pkg/authsdk"
	"github.com/aussiebroadwan/messagely/pkg/httpx"
	"github.com/aussiebroadwan/messagely/pkg/slogx"
)

type LoginHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
}

// ServeHTTP exchanges a username and password for a token.
//
//	@Summary		Log in
//	@Description	Verifies the credentials, records the login time and returns a signed token.
//	@Description	Unknown usernames and wrong passwords are indistinguishable.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	authsdk.TokenResponse	"Signed token"
//	@Failure		400		{object}	authsdk.ErrorResponse	"Malformed body"
//	@Failure		401		{object}	authsdk.ErrorResponse	"Invalid username/password"
//	@Failure		429		{object}	authsdk.ErrorResponse	"Rate limit exceeded"
//	@Router			/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		authsdk.ErrBadRequest.WithDescription(err.Error()).WriteError(w)
		return
	}

	ok, err := h.UserService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if !ok {
		log.Info("login failed", "username", req.Username)
		writeServiceError(w, r, service.ErrUnauthorized)
		return
	}

	if err := h.UserService.UpdateLoginTimestamp(ctx, req.Username); err != nil {
		writeServiceError(w, r, err)
		return
	}

	token, err := h.TokenService.Issue(ctx, req.Username)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info("login succeeded", "username", req.Username)
	httpx.WriteJSON(w, http.StatusOK, authsdk.TokenResponse{Token: token})
}

type RegisterHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
}

// ServeHTTP registers a user and logs them in.
//
//	@Summary		Register
//	@Description	Creates a user and returns a token for them without a separate login.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.RegisterRequest	true	"New user"
//	@Success		200		{object}	authsdk.TokenResponse	"Signed token"
//	@Failure		400		{object}	authsdk.ErrorResponse	"Malformed body or failed validation"
//	@Failure		409		{object}	authsdk.ErrorResponse	"Username already taken"
//	@Failure		429		{object}	authsdk.ErrorResponse	"Rate limit exceeded"
//	@Router			/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req authsdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		authsdk.ErrBadRequest.WithDescription(err.Error()).WriteError(w)
		return
	}

	user, err := h.UserService.Register(ctx, service.RegisterInput{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	token, err := h.TokenService.Issue(ctx, user.Username)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.TokenResponse{Token: token})
}
