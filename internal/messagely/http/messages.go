package http

import (
	"net/http"

	"github.com/aussiebroadwan/messagely/internal/messagely/service"
	"github.com/aussiebroadwan/messagely/pkg/authsdk"
	"github.com/aussiebroadwan/messagely/pkg/httpx"
)

type SendMessageHandler struct {
	MessageService *service.MessageService
}

// ServeHTTP sends a message from the authenticated user.
//
//	@Summary		Send message
//	@Description	The sender is the username in the bearer token.
//	@Tags			Messages
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.SendMessageRequest	true	"Recipient and body"
//	@Success		201		{object}	authsdk.MessageResponse
//	@Failure		400		{object}	authsdk.ErrorResponse	"Malformed body or failed validation"
//	@Failure		401		{object}	authsdk.ErrorResponse	"Invalid or missing token"
//	@Failure		404		{object}	authsdk.ErrorResponse	"Unknown recipient"
//	@Router			/messages [post].
func (h *SendMessageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	from := httpx.UsernameFromContext(ctx)
	if from == "" {
		authsdk.ErrUnauthorized.WithDescription("missing bearer token").WriteError(w)
		return
	}

	var req authsdk.SendMessageRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		authsdk.ErrBadRequest.WithDescription(err.Error()).WriteError(w)
		return
	}

	msg, err := h.MessageService.Send(ctx, from, service.SendInput{
		ToUsername: req.ToUsername,
		Body:       req.Body,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, authsdk.MessageResponse{Message: authsdk.Message{
		ID:           msg.ID,
		FromUsername: msg.FromUsername,
		ToUsername:   msg.ToUsername,
		Body:         msg.Body,
		SentAt:       msg.SentAt,
		ReadAt:       msg.ReadAt,
	}})
}
