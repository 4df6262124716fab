package http

import (
	"net/http"

	"github.com/aussiebroadwan/messagely/internal/messagely/domain"
	"github.com/aussiebroadwan/messagely/internal/messagely/service"
	"github.com/aussiebroadwan/messagely/pkg/authsdk"
	"github.com/aussiebroadwan/messagely/pkg/httpx"
)

type UsersHandler struct {
	UserService *service.UserService
}

// HandleList lists every user.
//
//	@Summary	List users
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	authsdk.UsersResponse
//	@Failure	401	{object}	authsdk.ErrorResponse	"Invalid or missing token"
//	@Router		/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.ListAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]authsdk.UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, authsdk.UserSummary{
			Username:  u.Username,
			FirstName: u.FirstName,
			LastName:  u.LastName,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, authsdk.UsersResponse{Users: out})
}

// HandleGet returns one user's profile.
//
//	@Summary	Get user
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Param		username	path		string	true	"Username"
//	@Success	200			{object}	authsdk.UserResponse
//	@Failure	401			{object}	authsdk.ErrorResponse	"Invalid or missing token"
//	@Failure	404			{object}	authsdk.ErrorResponse	"Unknown user"
//	@Router		/users/{username} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	u, err := h.UserService.Get(r.Context(), r.PathValue("username"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.UserResponse{User: authsdk.UserDetail{
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Phone:       u.Phone,
		JoinAt:      u.JoinAt,
		LastLoginAt: u.LastLoginAt,
	}})
}

// HandleMessagesFrom lists messages sent by a user.
//
//	@Summary	Messages sent by user
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Param		username	path		string	true	"Sender"
//	@Success	200			{object}	authsdk.SentMessagesResponse
//	@Failure	401			{object}	authsdk.ErrorResponse	"Invalid or missing token"
//	@Router		/users/{username}/from [get].
func (h *UsersHandler) HandleMessagesFrom(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.UserService.MessagesFrom(r.Context(), r.PathValue("username"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]authsdk.SentMessage, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, authsdk.SentMessage{
			ID:     m.ID,
			ToUser: toContact(m.ToUser),
			Body:   m.Body,
			SentAt: m.SentAt,
			ReadAt: m.ReadAt,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, authsdk.SentMessagesResponse{Messages: out})
}

// HandleMessagesTo lists messages received by a user.
//
//	@Summary	Messages received by user
//	@Tags		Users
//	@Security	BearerAuth
//	@Produce	json
//	@Param		username	path		string	true	"Recipient"
//	@Success	200			{object}	authsdk.ReceivedMessagesResponse
//	@Failure	401			{object}	authsdk.ErrorResponse	"Invalid or missing token"
//	@Router		/users/{username}/to [get].
func (h *UsersHandler) HandleMessagesTo(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.UserService.MessagesTo(r.Context(), r.PathValue("username"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]authsdk.ReceivedMessage, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, authsdk.ReceivedMessage{
			ID:       m.ID,
			FromUser: toContact(m.FromUser),
			Body:     m.Body,
			SentAt:   m.SentAt,
			ReadAt:   m.ReadAt,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, authsdk.ReceivedMessagesResponse{Messages: out})
}

func toContact(c domain.Contact) authsdk.Contact {
	return authsdk.Contact{
		Username:  c.Username,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
	}
}
