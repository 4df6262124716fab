package authsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Session carries a bearer token for authenticated calls.
type Session struct {
	client *Client
	token  string
}

// Token returns the bearer token used by this session.
func (s *Session) Token() string {
	return s.token
}

// ListUsers lists every user.
func (s *Session) ListUsers(ctx context.Context) ([]UserSummary, error) {
	var out UsersResponse
	if err := s.get(ctx, "/users", &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// GetUser fetches a user's profile.
func (s *Session) GetUser(ctx context.Context, username string) (*UserDetail, error) {
	var out UserResponse
	if err := s.get(ctx, "/users/"+url.PathEscape(username), &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// MessagesFrom lists messages sent by username.
func (s *Session) MessagesFrom(ctx context.Context, username string) ([]SentMessage, error) {
	var out SentMessagesResponse
	if err := s.get(ctx, "/users/"+url.PathEscape(username)+"/from", &out); err != nil {
		return nil, err
	}
	return out.Messages, nil
}

// MessagesTo lists messages received by username.
func (s *Session) MessagesTo(ctx context.Context, username string) ([]ReceivedMessage, error) {
	var out ReceivedMessagesResponse
	if err := s.get(ctx, "/users/"+url.PathEscape(username)+"/to", &out); err != nil {
		return nil, err
	}
	return out.Messages, nil
}

// SendMessage sends body from the session's user to toUsername.
func (s *Session) SendMessage(ctx context.Context, toUsername, body string) (*Message, error) {
	resp, err := s.client.doRequest(ctx, http.MethodPost, "/messages", s.token,
		SendMessageRequest{ToUsername: toUsername, Body: body})
	if err != nil {
		return nil, err
	}

	var out MessageResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out.Message, nil
}

func (s *Session) get(ctx context.Context, path string, target any) error {
	resp, err := s.client.doRequest(ctx, http.MethodGet, path, s.token, nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, target, http.StatusOK)
}
