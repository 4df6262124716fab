package authsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client is a client for the messagely HTTP API.
// It provides access to unauthenticated operations and creates authenticated Sessions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new messagely client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates a user and returns the token issued for them.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error) {
	return c.tokenRequest(ctx, "/register", req)
}

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	return c.tokenRequest(ctx, "/login", LoginRequest{Username: username, Password: password})
}

// RegisterSession registers a user and returns a Session bound to their token.
func (c *Client) RegisterSession(ctx context.Context, req RegisterRequest) (*Session, error) {
	tok, err := c.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	return c.NewSession(tok.Token), nil
}

// LoginSession logs in and returns a Session bound to the issued token.
func (c *Client) LoginSession(ctx context.Context, username, password string) (*Session, error) {
	tok, err := c.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return c.NewSession(tok.Token), nil
}

// NewSession creates an authenticated session from an existing token.
func (c *Client) NewSession(token string) *Session {
	return &Session{client: c, token: token}
}

func (c *Client) tokenRequest(ctx context.Context, path string, payload any) (*TokenResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, path, "", payload)
	if err != nil {
		return nil, err
	}

	var tok TokenResponse
	if err := decodeJSON(resp, &tok, http.StatusOK); err != nil {
		return nil, err
	}

	return &tok, nil
}
