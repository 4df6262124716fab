package authsdk

import "time"

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the JSON error body returned by every endpoint.
// This is used internally for parsing HTTP error responses.
// Client code should use the APIError type from errors.go instead.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g., "duplicate_key")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// Auth Types
// ============================================================================

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// TokenResponse is returned by both /login and /register.
type TokenResponse struct {
	// Token is a compact HS256 JWT carrying the username claim
	Token string `json:"token"`
}

// ============================================================================
// User Types
// ============================================================================

// UserSummary is the listing projection of a user.
type UserSummary struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// UserDetail is a user's full profile without the password hash.
type UserDetail struct {
	Username    string     `json:"username"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Phone       string     `json:"phone"`
	JoinAt      time.Time  `json:"join_at"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

// Contact is the profile attached to a message's counterparty.
type Contact struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// UsersResponse is returned by GET /users.
type UsersResponse struct {
	Users []UserSummary `json:"users"`
}

// UserResponse is returned by GET /users/{username}.
type UserResponse struct {
	User UserDetail `json:"user"`
}

// ============================================================================
// Message Types
// ============================================================================

// SentMessage is a message in a sender's outbox, annotated with the recipient.
type SentMessage struct {
	ID     string     `json:"id"`
	ToUser Contact    `json:"to_user"`
	Body   string     `json:"body"`
	SentAt time.Time  `json:"sent_at"`
	ReadAt *time.Time `json:"read_at"`
}

// ReceivedMessage is a message in a recipient's inbox, annotated with the sender.
type ReceivedMessage struct {
	ID       string     `json:"id"`
	FromUser Contact    `json:"from_user"`
	Body     string     `json:"body"`
	SentAt   time.Time  `json:"sent_at"`
	ReadAt   *time.Time `json:"read_at"`
}

// SentMessagesResponse is returned by GET /users/{username}/from.
type SentMessagesResponse struct {
	Messages []SentMessage `json:"messages"`
}

// ReceivedMessagesResponse is returned by GET /users/{username}/to.
type ReceivedMessagesResponse struct {
	Messages []ReceivedMessage `json:"messages"`
}

// SendMessageRequest is the body of POST /messages.
type SendMessageRequest struct {
	ToUsername string `json:"to_username"`
	Body       string `json:"body"`
}

// Message is a stored message as returned by POST /messages.
type Message struct {
	ID           string     `json:"id"`
	FromUsername string     `json:"from_username"`
	ToUsername   string     `json:"to_username"`
	Body         string     `json:"body"`
	SentAt       time.Time  `json:"sent_at"`
	ReadAt       *time.Time `json:"read_at"`
}

// MessageResponse is returned by POST /messages.
type MessageResponse struct {
	Message Message `json:"message"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`

	// Signer indicates the token signing capability status
	Signer string `json:"signer"`
}
