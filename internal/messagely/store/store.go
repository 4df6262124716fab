package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/messagely/internal/messagely/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement this.
// It exposes sub-repositories to keep concerns tidy and testable, and so a
// Tx cannot start another transaction.
type Store interface {
	Users() Users
	Messages() Messages

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user and returns the inserted row.
	// Returns ErrAlreadyExists if the username is taken.
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)

	// GetPasswordHash returns the stored bcrypt hash for username.
	GetPasswordHash(ctx context.Context, username string) (string, error)

	// UpdateLastLogin sets last_login_at. Returns ErrNotFound if no row matched.
	UpdateLastLogin(ctx context.Context, username string, at time.Time) error

	// ListUsers returns every user ordered by username.
	ListUsers(ctx context.Context) ([]domain.UserSummary, error)

	// GetUserByUsername returns the full row, password hash included.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
}

type Messages interface {
	// CreateMessage inserts a message (id is provided by app via ULID).
	CreateMessage(ctx context.Context, m domain.Message) (domain.Message, error)

	// ListMessagesFrom returns messages sent by username joined with the
	// recipient's profile, ordered by id.
	ListMessagesFrom(ctx context.Context, username string) ([]domain.SentMessage, error)

	// ListMessagesTo returns messages received by username joined with the
	// sender's profile, ordered by id.
	ListMessagesTo(ctx context.Context, username string) ([]domain.ReceivedMessage, error)
}
