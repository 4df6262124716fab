package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/messagely/internal/messagely/domain"
	"github.com/aussiebroadwan/messagely/internal/messagely/store"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

type Store struct {
	db  *sql.DB
	q   *queries
	dsn string
}

// NewStore opens the database file at path (":memory:" for an in-process
// database). Foreign keys and a busy timeout are enabled on every pooled
// connection through the DSN.
func NewStore(path string) (*Store, error) {
	dsn := buildDSN(path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Each :memory: connection is its own database
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		q:   newQueries(db),
		dsn: dsn,
	}, nil
}

func buildDSN(path string) string {
	if strings.Contains(path, "?") {
		return path
	}
	return "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Users() store.Users       { return &usersRepo{q: s.q} }
func (s *Store) Messages() store.Messages { return &messagesRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint turns key violations into store errors: duplicate keys
// become ErrAlreadyExists and dangling references become ErrNotFound.
func mapConstraint(err error) error {
	var se *msqlite.Error
	if !errors.As(err, &se) {
		return err
	}

	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return store.ErrAlreadyExists
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return store.ErrNotFound
	}

	// Extended codes disabled on this connection; fall back to the message.
	if se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		msg := se.Error()
		switch {
		case strings.Contains(msg, "UNIQUE constraint failed"):
			return store.ErrAlreadyExists
		case strings.Contains(msg, "FOREIGN KEY constraint failed"):
			return store.ErrNotFound
		}
	}
	return err
}

func mapTimePtr(t timestamp) *time.Time {
	if t.Valid {
		val := t.Time
		return &val
	}
	return nil
}

func mapUser(row userRow) domain.User {
	return domain.User{
		Username:     row.Username,
		PasswordHash: row.Password,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		Phone:        row.Phone,
		JoinAt:       row.JoinAt.Time,
		LastLoginAt:  mapTimePtr(row.LastLoginAt),
	}
}

func mapContact(row joinedMessageRow) domain.Contact {
	return domain.Contact{
		Username:  row.Username,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Phone:     row.Phone,
	}
}
