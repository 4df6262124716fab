package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/aussiebroadwan/messagely/internal/messagely/domain"
	"github.com/aussiebroadwan/messagely/internal/messagely/store"
	"github.com/aussiebroadwan/messagely/pkg/slogx"
)

// PasswordHasher hashes and verifies passwords. Verify must return false on
// mismatch rather than an error.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

type UserService struct {
	Store  store.Store
	Hasher PasswordHasher

	// Now defaults to time.Now.
	Now func() time.Time

	mu        sync.Mutex
	lastStamp time.Time

	dummyOnce sync.Once
	dummyHash string
}

// Register hashes the password, inserts the user and records the
// registration as the first login, all in one transaction. The returned user
// carries the stored hash.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if err := in.Validate(); err != nil {
		log.Debug("registration rejected", slog.String("username", in.Username), slog.Any("error", err))
		return domain.User{}, badRequest(err)
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return domain.User{}, err
	}

	now := s.stamp()
	var user domain.User
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		created, err := tx.Users().CreateUser(ctx, domain.User{
			Username:     in.Username,
			PasswordHash: hash,
			FirstName:    in.FirstName,
			LastName:     in.LastName,
			Phone:        in.Phone,
			JoinAt:       now,
		})
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			return ErrDuplicateKey
		case errors.Is(err, store.ErrNotFound):
			return ErrCreationFailed
		case err != nil:
			return err
		}

		if err := tx.Users().UpdateLastLogin(ctx, created.Username, now); err != nil {
			return err
		}
		created.LastLoginAt = &now
		user = created
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			log.Info("registration for taken username", slog.String("username", in.Username))
		}
		return domain.User{}, err
	}

	log.Info("user registered", slog.String("username", user.Username))
	return user, nil
}

// Authenticate reports whether password matches the stored hash for
// username. Unknown users return false with no error, after the same bcrypt
// work as a real comparison.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, nil
	}

	hash, err := s.Store.Users().GetPasswordHash(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		s.Hasher.Verify(password, s.dummy())
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return s.Hasher.Verify(password, hash), nil
}

// UpdateLoginTimestamp sets last_login_at to now.
func (s *UserService) UpdateLoginTimestamp(ctx context.Context, username string) error {
	err := s.Store.Users().UpdateLastLogin(ctx, username, s.stamp())
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// ListAll returns the listing projection of every user, ordered by username.
func (s *UserService) ListAll(ctx context.Context) ([]domain.UserSummary, error) {
	return s.Store.Users().ListUsers(ctx)
}

// Get returns a user's profile with the password hash cleared.
func (s *UserService) Get(ctx context.Context, username string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	u.PasswordHash = ""
	return u, nil
}

// MessagesFrom returns messages sent by username with recipient profiles.
// An unknown username yields an empty list.
func (s *UserService) MessagesFrom(ctx context.Context, username string) ([]domain.SentMessage, error) {
	return s.Store.Messages().ListMessagesFrom(ctx, username)
}

// MessagesTo returns messages received by username with sender profiles.
// An unknown username yields an empty list.
func (s *UserService) MessagesTo(ctx context.Context, username string) ([]domain.ReceivedMessage, error) {
	return s.Store.Messages().ListMessagesTo(ctx, username)
}

// stamp returns the current UTC time, nudged forward so successive calls
// never repeat or go backwards within this process.
func (s *UserService) stamp() time.Time {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	t := now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !t.After(s.lastStamp) {
		t = s.lastStamp.Add(time.Microsecond)
	}
	s.lastStamp = t
	return t
}

func (s *UserService) dummy() string {
	s.dummyOnce.Do(func() {
		h, err := s.Hasher.Hash("messagely-timing-equaliser")
		if err == nil {
			s.dummyHash = h
		}
	})
	return s.dummyHash
}
