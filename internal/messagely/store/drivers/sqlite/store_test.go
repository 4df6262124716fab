package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/messagely/internal/messagely/domain"
	"github.com/aussiebroadwan/messagely/internal/messagely/store"
	"github.com/aussiebroadwan/messagely/internal/messagely/store/drivers/sqlite"
	"github.com/aussiebroadwan/messagely/pkg/idx"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "messagely.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedUser(t *testing.T, st store.Store, username string) domain.User {
	t.Helper()

	u, err := st.Users().CreateUser(t.Context(), domain.User{
		Username:     username,
		PasswordHash: "$2a$04$hash-of-" + username,
		FirstName:    "First " + username,
		LastName:     "Last " + username,
		Phone:        "555-" + username,
		JoinAt:       epoch,
	})
	require.NoError(t, err)
	return u
}

func TestApplyMigrations_Idempotent(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.ApplyMigrations())
	require.NoError(t, st.Ping(t.Context()))
}

func TestMemoryStore(t *testing.T) {
	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.ApplyMigrations())
	seedUser(t, st, "alice")

	users, err := st.Users().ListUsers(t.Context())
	require.NoError(t, err)
	require.Len(t, users, 1)
}

func TestUsers_CreateAndGet(t *testing.T) {
	st := newTestStore(t)
	ctx := t.Context()

	created := seedUser(t, st, "alice")
	require.Equal(t, "alice", created.Username)
	require.Equal(t, "$2a$04$hash-of-alice", created.PasswordHash)
	require.Equal(t, "First alice", created.FirstName)
	require.Equal(t, "Last alice", created.LastName)
	require.Equal(t, "555-alice", created.Phone)

	got, err := st.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, created.FirstName, got.FirstName)
	require.Equal(t, created.Phone, got.Phone)
	require.True(t, got.JoinAt.Equal(epoch), "join_at round trips: got %s", got.JoinAt)
	require.Nil(t, got.LastLoginAt)

	_, err = st.Users().GetUserByUsername(ctx, "nobody")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsers_CreateDuplicate(t *testing.T) {
	st := newTestStore(t)
	seedUser(t, st, "alice")

	_, err := st.Users().CreateUser(t.Context(), domain.User{
		Username:     "alice",
		PasswordHash: "other",
		FirstName:    "A",
		LastName:     "L",
		JoinAt:       epoch,
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestUsers_GetPasswordHash(t *testing.T) {
	st := newTestStore(t)
	ctx := t.Context()
	seedUser(t, st, "alice")

	hash, err := st.Users().GetPasswordHash(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "$2a$04$hash-of-alice", hash)

	_, err = st.Users().GetPasswordHash(ctx, "nobody")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsers_UpdateLastLogin(t *testing.T) {
	st := newTestStore(t)
	ctx := t.Context()
	seedUser(t, st, "alice")

	first := epoch.Add(time.Minute)
	require.NoError(t, st.Users().UpdateLastLogin(ctx, "alice", first))

	got, err := st.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, got.LastLoginAt)
	require.True(t, got.LastLoginAt.Equal(first))

	second := first.Add(time.Nanosecond * 1500)
	require.NoError(t, st.Users().UpdateLastLogin(ctx, "alice", second))

	got, err = st.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.True(t, got.LastLoginAt.After(first), "sub-second precision is kept")

	err = st.Users().UpdateLastLogin(ctx, "nobody", first)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsers_ListUsers(t *testing.T) {
	st := newTestStore(t)
	ctx := t.Context()

	users, err := st.Users().ListUsers(ctx)
	require.NoError(t, err)
	require.NotNil(t, users)
	require.Empty(t, users)

	for _, name := range []string{"carol", "alice", "bob"} {
		seedUser(t, st, name)
	}

	users, err = st.Users().ListUsers(ctx)
	require.NoError(t, err)
	require.Equal(t, []domain.UserSummary{
		{Username: "alice", FirstName: "First alice", LastName: "Last alice"},
		{Username: "bob", FirstName: "First bob", LastName: "Last bob"},
		{Username: "carol", FirstName: "First carol", LastName: "Last carol"},
	}, users)
}

func TestMessages_JoinedListings(t *testing.T) {
	st := newTestStore(t)
	ctx := t.Context()

	seedUser(t, st, "alice")
	seedUser(t, st, "bob")
	seedUser(t, st, "carol")

	send := func(from, to, body string, at time.Time) domain.Message {
		m, err := st.Messages().CreateMessage(ctx, domain.Message{
			ID:           idx.NewAt(at).String(),
			FromUsername: from,
			ToUsername:   to,
			Body:         body,
			SentAt:       at,
		})
		require.NoError(t, err)
		return m
	}

	m1 := send("alice", "bob", "hi bob", epoch)
	m2 := send("alice", "carol", "hi carol", epoch.Add(time.Second))
	m3 := send("bob", "alice", "hi alice", epoch.Add(2*time.Second))

	fromAlice, err := st.Messages().ListMessagesFrom(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, fromAlice, 2)
	require.Equal(t, m1.ID, fromAlice[0].ID)
	require.Equal(t, m2.ID, fromAlice[1].ID)
	require.Equal(t, domain.Contact{
		Username:  "bob",
		FirstName: "First bob",
		LastName:  "Last bob",
		Phone:     "555-bob",
	}, fromAlice[0].ToUser)
	require.Equal(t, "hi bob", fromAlice[0].Body)
	require.True(t, fromAlice[0].SentAt.Equal(epoch))
	require.Nil(t, fromAlice[0].ReadAt)

	toAlice, err := st.Messages().ListMessagesTo(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, toAlice, 1)
	require.Equal(t, m3.ID, toAlice[0].ID)
	require.Equal(t, "bob", toAlice[0].FromUser.Username)
	require.Equal(t, "555-bob", toAlice[0].FromUser.Phone)

	// Every sent message appears exactly once in its recipient's inbox.
	for _, sent := range fromAlice {
		inbox, err := st.Messages().ListMessagesTo(ctx, sent.ToUser.Username)
		require.NoError(t, err)

		count := 0
		for _, rcv := range inbox {
			if rcv.ID == sent.ID {
				count++
				require.Equal(t, "alice", rcv.FromUser.Username)
			}
		}
		require.Equal(t, 1, count)
	}

	empty, err := st.Messages().ListMessagesFrom(ctx, "carol")
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)
}

func TestMessages_UnknownRecipient(t *testing.T) {
	st := newTestStore(t)
	seedUser(t, st, "alice")

	_, err := st.Messages().CreateMessage(t.Context(), domain.Message{
		ID:           idx.New().String(),
		FromUsername: "alice",
		ToUsername:   "ghost",
		Body:         "anyone there?",
		SentAt:       epoch,
	})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTx(t *testing.T) {
	st := newTestStore(t)
	ctx := t.Context()
	errBoom := errors.New("boom")

	err := st.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Users().CreateUser(ctx, domain.User{
			Username: "rolled", PasswordHash: "h", FirstName: "R", LastName: "B", JoinAt: epoch,
		})
		require.NoError(t, err)
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	_, err = st.Users().GetUserByUsername(ctx, "rolled")
	require.ErrorIs(t, err, store.ErrNotFound)

	err = st.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().CreateUser(ctx, domain.User{
			Username: "kept", PasswordHash: "h", FirstName: "K", LastName: "P", JoinAt: epoch,
		}); err != nil {
			return err
		}
		return tx.Users().UpdateLastLogin(ctx, "kept", epoch)
	})
	require.NoError(t, err)

	got, err := st.Users().GetUserByUsername(ctx, "kept")
	require.NoError(t, err)
	require.NotNil(t, got.LastLoginAt)
}

func TestTx_NestedRejected(t *testing.T) {
	st := newTestStore(t)

	tx, err := st.Tx(context.Background())
	require.NoError(t, err)
	defer tx.Rollback()

	_, err = tx.Tx(context.Background())
	require.Error(t, err)
	require.Error(t, tx.WithTx(context.Background(), func(store.Tx) error { return nil }))
}
