package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/messagely/internal/messagely/domain"
	"github.com/aussiebroadwan/messagely/internal/messagely/store"
)

type usersRepo struct {
	q *queries
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	row, err := r.q.CreateUser(ctx, createUserParams{
		Username:  u.Username,
		Password:  u.PasswordHash,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		JoinAt:    u.JoinAt.UTC(),
	})
	if err != nil {
		return domain.User{}, mapNotFound(mapConstraint(err))
	}
	return domain.User{
		Username:     row.Username,
		PasswordHash: row.Password,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		Phone:        row.Phone,
		JoinAt:       u.JoinAt.UTC(),
	}, nil
}

func (r *usersRepo) GetPasswordHash(ctx context.Context, username string) (string, error) {
	hash, err := r.q.GetPasswordHash(ctx, username)
	if err != nil {
		return "", mapNotFound(err)
	}
	return hash, nil
}

func (r *usersRepo) UpdateLastLogin(ctx context.Context, username string, at time.Time) error {
	n, err := r.q.UpdateLastLogin(ctx, username, at.UTC())
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.UserSummary, error) {
	rows, err := r.q.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.UserSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.UserSummary{
			Username:  row.Username,
			FirstName: row.FirstName,
			LastName:  row.LastName,
		})
	}
	return out, nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row, err := r.q.GetUserByUsername(ctx, username)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}
