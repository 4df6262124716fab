package sqlite

import (
	"context"

	"github.com/aussiebroadwan/messagely/internal/messagely/domain"
)

type messagesRepo struct {
	q *queries
}

func (r *messagesRepo) CreateMessage(ctx context.Context, m domain.Message) (domain.Message, error) {
	m.SentAt = m.SentAt.UTC()
	err := r.q.CreateMessage(ctx, createMessageParams{
		ID:           m.ID,
		FromUsername: m.FromUsername,
		ToUsername:   m.ToUsername,
		Body:         m.Body,
		SentAt:       m.SentAt,
	})
	if err != nil {
		return domain.Message{}, mapConstraint(err)
	}
	m.ReadAt = nil
	return m, nil
}

func (r *messagesRepo) ListMessagesFrom(ctx context.Context, username string) ([]domain.SentMessage, error) {
	rows, err := r.q.ListMessagesFrom(ctx, username)
	if err != nil {
		return nil, err
	}
	out := make([]domain.SentMessage, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.SentMessage{
			ID:     row.ID,
			ToUser: mapContact(row),
			Body:   row.Body,
			SentAt: row.SentAt.Time,
			ReadAt: mapTimePtr(row.ReadAt),
		})
	}
	return out, nil
}

func (r *messagesRepo) ListMessagesTo(ctx context.Context, username string) ([]domain.ReceivedMessage, error) {
	rows, err := r.q.ListMessagesTo(ctx, username)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ReceivedMessage, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.ReceivedMessage{
			ID:       row.ID,
			FromUser: mapContact(row),
			Body:     row.Body,
			SentAt:   row.SentAt.Time,
			ReadAt:   mapTimePtr(row.ReadAt),
		})
	}
	return out, nil
}
