package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/messagely/internal/messagely/domain"
	"github.com/aussiebroadwan/messagely/internal/messagely/store"
	"github.com/aussiebroadwan/messagely/pkg/idx"
	"github.com/aussiebroadwan/messagely/pkg/slogx"
)

type MessageService struct {
	Store store.Store
	Now   func() time.Time
}

// Send stores a message from one user to another. The recipient must exist.
func (s *MessageService) Send(ctx context.Context, from string, in SendInput) (domain.Message, error) {
	log := slogx.FromContext(ctx)

	if err := in.Validate(); err != nil {
		return domain.Message{}, badRequest(err)
	}

	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}

	if _, err := s.Store.Users().GetUserByUsername(ctx, in.ToUsername); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("message to unknown recipient", slog.String("to", in.ToUsername))
			return domain.Message{}, ErrNotFound
		}
		return domain.Message{}, err
	}

	msg, err := s.Store.Messages().CreateMessage(ctx, domain.Message{
		ID:           idx.NewAt(now).String(),
		FromUsername: from,
		ToUsername:   in.ToUsername,
		Body:         in.Body,
		SentAt:       now.UTC(),
	})
	if errors.Is(err, store.ErrNotFound) {
		// sender or recipient vanished between lookup and insert
		return domain.Message{}, ErrNotFound
	}
	if err != nil {
		return domain.Message{}, err
	}

	log.Info("message sent", slog.String("id", msg.ID), slog.String("to", msg.ToUsername))
	return msg, nil
}
