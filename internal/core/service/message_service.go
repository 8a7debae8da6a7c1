package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mercadillo/storefront/internal/core/domain"
	"github.com/mercadillo/storefront/internal/core/ports"
)

// MessageService implements the support-chat use cases.
type MessageService struct {
	messages ports.MessageRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewMessageService(messages ports.MessageRepository, users ports.UserRepository, logger zerolog.Logger) *MessageService {
	return &MessageService{messages: messages, users: users, logger: logger}
}

// Send records a message after checking that the recipient exists.
func (s *MessageService) Send(ctx context.Context, from, to, body string) (*domain.Message, error) {
	if _, err := s.users.FindByUsername(ctx, to); err != nil {
		return nil, err
	}

	message := &domain.Message{
		From:   from,
		To:     to,
		Body:   body,
		SentAt: time.Now().UTC(),
	}

	saved, err := s.messages.Insert(ctx, message)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("from", from).Str("to", to).Msg("message sent")
	return saved, nil
}

func (s *MessageService) History(ctx context.Context, username string) ([]*domain.Message, error) {
	return s.messages.FindByParticipant(ctx, username)
}

// Partners lists the non-admin users with an open support conversation.
func (s *MessageService) Partners(ctx context.Context) ([]string, error) {
	admins, err := s.users.UsernamesByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if len(admins) == 0 {
		return nil, nil
	}
	return s.messages.PartnersOf(ctx, admins)
}
