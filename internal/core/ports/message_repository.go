package ports

import (
	"context"

	"github.com/mercadillo/storefront/internal/core/domain"
)

// MessageRepository defines persistence for the support-chat log.
type MessageRepository interface {
	Insert(ctx context.Context, message *domain.Message) (*domain.Message, error)
	// FindByParticipant returns every message sent by or to username,
	// ordered by send time ascending.
	FindByParticipant(ctx context.Context, username string) ([]*domain.Message, error)
	// PartnersOf returns the distinct usernames that exchanged messages with
	// any of the given usernames, excluding the given usernames themselves.
	PartnersOf(ctx context.Context, usernames []string) ([]string, error)
}
