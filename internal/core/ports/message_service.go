package ports

import (
	"context"

	"github.com/mercadillo/storefront/internal/core/domain"
)

// MessageService defines the support-chat use cases.
type MessageService interface {
	// Send records a message from one user to another. The recipient must be
	// a registered account.
	Send(ctx context.Context, from, to, body string) (*domain.Message, error)
	// History returns the full conversation involving username, oldest first.
	History(ctx context.Context, username string) ([]*domain.Message, error)
	// Partners lists the non-admin users that have exchanged messages with
	// any admin, for the admin conversation picker.
	Partners(ctx context.Context) ([]string, error)
}
