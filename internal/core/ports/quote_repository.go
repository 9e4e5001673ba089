package ports

import (
	"context"

	"github.com/swiftcargo/tracking-api/internal/core/domain"
)

// QuoteRepository defines persistence operations for quote requests.
type QuoteRepository interface {
	Insert(ctx context.Context, q *domain.Quote) (*domain.Quote, error)
	FindByID(ctx context.Context, id string) (*domain.Quote, error)
	// FindAll returns every quote ordered by created_at descending.
	FindAll(ctx context.Context) ([]*domain.Quote, error)
	// Replace overwrites the stored record with q, matched by q.ID.
	// Returns domain.ErrQuoteNotFound when no record matches.
	Replace(ctx context.Context, q *domain.Quote) error
	// Delete removes the record. Deleting an absent id is not an error.
	Delete(ctx context.Context, id string) error
}
