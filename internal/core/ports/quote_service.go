package ports

import (
	"context"

	"github.com/swiftcargo/tracking-api/internal/core/domain"
)

// CreateQuoteInput carries the submitter-supplied fields for a new quote.
// Status and CreatedAt are assigned by the service and cannot be supplied.
type CreateQuoteInput struct {
	Name        string
	Email       string
	Phone       string
	Origin      string
	Destination string
	Service     string
	Weight      string
	Details     string
}

// QuotePatch is a partial record: nil fields are left untouched.
type QuotePatch struct {
	Name        *string
	Email       *string
	Phone       *string
	Origin      *string
	Destination *string
	Service     *string
	Weight      *string
	Details     *string
	Status      *string
}

// QuoteService defines quote request operations.
type QuoteService interface {
	Create(ctx context.Context, input CreateQuoteInput) (*domain.Quote, error)
	List(ctx context.Context) ([]*domain.Quote, error)
	Patch(ctx context.Context, id string, patch QuotePatch) (*domain.Quote, error)
	Delete(ctx context.Context, id string) error
}
