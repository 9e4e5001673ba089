package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/swiftcargo/tracking-api/internal/core/domain"
	"github.com/swiftcargo/tracking-api/internal/core/ports"
)

// QuoteService implements quote request CRUD.
type QuoteService struct {
	repo   ports.QuoteRepository
	logger zerolog.Logger
}

func NewQuoteService(repo ports.QuoteRepository, logger zerolog.Logger) *QuoteService {
	return &QuoteService{repo: repo, logger: logger}
}

// Create stores a new quote request. Status is forced to "new" and CreatedAt
// to now; any submitter-supplied values for those fields are ignored.
func (s *QuoteService) Create(ctx context.Context, input ports.CreateQuoteInput) (*domain.Quote, error) {
	quote := &domain.Quote{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Origin:      input.Origin,
		Destination: input.Destination,
		Service:     input.Service,
		Weight:      input.Weight,
		Details:     input.Details,
		Status:      domain.QuoteStatusNew,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, quote)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create quote")
		return nil, err
	}

	s.logger.Info().Str("quote_id", created.ID).Str("email", created.Email).Msg("quote created")
	return created, nil
}

// List returns all quotes, newest first.
func (s *QuoteService) List(ctx context.Context) ([]*domain.Quote, error) {
	return s.repo.FindAll(ctx)
}

// Patch shallow-merges the supplied fields. An unknown id is ErrQuoteNotFound.
func (s *QuoteService) Patch(ctx context.Context, id string, patch ports.QuotePatch) (*domain.Quote, error) {
	quote, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		quote.Name = *patch.Name
	}
	if patch.Email != nil {
		quote.Email = *patch.Email
	}
	if patch.Phone != nil {
		quote.Phone = *patch.Phone
	}
	if patch.Origin != nil {
		quote.Origin = *patch.Origin
	}
	if patch.Destination != nil {
		quote.Destination = *patch.Destination
	}
	if patch.Service != nil {
		quote.Service = *patch.Service
	}
	if patch.Weight != nil {
		quote.Weight = *patch.Weight
	}
	if patch.Details != nil {
		quote.Details = *patch.Details
	}
	if patch.Status != nil {
		quote.Status = *patch.Status
	}

	if err := s.repo.Replace(ctx, quote); err != nil {
		return nil, err
	}
	return quote, nil
}

// Delete hard-removes the quote. Deleting an absent id succeeds.
func (s *QuoteService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
