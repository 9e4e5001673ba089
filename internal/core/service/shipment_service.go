package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/swiftcargo/tracking-api/internal/core/domain"
	"github.com/swiftcargo/tracking-api/internal/core/ports"
)

// TrackingCache abstracts the public-lookup cache (Redis). Get returns
// (nil, nil) on a miss. Cache failures are never fatal: callers log and fall
// through to the store.
type TrackingCache interface {
	Get(ctx context.Context, trackingNumber string) (*domain.Shipment, error)
	Set(ctx context.Context, s *domain.Shipment) error
	Invalidate(ctx context.Context, trackingNumber string) error
}

// ShipmentService implements the shipment lifecycle and event ledger rules.
type ShipmentService struct {
	repo   ports.ShipmentRepository
	cache  TrackingCache
	logger zerolog.Logger
}

// NewShipmentService returns a ShipmentService. cache may be nil, in which
// case every tracking lookup goes to the store.
func NewShipmentService(repo ports.ShipmentRepository, cache TrackingCache, logger zerolog.Logger) *ShipmentService {
	return &ShipmentService{repo: repo, cache: cache, logger: logger}
}

// Create assigns a tracking number and timestamps, defaults status to
// "Created", and seeds the ledger with a synthetic Created event at the
// origin when the caller supplies no events.
func (s *ShipmentService) Create(ctx context.Context, input ports.CreateShipmentInput) (*domain.Shipment, error) {
	now := time.Now().UTC()

	status := input.Status
	if status == "" {
		status = domain.StatusCreated
	}

	shipment := &domain.Shipment{
		TrackingNumber: newTrackingNumber(),
		Customer:       input.Customer,
		Email:          input.Email,
		Origin:         input.Origin,
		Destination:    input.Destination,
		Service:        input.Service,
		Weight:         input.Weight,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if len(input.Events) > 0 {
		shipment.Events = eventsFromInput(input.Events)
	} else {
		shipment.Events = []domain.Event{{
			ID:       newEventID(),
			Time:     now,
			Status:   domain.StatusCreated,
			Location: input.Origin,
		}}
	}

	created, err := s.repo.Insert(ctx, shipment)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create shipment")
		return nil, err
	}

	s.logger.Info().Str("tracking_number", created.TrackingNumber).Str("customer", created.Customer).Msg("shipment created")
	return created, nil
}

// List returns all shipments, newest first.
func (s *ShipmentService) List(ctx context.Context) ([]*domain.Shipment, error) {
	return s.repo.FindAll(ctx)
}

// Get returns the shipment with the given store id.
func (s *ShipmentService) Get(ctx context.Context, id string) (*domain.Shipment, error) {
	return s.repo.FindByID(ctx, id)
}

// Track resolves a tracking number case-insensitively, serving from the
// cache when possible. This is the only unauthenticated read path.
func (s *ShipmentService) Track(ctx context.Context, trackingNumber string) (*domain.Shipment, error) {
	tn := strings.ToUpper(strings.TrimSpace(trackingNumber))

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, tn)
		if err != nil {
			s.logger.Warn().Err(err).Str("tracking_number", tn).Msg("tracking cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	shipment, err := s.repo.FindByTrackingNumber(ctx, tn)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, shipment); err != nil {
			s.logger.Warn().Err(err).Str("tracking_number", tn).Msg("tracking cache write failed")
		}
	}
	return shipment, nil
}

// Patch shallow-merges the supplied fields into the record and refreshes
// UpdatedAt. A non-nil Events overwrites the ledger wholesale, with no
// validation beyond assigning ids to entries that lack one.
func (s *ShipmentService) Patch(ctx context.Context, id string, patch ports.ShipmentPatch) (*domain.Shipment, error) {
	shipment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Customer != nil {
		shipment.Customer = *patch.Customer
	}
	if patch.Email != nil {
		shipment.Email = *patch.Email
	}
	if patch.Origin != nil {
		shipment.Origin = *patch.Origin
	}
	if patch.Destination != nil {
		shipment.Destination = *patch.Destination
	}
	if patch.Service != nil {
		shipment.Service = *patch.Service
	}
	if patch.Weight != nil {
		shipment.Weight = *patch.Weight
	}
	if patch.Status != nil {
		shipment.Status = *patch.Status
	}
	if patch.Events != nil {
		shipment.Events = eventsFromInput(*patch.Events)
	}
	shipment.UpdatedAt = time.Now().UTC()

	if err := s.repo.Replace(ctx, shipment); err != nil {
		return nil, err
	}
	s.invalidate(ctx, shipment.TrackingNumber)
	return shipment, nil
}

// AppendEvent inserts a new event at the front of the ledger. The shipment's
// status is overwritten only when the caller supplied one.
func (s *ShipmentService) AppendEvent(ctx context.Context, id string, input ports.AppendEventInput) (*domain.Shipment, error) {
	shipment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	event := domain.Event{
		ID:       newEventID(),
		Time:     input.Time,
		Status:   input.Status,
		Location: input.Location,
		Note:     input.Note,
	}
	if event.Time.IsZero() {
		event.Time = now
	}
	if event.Status == "" {
		event.Status = domain.StatusInTransit
	}

	shipment.Events = append([]domain.Event{event}, shipment.Events...)
	if input.Status != "" {
		shipment.Status = input.Status
	}
	shipment.UpdatedAt = now

	if err := s.repo.Replace(ctx, shipment); err != nil {
		return nil, err
	}
	s.invalidate(ctx, shipment.TrackingNumber)

	s.logger.Info().Str("tracking_number", shipment.TrackingNumber).Str("status", event.Status).Msg("event appended")
	return shipment, nil
}

// RemoveEvent deletes the matching ledger entry, preserving the relative
// order of the remainder. The shipment's status is never touched; an unknown
// eventID is a no-op.
func (s *ShipmentService) RemoveEvent(ctx context.Context, id, eventID string) (*domain.Shipment, error) {
	shipment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	kept := shipment.Events[:0:0]
	for _, e := range shipment.Events {
		if e.ID != eventID {
			kept = append(kept, e)
		}
	}
	shipment.Events = kept
	shipment.UpdatedAt = time.Now().UTC()

	if err := s.repo.Replace(ctx, shipment); err != nil {
		return nil, err
	}
	s.invalidate(ctx, shipment.TrackingNumber)
	return shipment, nil
}

// Delete hard-removes the shipment. Deleting an absent id succeeds.
func (s *ShipmentService) Delete(ctx context.Context, id string) error {
	shipment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrShipmentNotFound) {
			return nil
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, shipment.TrackingNumber)

	s.logger.Info().Str("tracking_number", shipment.TrackingNumber).Msg("shipment deleted")
	return nil
}

func (s *ShipmentService) invalidate(ctx context.Context, trackingNumber string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, trackingNumber); err != nil {
		s.logger.Warn().Err(err).Str("tracking_number", trackingNumber).Msg("tracking cache invalidation failed")
	}
}

// eventsFromInput converts caller-supplied ledger entries, assigning an id to
// any entry that lacks one. Order is preserved exactly as supplied.
func eventsFromInput(inputs []ports.EventInput) []domain.Event {
	events := make([]domain.Event, len(inputs))
	for i, in := range inputs {
		id := in.ID
		if id == "" {
			id = newEventID()
		}
		events[i] = domain.Event{
			ID:       id,
			Time:     in.Time,
			Status:   in.Status,
			Location: in.Location,
			Note:     in.Note,
		}
	}
	return events
}
