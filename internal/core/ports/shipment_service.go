package ports

import (
	"context"
	"time"

	"github.com/swiftcargo/tracking-api/internal/core/domain"
)

// EventInput is a caller-supplied ledger entry, used when creating a shipment
// with an explicit event history and when PATCH overwrites the ledger
// wholesale. Values are stored as given; no protocol validation is applied.
type EventInput struct {
	ID       string
	Time     time.Time
	Status   string
	Location string
	Note     string
}

// CreateShipmentInput carries the operator-supplied fields for a new
// shipment. All fields are optional free-form text; Status defaults to
// "Created" and a nil Events slice is seeded with a synthetic Created event.
type CreateShipmentInput struct {
	Customer    string
	Email       string
	Origin      string
	Destination string
	Service     string
	Weight      string
	Status      string
	Events      []EventInput
}

// ShipmentPatch is a partial record: nil fields are left untouched, non-nil
// fields overwrite. Events, when non-nil, replaces the ledger wholesale.
type ShipmentPatch struct {
	Customer    *string
	Email       *string
	Origin      *string
	Destination *string
	Service     *string
	Weight      *string
	Status      *string
	Events      *[]EventInput
}

// AppendEventInput describes a new ledger entry. A zero Time defaults to the
// append time; an empty Status defaults to "In Transit" on the event but
// leaves the parent shipment's status unchanged.
type AppendEventInput struct {
	Time     time.Time
	Status   string
	Location string
	Note     string
}

// ShipmentService defines the shipment lifecycle operations.
type ShipmentService interface {
	Create(ctx context.Context, input CreateShipmentInput) (*domain.Shipment, error)
	List(ctx context.Context) ([]*domain.Shipment, error)
	Get(ctx context.Context, id string) (*domain.Shipment, error)
	// Track resolves a tracking number case-insensitively. This is the public
	// lookup path and may be served from cache.
	Track(ctx context.Context, trackingNumber string) (*domain.Shipment, error)
	Patch(ctx context.Context, id string, patch ShipmentPatch) (*domain.Shipment, error)
	AppendEvent(ctx context.Context, id string, input AppendEventInput) (*domain.Shipment, error)
	// RemoveEvent deletes the matching ledger entry. An unknown eventID is a
	// no-op, not an error; an unknown shipment id is ErrShipmentNotFound.
	RemoveEvent(ctx context.Context, id, eventID string) (*domain.Shipment, error)
	Delete(ctx context.Context, id string) error
}
