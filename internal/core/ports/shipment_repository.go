package ports

import (
	"context"

	"github.com/swiftcargo/tracking-api/internal/core/domain"
)

// ShipmentRepository defines persistence operations for shipments.
//
// Mutations follow a read-modify-write cycle: the service loads the record
// with FindByID, rewrites it, and stores it back with Replace. There is no
// per-record isolation; concurrent writers are last-write-wins.
type ShipmentRepository interface {
	// Insert stores a new shipment and returns it with the store-assigned ID.
	Insert(ctx context.Context, s *domain.Shipment) (*domain.Shipment, error)
	FindByID(ctx context.Context, id string) (*domain.Shipment, error)
	// FindByTrackingNumber matches the whole tracking number exactly.
	// Callers are expected to normalise case before calling.
	FindByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Shipment, error)
	// FindAll returns every shipment ordered by created_at descending.
	FindAll(ctx context.Context) ([]*domain.Shipment, error)
	// Replace overwrites the stored record with s, matched by s.ID.
	// Returns domain.ErrShipmentNotFound when no record matches.
	Replace(ctx context.Context, s *domain.Shipment) error
	// Delete removes the record. Deleting an absent id is not an error.
	Delete(ctx context.Context, id string) error
}
