package ports

import (
	"context"

	"github.com/swiftcargo/tracking-api/internal/core/domain"
)

// AuthRepository defines persistence for the administrative credential.
type AuthRepository interface {
	// Count reports how many credentials exist. Anything above zero closes
	// registration permanently.
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail matches the lowercased email exactly.
	// Returns domain.ErrUserNotFound when no record matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
