package ports

import (
	"context"

	"github.com/swiftcargo/tracking-api/internal/core/domain"
)

// AuthService implements single-admin registration and login. Both return a
// signed session token alongside the credential record.
type AuthService interface {
	Register(ctx context.Context, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
