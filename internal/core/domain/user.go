package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")

// RoleAdmin is the only role this system issues. Registration is open for
// exactly one account; every credential ever stored is the administrator.
const RoleAdmin = "admin"

// User models the single administrative account.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}
