package repository

import (
	"context"
	"errors"

	"chocoshop/internal/domain/entity"
)

// ErrAdminNotFound is returned when no admin exists for a username.
var ErrAdminNotFound = errors.New("admin not found")

// AdminRepository reads administrator accounts. Admins are written only by
// the seed step, so there is no Create through this interface.
type AdminRepository interface {
	// FindByUsername retrieves a single admin by their unique username.
	FindByUsername(ctx context.Context, username string) (*entity.Admin, error)
}
