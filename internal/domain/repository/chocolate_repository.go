// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"chocoshop/internal/domain/entity"
)

// ErrChocolateNotFound is returned when a referenced chocolate does not exist.
var ErrChocolateNotFound = errors.New("chocolate not found")

// ChocolateRepository defines the standard operations for catalog persistence.
type ChocolateRepository interface {
	// ListNewestFirst retrieves every chocolate ordered by id descending.
	ListNewestFirst(ctx context.Context) ([]*entity.Chocolate, error)

	// Create persists a new chocolate and fills in its generated id.
	Create(ctx context.Context, chocolate *entity.Chocolate) error

	// DeleteByID removes a chocolate. Deleting an absent id is a no-op.
	DeleteByID(ctx context.Context, id int64) error
}
