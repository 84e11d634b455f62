package repository

import (
	"context"

	"chocoshop/internal/domain/entity"
)

// ContactRepository persists contact-form submissions. The API never reads,
// updates or deletes them.
type ContactRepository interface {
	// Create persists a new contact message and fills in its generated id
	// and timestamp.
	Create(ctx context.Context, contact *entity.Contact) error
}
