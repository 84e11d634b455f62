package usecase

import (
	"context"

	"chocoshop/internal/domain/entity"
)

// SubmitContactInput defines the data of a contact-form submission. All
// fields are required.
type SubmitContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// ContactUsecase defines the contact inbox operations.
type ContactUsecase interface {
	// SubmitContact validates and persists a contact message.
	SubmitContact(ctx context.Context, input *SubmitContactInput) (*entity.Contact, error)
}
