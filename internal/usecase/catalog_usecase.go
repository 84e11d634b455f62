// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"chocoshop/internal/domain/entity"
)

// AddChocolateInput defines the data required to create a catalog entry.
type AddChocolateInput struct {
	Name  string `json:"name" validate:"required"`
	Price string `json:"price" validate:"required"`
	Img   string `json:"img" validate:"required"`
}

// CatalogUsecase defines the catalog operations the delivery layer depends on.
type CatalogUsecase interface {
	// ListChocolates returns every chocolate, newest first.
	ListChocolates(ctx context.Context) ([]*entity.Chocolate, error)

	// AddChocolate validates and persists a new chocolate.
	AddChocolate(ctx context.Context, input *AddChocolateInput) (*entity.Chocolate, error)

	// DeleteChocolate removes a chocolate and every cart row referencing it.
	// Deleting an absent id succeeds.
	DeleteChocolate(ctx context.Context, id int64) error
}
