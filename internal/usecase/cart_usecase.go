package usecase

import (
	"context"

	"chocoshop/internal/domain/entity"
)

// AddToCartInput defines the data required to add a chocolate to the cart.
// Quantity defaults to 1 when omitted.
type AddToCartInput struct {
	ChocolateID int64 `json:"chocolate_id" validate:"required"`
	Quantity    int   `json:"quantity"`
}

// AddToCartOutput reports the resulting cart row and whether it was newly
// created (as opposed to an existing row being incremented).
type AddToCartOutput struct {
	Item    *entity.CartItem
	Created bool
}

// CartUsecase defines the shared-cart operations.
type CartUsecase interface {
	// ListCart returns every cart row joined with chocolate display data.
	ListCart(ctx context.Context) ([]*entity.CartLine, error)

	// AddToCart upserts a row for the chocolate: a first add inserts, a
	// repeat add increments the existing row's quantity.
	AddToCart(ctx context.Context, input *AddToCartInput) (*AddToCartOutput, error)

	// RemoveFromCart deletes a cart row by its own id. Removing an absent
	// id succeeds.
	RemoveFromCart(ctx context.Context, cartID int64) error
}
