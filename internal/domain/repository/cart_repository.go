package repository

import (
	"context"
	"errors"

	"chocoshop/internal/domain/entity"
)

// ErrCartItemNotFound is returned when a cart row does not exist.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository defines the operations on the single shared cart.
type CartRepository interface {
	// ListWithChocolates retrieves every cart row joined with its
	// chocolate's display data.
	ListWithChocolates(ctx context.Context) ([]*entity.CartLine, error)

	// AddOrIncrement atomically inserts a cart row for the chocolate or, if
	// one already exists, increments its quantity by the given amount. The
	// boolean reports whether a new row was created. Concurrent calls for
	// the same chocolate never produce two rows.
	AddOrIncrement(ctx context.Context, chocolateID int64, quantity int) (*entity.CartItem, bool, error)

	// DeleteByID removes a cart row by its own id (not the chocolate id).
	// Deleting an absent id is a no-op.
	DeleteByID(ctx context.Context, id int64) error

	// DeleteByChocolateID removes every cart row referencing the chocolate.
	DeleteByChocolateID(ctx context.Context, chocolateID int64) error
}
