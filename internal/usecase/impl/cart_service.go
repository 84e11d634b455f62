package impl

import (
	"context"
	"log/slog"

	deliverycontext "chocoshop/internal/delivery/context"
	"chocoshop/internal/domain/entity"
	domainerrors "chocoshop/internal/domain/errors"
	"chocoshop/internal/domain/repository"
	"chocoshop/internal/usecase"

	"github.com/pkg/errors"
)

// cartService implements the CartUsecase interface over the single shared cart.
type cartService struct {
	cartRepo repository.CartRepository
	logger   *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	cartRepo repository.CartRepository,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		cartRepo: cartRepo,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCart returns every cart row joined with chocolate display data.
func (srv *cartService) ListCart(ctx context.Context) ([]*entity.CartLine, error) {
	lines, err := srv.cartRepo.ListWithChocolates(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list cart", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list cart")
	}

	// An empty cart must serialize as [] on the wire, never null.
	if lines == nil {
		lines = []*entity.CartLine{}
	}

	return lines, nil
}

// AddToCart upserts a cart row for the chocolate. The repository's
// AddOrIncrement is atomic, so two concurrent adds for the same chocolate
// never produce two rows.
func (srv *cartService) AddToCart(ctx context.Context, input *usecase.AddToCartInput) (*usecase.AddToCartOutput, error) {
	if input == nil || input.ChocolateID == 0 {
		return nil, errors.WithStack(domainerrors.ErrMissingChocolateID)
	}

	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	item, created, err := srv.cartRepo.AddOrIncrement(ctx, input.ChocolateID, quantity)
	if err != nil {
		if errors.Is(err, repository.ErrChocolateNotFound) {
			return nil, errors.Wrap(domainerrors.ErrChocolateNotFound, "cannot add unknown chocolate to cart")
		}

		srv.log(ctx).Error("Failed to add to cart", slog.Int64("chocolate_id", input.ChocolateID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to add to cart")
	}

	srv.log(ctx).Debug("Cart updated",
		slog.Int64("chocolate_id", input.ChocolateID),
		slog.Int("quantity", item.Quantity),
		slog.Bool("created", created),
	)

	return &usecase.AddToCartOutput{Item: item, Created: created}, nil
}

// RemoveFromCart deletes a cart row by its own id. Removing an absent id
// succeeds.
func (srv *cartService) RemoveFromCart(ctx context.Context, cartID int64) error {
	if err := srv.cartRepo.DeleteByID(ctx, cartID); err != nil {
		srv.log(ctx).Error("Failed to remove from cart", slog.Int64("cart_id", cartID), slog.Any("error", err))

		return errors.Wrap(err, "failed to remove from cart")
	}

	return nil
}
