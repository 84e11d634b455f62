package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"chocoshop/internal/domain/entity"
	domainerrors "chocoshop/internal/domain/errors"
	"chocoshop/internal/domain/repository"
	mockRepo "chocoshop/internal/mocks/repository"
	"chocoshop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartServiceForTest(t *testing.T) (usecase.CartUsecase, *mockRepo.MockCartRepository) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewCartService(cartRepo, logger), cartRepo
}

func TestCartService_ListCart_Success(t *testing.T) {
	service, cartRepo := newCartServiceForTest(t)
	ctx := context.Background()

	expected := []*entity.CartLine{
		{CartID: 1, Quantity: 2, ChocolateID: 3, Name: "White Chocolate", Price: "₹110", Img: "images/chocolate3.jpg"},
	}
	cartRepo.EXPECT().ListWithChocolates(ctx).Return(expected, nil)

	lines, err := service.ListCart(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, lines)
}

// A nil slice from the store would serialize as null; the service must hand
// the delivery layer an empty slice instead.
func TestCartService_ListCart_EmptyCartIsNotNil(t *testing.T) {
	service, cartRepo := newCartServiceForTest(t)
	ctx := context.Background()

	cartRepo.EXPECT().ListWithChocolates(ctx).Return(nil, nil)

	lines, err := service.ListCart(ctx)

	require.NoError(t, err)
	require.NotNil(t, lines)
	assert.Empty(t, lines)
}

func TestCartService_AddToCart_MissingChocolateID(t *testing.T) {
	service, _ := newCartServiceForTest(t)
	ctx := context.Background()

	for _, input := range []*usecase.AddToCartInput{nil, {ChocolateID: 0, Quantity: 2}} {
		output, err := service.AddToCart(ctx, input)

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrMissingChocolateID)
		assert.Nil(t, output)
	}
}

func TestCartService_AddToCart_DefaultsQuantityToOne(t *testing.T) {
	service, cartRepo := newCartServiceForTest(t)
	ctx := context.Background()

	item := &entity.CartItem{ID: 1, ChocolateID: 3, Quantity: 1}
	cartRepo.EXPECT().AddOrIncrement(ctx, int64(3), 1).Return(item, true, nil)

	output, err := service.AddToCart(ctx, &usecase.AddToCartInput{ChocolateID: 3, Quantity: 0})

	require.NoError(t, err)
	assert.True(t, output.Created)
	assert.Equal(t, 1, output.Item.Quantity)
}

func TestCartService_AddToCart_IncrementsExistingRow(t *testing.T) {
	service, cartRepo := newCartServiceForTest(t)
	ctx := context.Background()

	item := &entity.CartItem{ID: 1, ChocolateID: 3, Quantity: 5}
	cartRepo.EXPECT().AddOrIncrement(ctx, int64(3), 2).Return(item, false, nil)

	output, err := service.AddToCart(ctx, &usecase.AddToCartInput{ChocolateID: 3, Quantity: 2})

	require.NoError(t, err)
	assert.False(t, output.Created)
	assert.Equal(t, 5, output.Item.Quantity)
}

func TestCartService_AddToCart_UnknownChocolate(t *testing.T) {
	service, cartRepo := newCartServiceForTest(t)
	ctx := context.Background()

	cartRepo.EXPECT().
		AddOrIncrement(ctx, int64(99), 1).
		Return(nil, false, repository.ErrChocolateNotFound)

	output, err := service.AddToCart(ctx, &usecase.AddToCartInput{ChocolateID: 99, Quantity: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrChocolateNotFound)
	assert.Nil(t, output)
}

func TestCartService_RemoveFromCart_Success(t *testing.T) {
	service, cartRepo := newCartServiceForTest(t)
	ctx := context.Background()

	cartRepo.EXPECT().DeleteByID(ctx, int64(4)).Return(nil)

	require.NoError(t, service.RemoveFromCart(ctx, 4))
}
