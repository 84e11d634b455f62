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

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogServiceForTest(t *testing.T) (usecase.CatalogUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockChocolateRepository) {
	txManager := mockRepo.NewMockTransactionManager(t)
	chocolateRepo := mockRepo.NewMockChocolateRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewCatalogService(txManager, chocolateRepo, logger), txManager, chocolateRepo
}

func TestCatalogService_ListChocolates_Success(t *testing.T) {
	service, _, chocolateRepo := newCatalogServiceForTest(t)
	ctx := context.Background()

	expected := []*entity.Chocolate{
		{ID: 2, Name: "Milk Chocolate", Price: "₹100", Img: "images/chocolate2.jpg"},
		{ID: 1, Name: "Dark Chocolate", Price: "₹120", Img: "images/chocolate1.jpg"},
	}
	chocolateRepo.EXPECT().ListNewestFirst(ctx).Return(expected, nil)

	chocolates, err := service.ListChocolates(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, chocolates)
}

func TestCatalogService_AddChocolate_Success(t *testing.T) {
	service, _, chocolateRepo := newCatalogServiceForTest(t)
	ctx := context.Background()

	chocolateRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Chocolate")).
		Run(func(ctx context.Context, chocolate *entity.Chocolate) {
			chocolate.ID = 11
		}).
		Return(nil)

	chocolate, err := service.AddChocolate(ctx, &usecase.AddChocolateInput{
		Name:  "Ruby Praline",
		Price: "₹180",
		Img:   "images/ruby.jpg",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), chocolate.ID)
	assert.Equal(t, "Ruby Praline", chocolate.Name)
}

func TestCatalogService_AddChocolate_MissingFields(t *testing.T) {
	service, _, _ := newCatalogServiceForTest(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input *usecase.AddChocolateInput
	}{
		{"nil input", nil},
		{"blank name", &usecase.AddChocolateInput{Name: "  ", Price: "₹100", Img: "images/a.jpg"}},
		{"blank price", &usecase.AddChocolateInput{Name: "Truffle", Price: "", Img: "images/a.jpg"}},
		{"blank img", &usecase.AddChocolateInput{Name: "Truffle", Price: "₹100", Img: "   "}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			chocolate, err := service.AddChocolate(ctx, tc.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
			assert.Nil(t, chocolate)
		})
	}
}

func TestCatalogService_AddChocolate_InlineImageRejected(t *testing.T) {
	service, _, _ := newCatalogServiceForTest(t)
	ctx := context.Background()

	// The repository mock has no expectations, so any store access fails
	// the test: the data URI must be rejected before persistence.
	chocolate, err := service.AddChocolate(ctx, &usecase.AddChocolateInput{
		Name:  "Inline",
		Price: "₹100",
		Img:   "data:image/png;base64,iVBORw0KGgo=",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInlineImage)
	assert.Nil(t, chocolate)
}

func TestCatalogService_DeleteChocolate_Success(t *testing.T) {
	service, txManager, _ := newCatalogServiceForTest(t)
	ctx := context.Background()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)
			mockChocolateRepo := mockRepo.NewMockChocolateRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().ChocolateRepo().Return(mockChocolateRepo)

			mockCartRepo.EXPECT().DeleteByChocolateID(ctx, int64(7)).Return(nil)
			mockChocolateRepo.EXPECT().DeleteByID(ctx, int64(7)).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := service.DeleteChocolate(ctx, 7)

	require.NoError(t, err)
}

func TestCatalogService_DeleteChocolate_CartDeleteFails(t *testing.T) {
	service, txManager, _ := newCatalogServiceForTest(t)
	ctx := context.Background()

	dbErr := errors.New("connection reset")

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().CartRepo().Return(mockCartRepo)
			mockFactory.EXPECT().ChocolateRepo().Return(mockRepo.NewMockChocolateRepository(t))

			mockCartRepo.EXPECT().DeleteByChocolateID(ctx, int64(7)).Return(dbErr)

			return fn(mockFactory)
		})

	err := service.DeleteChocolate(ctx, 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}
