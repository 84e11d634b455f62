// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "chocoshop/internal/delivery/context"
	"chocoshop/internal/domain/entity"
	domainerrors "chocoshop/internal/domain/errors"
	"chocoshop/internal/domain/repository"
	"chocoshop/internal/usecase"

	"github.com/pkg/errors"
)

// inlineImagePrefix marks a data-URI image payload. Such values are rejected
// to bound row size and force asset-path usage.
const inlineImagePrefix = "data:image"

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager     repository.TransactionManager
	chocolateRepo repository.ChocolateRepository
	logger        *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	txManager repository.TransactionManager,
	chocolateRepo repository.ChocolateRepository,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		txManager:     txManager,
		chocolateRepo: chocolateRepo,
		logger:        logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListChocolates returns every chocolate, newest first.
func (srv *catalogService) ListChocolates(ctx context.Context) ([]*entity.Chocolate, error) {
	chocolates, err := srv.chocolateRepo.ListNewestFirst(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list chocolates", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list chocolates")
	}

	return chocolates, nil
}

// AddChocolate validates the input and persists a new catalog entry.
// Validation runs before any store access.
func (srv *catalogService) AddChocolate(ctx context.Context, input *usecase.AddChocolateInput) (*entity.Chocolate, error) {
	if input == nil ||
		strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Price) == "" ||
		strings.TrimSpace(input.Img) == "" {
		return nil, errors.WithStack(domainerrors.ErrMissingFields)
	}
	if strings.HasPrefix(input.Img, inlineImagePrefix) {
		return nil, errors.WithStack(domainerrors.ErrInlineImage)
	}

	chocolate := &entity.Chocolate{
		Name:  input.Name,
		Price: input.Price,
		Img:   input.Img,
	}

	if err := srv.chocolateRepo.Create(ctx, chocolate); err != nil {
		srv.log(ctx).Error("Failed to create chocolate", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create chocolate")
	}

	srv.log(ctx).Info("Chocolate added", slog.Int64("id", chocolate.ID), slog.String("name", chocolate.Name))

	return chocolate, nil
}

// DeleteChocolate removes a chocolate and every cart row referencing it in a
// single transaction. Deleting an absent id still succeeds.
func (srv *catalogService) DeleteChocolate(ctx context.Context, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		chocolateRepo := repoFactory.ChocolateRepo()

		// Cart rows go first so the chocolate delete never trips the FK.
		if err := cartRepo.DeleteByChocolateID(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete cart rows for chocolate")
		}

		if err := chocolateRepo.DeleteByID(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete chocolate")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to delete chocolate", slog.Int64("id", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute chocolate deletion transaction")
	}

	srv.log(ctx).Info("Chocolate deleted", slog.Int64("id", id))

	return nil
}
