package postgres

import (
	"context"

	"chocoshop/internal/domain/entity"
	domainerrors "chocoshop/internal/domain/errors"
	"chocoshop/internal/domain/repository"
	"chocoshop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// chocolateRepository implements the repository.ChocolateRepository interface
// using GORM.
type chocolateRepository struct {
	db *gorm.DB
}

// NewChocolateRepository is the constructor for chocolateRepository.
func NewChocolateRepository(db *gorm.DB) repository.ChocolateRepository {
	return &chocolateRepository{
		db: db,
	}
}

// ListNewestFirst retrieves every chocolate ordered by id descending.
func (repo *chocolateRepository) ListNewestFirst(ctx context.Context) ([]*entity.Chocolate, error) {
	var chocolateModels []*model.ChocolateModel

	if err := repo.db.WithContext(ctx).
		Order("id DESC").
		Find(&chocolateModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list chocolates")
	}

	chocolates := make([]*entity.Chocolate, 0, len(chocolateModels))
	for _, chocolateM := range chocolateModels {
		chocolates = append(chocolates, toChocolateDomain(chocolateM))
	}

	return chocolates, nil
}

// Create persists a new chocolate and back-fills the generated id.
func (repo *chocolateRepository) Create(ctx context.Context, chocolate *entity.Chocolate) error {
	chocolateM := fromChocolateDomain(chocolate)

	if err := repo.db.WithContext(ctx).Create(chocolateM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingFields.WrapMessage("missing required chocolate information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create chocolate")
	}

	chocolate.ID = chocolateM.ID

	return nil
}

// DeleteByID removes a chocolate. Deleting an absent id is a no-op, so the
// operation is idempotent.
func (repo *chocolateRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ChocolateModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete chocolate")
	}

	return nil
}

// --- Mapper functions ---

func toChocolateDomain(data *model.ChocolateModel) *entity.Chocolate {
	if data == nil {
		return nil
	}

	return &entity.Chocolate{
		ID:    data.ID,
		Name:  data.Name,
		Price: data.Price,
		Img:   data.Img,
	}
}

func fromChocolateDomain(data *entity.Chocolate) *model.ChocolateModel {
	if data == nil {
		return nil
	}

	return &model.ChocolateModel{
		ID:    data.ID,
		Name:  data.Name,
		Price: data.Price,
		Img:   data.Img,
	}
}
