package postgres

import (
	"context"

	"chocoshop/internal/domain/entity"
	domainerrors "chocoshop/internal/domain/errors"
	"chocoshop/internal/domain/repository"
	"chocoshop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface using GORM.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// ListWithChocolates retrieves every cart row joined with its chocolate's
// display data. The flattened record carries both ids under distinct names.
func (repo *cartRepository) ListWithChocolates(ctx context.Context) ([]*entity.CartLine, error) {
	// Pre-allocated so an empty cart yields an empty slice, never nil.
	lines := make([]*entity.CartLine, 0)

	if err := repo.db.WithContext(ctx).
		Table("cart").
		Select("cart.id AS cart_id, cart.quantity, c.id AS chocolate_id, c.name, c.price, c.img").
		Joins("JOIN chocolates c ON cart.chocolate_id = c.id").
		Order("cart.id").
		Scan(&lines).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cart")
	}

	return lines, nil
}

// AddOrIncrement upserts a cart row in a single statement: an INSERT that, on
// conflict with the unique chocolate_id index, increments the existing row's
// quantity instead. Concurrent adds for the same chocolate serialize on the
// index, so two calls can never both insert.
func (repo *cartRepository) AddOrIncrement(ctx context.Context, chocolateID int64, quantity int) (*entity.CartItem, bool, error) {
	itemM := &model.CartModel{
		ChocolateID: chocolateID,
		Quantity:    quantity,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "chocolate_id"}},
				DoUpdates: clause.Assignments(map[string]any{"quantity": gorm.Expr("cart.quantity + EXCLUDED.quantity")}),
			},
			clause.Returning{},
		).
		Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, false, repository.ErrChocolateNotFound
		}

		return nil, false, domainerrors.NewDatabaseExecuteError(err, "failed to upsert cart row")
	}

	// Quantity is always >= 1, so a fresh insert returns exactly the
	// requested quantity while an increment always returns more.
	created := itemM.Quantity == quantity

	return toCartItemDomain(itemM), created, nil
}

// DeleteByID removes a cart row by its own id. Deleting an absent id is a
// no-op.
func (repo *cartRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CartModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete cart row")
	}

	return nil
}

// DeleteByChocolateID removes every cart row referencing the chocolate.
func (repo *cartRepository) DeleteByChocolateID(ctx context.Context, chocolateID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("chocolate_id = ?", chocolateID).
		Delete(&model.CartModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete cart rows for chocolate")
	}

	return nil
}

// --- Mapper functions ---

func toCartItemDomain(data *model.CartModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	return &entity.CartItem{
		ID:          data.ID,
		ChocolateID: data.ChocolateID,
		Quantity:    data.Quantity,
		CreatedAt:   data.CreatedAt,
	}
}
