package postgres

import (
	"context"

	"chocoshop/internal/domain/entity"
	"chocoshop/internal/domain/repository"
	"chocoshop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adminRepository implements the repository.AdminRepository interface using
// GORM.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{
		db: db,
	}
}

// FindByUsername retrieves a single admin by their unique username.
func (repo *adminRepository) FindByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	var adminM model.AdminModel

	if err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by username")
	}

	return &entity.Admin{
		ID:           adminM.ID,
		Username:     adminM.Username,
		PasswordHash: adminM.PasswordHash,
		CreatedAt:    adminM.CreatedAt,
	}, nil
}
