package postgres

import (
	"context"

	"chocoshop/internal/domain/entity"
	domainerrors "chocoshop/internal/domain/errors"
	"chocoshop/internal/domain/repository"
	"chocoshop/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// contactRepository implements the repository.ContactRepository interface
// using GORM.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{
		db: db,
	}
}

// Create persists a new contact message and back-fills the generated id and
// timestamp.
func (repo *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	contactM := &model.ContactModel{
		Name:    contact.Name,
		Email:   contact.Email,
		Message: contact.Message,
	}

	if err := repo.db.WithContext(ctx).Create(contactM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingFields.WrapMessage("missing required contact information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact message")
	}

	contact.ID = contactM.ID
	contact.CreatedAt = contactM.CreatedAt

	return nil
}
