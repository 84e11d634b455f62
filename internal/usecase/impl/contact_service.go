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

// contactService implements the ContactUsecase interface.
type contactService struct {
	contactRepo repository.ContactRepository
	logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(
	contactRepo repository.ContactRepository,
	logger *slog.Logger,
) usecase.ContactUsecase {
	return &contactService{
		contactRepo: contactRepo,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitContact validates and persists a contact message. No deduplication,
// no rate limiting.
func (srv *contactService) SubmitContact(ctx context.Context, input *usecase.SubmitContactInput) (*entity.Contact, error) {
	if input == nil ||
		strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Message) == "" {
		return nil, errors.WithStack(domainerrors.ErrMissingFields)
	}

	contact := &entity.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	}

	if err := srv.contactRepo.Create(ctx, contact); err != nil {
		srv.log(ctx).Error("Failed to save contact message", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to save contact message")
	}

	srv.log(ctx).Info("Contact message received", slog.Int64("id", contact.ID))

	return contact, nil
}
