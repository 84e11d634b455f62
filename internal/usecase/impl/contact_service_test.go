package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"chocoshop/internal/domain/entity"
	domainerrors "chocoshop/internal/domain/errors"
	mockRepo "chocoshop/internal/mocks/repository"
	"chocoshop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newContactServiceForTest(t *testing.T) (usecase.ContactUsecase, *mockRepo.MockContactRepository) {
	contactRepo := mockRepo.NewMockContactRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewContactService(contactRepo, logger), contactRepo
}

func TestContactService_SubmitContact_Success(t *testing.T) {
	service, contactRepo := newContactServiceForTest(t)
	ctx := context.Background()

	contactRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Contact")).
		Run(func(ctx context.Context, contact *entity.Contact) {
			contact.ID = 5
		}).
		Return(nil)

	contact, err := service.SubmitContact(ctx, &usecase.SubmitContactInput{
		Name:    "Asha",
		Email:   "asha@example.com",
		Message: "Do you ship internationally?",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), contact.ID)
	assert.Equal(t, "asha@example.com", contact.Email)
}

func TestContactService_SubmitContact_MissingFields(t *testing.T) {
	service, _ := newContactServiceForTest(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input *usecase.SubmitContactInput
	}{
		{"nil input", nil},
		{"blank name", &usecase.SubmitContactInput{Name: " ", Email: "a@b.c", Message: "hi"}},
		{"blank email", &usecase.SubmitContactInput{Name: "Asha", Email: "", Message: "hi"}},
		{"blank message", &usecase.SubmitContactInput{Name: "Asha", Email: "a@b.c", Message: "  "}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			contact, err := service.SubmitContact(ctx, tc.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
			assert.Nil(t, contact)
		})
	}
}
