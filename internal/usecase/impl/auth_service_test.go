package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"chocoshop/config"
	"chocoshop/internal/domain/entity"
	domainerrors "chocoshop/internal/domain/errors"
	"chocoshop/internal/domain/repository"
	mockRepo "chocoshop/internal/mocks/repository"
	mockService "chocoshop/internal/mocks/service"
	"chocoshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixture struct {
	service     usecase.AuthUsecase
	adminRepo   *mockRepo.MockAdminRepository
	sessionRepo *mockRepo.MockSessionRepository
	hasher      *mockService.MockPasswordHasher
}

func newAuthServiceForTest(t *testing.T) *authServiceFixture {
	adminRepo := mockRepo.NewMockAdminRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Session: config.SessionConfig{
			CookieName: "choco_session",
			TTL:        24 * time.Hour,
		},
	}

	service := NewAuthService(AuthServiceParams{
		AdminRepo:   adminRepo,
		SessionRepo: sessionRepo,
		Hasher:      hasher,
		Config:      cfg,
		Logger:      logger,
	})

	return &authServiceFixture{
		service:     service,
		adminRepo:   adminRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	f := newAuthServiceForTest(t)
	ctx := context.Background()

	admin := &entity.Admin{ID: 1, Username: "admin", PasswordHash: "$2a$10$stored"}

	f.adminRepo.EXPECT().FindByUsername(ctx, "admin").Return(admin, nil)
	f.hasher.EXPECT().Check("admin123", admin.PasswordHash).Return(true)
	f.sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(ctx context.Context, session *entity.Session) {
			_, err := uuid.Parse(session.Token)
			assert.NoError(t, err)
			assert.Equal(t, int64(1), session.AdminID)
			assert.WithinDuration(t, time.Now().Add(24*time.Hour), session.ExpiresAt, time.Minute)
		}).
		Return(nil)

	output, err := f.service.Login(ctx, &usecase.LoginInput{Username: "admin", Password: "admin123"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), output.Admin.ID)
	assert.Equal(t, "admin", output.Admin.Username)
	assert.NotEmpty(t, output.Session.Token)
}

func TestAuthService_Login_MissingCredentials(t *testing.T) {
	f := newAuthServiceForTest(t)
	ctx := context.Background()

	for _, input := range []*usecase.LoginInput{
		nil,
		{Username: "", Password: "admin123"},
		{Username: "admin", Password: ""},
	} {
		output, err := f.service.Login(ctx, input)

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrMissingCredentials)
		assert.Nil(t, output)
	}
}

// Unknown usernames and wrong passwords must be indistinguishable to the
// caller so usernames cannot be probed.
func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown username", func(t *testing.T) {
		f := newAuthServiceForTest(t)
		f.adminRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrAdminNotFound)

		output, err := f.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "whatever"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		assert.Nil(t, output)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthServiceForTest(t)
		admin := &entity.Admin{ID: 1, Username: "admin", PasswordHash: "$2a$10$stored"}
		f.adminRepo.EXPECT().FindByUsername(ctx, "admin").Return(admin, nil)
		f.hasher.EXPECT().Check("wrong", admin.PasswordHash).Return(false)

		output, err := f.service.Login(ctx, &usecase.LoginInput{Username: "admin", Password: "wrong"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		assert.Nil(t, output)
	})
}

func TestAuthService_Logout_Success(t *testing.T) {
	f := newAuthServiceForTest(t)
	ctx := context.Background()

	token := uuid.New().String()
	f.sessionRepo.EXPECT().DeleteByToken(ctx, token).Return(nil)

	require.NoError(t, f.service.Logout(ctx, token))
}

func TestAuthService_Logout_NoSessionIsNoop(t *testing.T) {
	f := newAuthServiceForTest(t)
	ctx := context.Background()

	// No expectations on the session repo: an empty token must not touch it.
	require.NoError(t, f.service.Logout(ctx, ""))
}

func TestAuthService_WhoAmI_Success(t *testing.T) {
	f := newAuthServiceForTest(t)
	ctx := context.Background()

	token := uuid.New().String()
	session := &entity.Session{
		Token:     token,
		AdminID:   1,
		Username:  "admin",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	f.sessionRepo.EXPECT().FindByToken(ctx, token).Return(session, nil)

	identity, err := f.service.WhoAmI(ctx, token)

	require.NoError(t, err)
	assert.Equal(t, int64(1), identity.ID)
	assert.Equal(t, "admin", identity.Username)
}

func TestAuthService_WhoAmI_NotLoggedIn(t *testing.T) {
	ctx := context.Background()

	t.Run("empty token", func(t *testing.T) {
		f := newAuthServiceForTest(t)

		identity, err := f.service.WhoAmI(ctx, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrNotLoggedIn)
		assert.Nil(t, identity)
	})

	t.Run("unknown token", func(t *testing.T) {
		f := newAuthServiceForTest(t)
		token := uuid.New().String()
		f.sessionRepo.EXPECT().FindByToken(ctx, token).Return(nil, repository.ErrSessionNotFound)

		identity, err := f.service.WhoAmI(ctx, token)

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrNotLoggedIn)
		assert.Nil(t, identity)
	})

	t.Run("expired token", func(t *testing.T) {
		f := newAuthServiceForTest(t)
		token := uuid.New().String()
		f.sessionRepo.EXPECT().FindByToken(ctx, token).Return(nil, repository.ErrSessionExpired)

		identity, err := f.service.WhoAmI(ctx, token)

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrNotLoggedIn)
		assert.Nil(t, identity)
	})
}

func TestAuthService_CleanupExpiredSessions(t *testing.T) {
	f := newAuthServiceForTest(t)
	ctx := context.Background()

	f.sessionRepo.EXPECT().DeleteExpired(ctx).Return(nil)

	require.NoError(t, f.service.CleanupExpiredSessions(ctx))
}
