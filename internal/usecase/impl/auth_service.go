package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"chocoshop/config"
	deliverycontext "chocoshop/internal/delivery/context"
	"chocoshop/internal/domain/entity"
	domainerrors "chocoshop/internal/domain/errors"
	"chocoshop/internal/domain/repository"
	"chocoshop/internal/domain/service"
	"chocoshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface with DB-backed sessions.
type authService struct {
	adminRepo   repository.AdminRepository
	sessionRepo repository.SessionRepository
	hasher      service.PasswordHasher
	sessionTTL  time.Duration
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AdminRepo   repository.AdminRepository
	SessionRepo repository.SessionRepository
	Hasher      service.PasswordHasher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		adminRepo:   params.AdminRepo,
		sessionRepo: params.SessionRepo,
		hasher:      params.Hasher,
		sessionTTL:  params.Config.Session.TTL,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login validates the credentials and issues a new session. Unknown usernames
// and wrong passwords both return ErrInvalidCredentials so usernames cannot
// be enumerated.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil ||
		strings.TrimSpace(input.Username) == "" ||
		input.Password == "" {
		return nil, errors.WithStack(domainerrors.ErrMissingCredentials)
	}

	admin, err := srv.adminRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			srv.log(ctx).Warn("Login for unknown username", slog.String("username", input.Username))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown username")
		}

		srv.log(ctx).Error("Failed to look up admin", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to look up admin")
	}

	if !srv.hasher.Check(input.Password, admin.PasswordHash) {
		srv.log(ctx).Warn("Login with wrong password", slog.String("username", input.Username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	session := &entity.Session{
		Token:     uuid.New().String(),
		AdminID:   admin.ID,
		Username:  admin.Username,
		ExpiresAt: time.Now().Add(srv.sessionTTL),
	}

	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		srv.log(ctx).Error("Failed to create session", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create session")
	}

	srv.log(ctx).Info("Admin logged in", slog.String("username", admin.Username), slog.Int64("admin_id", admin.ID))

	return &usecase.LoginOutput{
		Session: session,
		Admin:   admin.Identity(),
	}, nil
}

// Logout destroys the session for the token. Logging out with no session is
// a no-op.
func (srv *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := srv.sessionRepo.DeleteByToken(ctx, token); err != nil {
		srv.log(ctx).Error("Failed to destroy session", slog.Any("error", err))

		return errors.Wrap(err, "failed to destroy session")
	}

	return nil
}

// WhoAmI resolves the admin identity bound to an unexpired session.
func (srv *authService) WhoAmI(ctx context.Context, token string) (*entity.AdminIdentity, error) {
	if token == "" {
		return nil, errors.WithStack(domainerrors.ErrNotLoggedIn)
	}

	session, err := srv.sessionRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) || errors.Is(err, repository.ErrSessionExpired) {
			return nil, errors.Wrap(domainerrors.ErrNotLoggedIn, "no active session")
		}

		srv.log(ctx).Error("Failed to resolve session", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to resolve session")
	}

	return session.Identity(), nil
}

// CleanupExpiredSessions bulk-deletes sessions past their expiry.
func (srv *authService) CleanupExpiredSessions(ctx context.Context) error {
	if err := srv.sessionRepo.DeleteExpired(ctx); err != nil {
		srv.log(ctx).Error("Failed to clean up expired sessions", slog.Any("error", err))

		return errors.Wrap(err, "failed to clean up expired sessions")
	}

	return nil
}
