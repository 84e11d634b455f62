package usecase

import (
	"context"

	"chocoshop/internal/domain/entity"
)

// LoginInput defines the credentials for an admin login.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput returns the issued session and the admin identity bound to it.
type LoginOutput struct {
	Session *entity.Session
	Admin   *entity.AdminIdentity
}

// AuthUsecase defines the session-based admin authentication operations.
type AuthUsecase interface {
	// Login validates credentials and issues a new session. Unknown
	// usernames and wrong passwords fail identically.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout destroys the session for the token. Logging out with no
	// session succeeds.
	Logout(ctx context.Context, token string) error

	// WhoAmI resolves the admin identity bound to an unexpired session.
	WhoAmI(ctx context.Context, token string) (*entity.AdminIdentity, error)

	// CleanupExpiredSessions bulk-deletes sessions past their expiry.
	CleanupExpiredSessions(ctx context.Context) error
}
