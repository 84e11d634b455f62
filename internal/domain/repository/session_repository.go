package repository

import (
	"context"
	"errors"

	"chocoshop/internal/domain/entity"
)

// ErrSessionNotFound is returned when no session exists for a token.
var ErrSessionNotFound = errors.New("session not found")

// ErrSessionExpired is returned when a session exists but is past its expiry.
var ErrSessionExpired = errors.New("session expired")

// SessionRepository persists server-side admin sessions keyed by an opaque
// cookie token.
type SessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *entity.Session) error

	// FindByToken retrieves a session by its token. Expired sessions are
	// deleted on sight and reported as ErrSessionExpired.
	FindByToken(ctx context.Context, token string) (*entity.Session, error)

	// DeleteByToken destroys a session. Destroying an absent token is a no-op.
	DeleteByToken(ctx context.Context, token string) error

	// DeleteExpired removes every session past its expiry.
	DeleteExpired(ctx context.Context) error
}
