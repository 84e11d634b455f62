package middleware

import (
	"chocoshop/config"
	domainerrors "chocoshop/internal/domain/errors"
	"chocoshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContextKeyAdmin is the echo.Context key holding the authenticated admin
// identity set by EnsureAdmin.
const ContextKeyAdmin = "admin"

// AuthMiddleware gates privileged routes on an active admin session.
type AuthMiddleware struct {
	auth       usecase.AuthUsecase
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(auth usecase.AuthUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		auth:       auth,
		cookieName: cfg.Session.CookieName,
	}
}

// SessionToken extracts the opaque session token from the request cookie, or
// "" when the cookie is absent.
func (m *AuthMiddleware) SessionToken(c echo.Context) string {
	cookie, err := c.Cookie(m.cookieName)
	if err != nil || cookie == nil {
		return ""
	}

	return cookie.Value
}

// EnsureAdmin rejects the request with 401 "Admin only" unless the session
// cookie resolves to an active admin session. It is applied uniformly to
// every catalog-mutation route, creation and deletion alike.
func (m *AuthMiddleware) EnsureAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.SessionToken(c)
		if token == "" {
			return errors.WithStack(domainerrors.ErrAdminOnly)
		}

		identity, err := m.auth.WhoAmI(c.Request().Context(), token)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotLoggedIn) {
				return errors.Wrap(domainerrors.ErrAdminOnly, "session rejected")
			}

			// A store failure during session lookup is not an auth
			// rejection; let the central error handler map it.
			return errors.WithStack(err)
		}

		c.Set(ContextKeyAdmin, identity)

		return next(c)
	}
}
