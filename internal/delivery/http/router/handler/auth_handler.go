package handler

import (
	"log/slog"
	"net/http"
	"time"

	"chocoshop/config"
	domainerrors "chocoshop/internal/domain/errors"
	"chocoshop/internal/delivery/http/response"
	"chocoshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the admin auth handlers.
type AuthHandler struct {
	uc         usecase.AuthUsecase
	cookieName string
	sessionTTL time.Duration
	logger     *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:         uc,
		cookieName: cfg.Session.CookieName,
		sessionTTL: cfg.Session.TTL,
		logger:     logger,
	}
}

// Login handles POST /api/login. On success the opaque session token is set
// as an HttpOnly cookie and the body confirms the bound identity.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return errors.Wrap(domainerrors.ErrMissingCredentials, "invalid login body")
	}
	if err := c.Validate(&input); err != nil {
		return errors.Wrap(domainerrors.ErrMissingCredentials, "login validation failed")
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.sessionCookie(output.Session.Token, int(h.sessionTTL.Seconds())))

	return response.OK(c, map[string]any{
		"success": true,
		"admin":   output.Admin,
	})
}

// Logout handles POST /api/logout. Destroying an absent session still
// succeeds; the cookie is cleared either way.
func (h *AuthHandler) Logout(c echo.Context) error {
	if token := h.sessionToken(c); token != "" {
		if err := h.uc.Logout(c.Request().Context(), token); err != nil {
			return errors.WithStack(err)
		}
	}

	// MaxAge -1 deletes the cookie on the client.
	c.SetCookie(h.sessionCookie("", -1))

	return response.Success(c)
}

// Me handles GET /api/me and reports the identity bound to the session.
func (h *AuthHandler) Me(c echo.Context) error {
	identity, err := h.uc.WhoAmI(c.Request().Context(), h.sessionToken(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]any{"admin": identity})
}

func (h *AuthHandler) sessionToken(c echo.Context) string {
	cookie, err := c.Cookie(h.cookieName)
	if err != nil || cookie == nil {
		return ""
	}

	return cookie.Value
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
