package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"chocoshop/config"
	"chocoshop/internal/domain/entity"
	domainerrors "chocoshop/internal/domain/errors"
	"chocoshop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestConfig() *config.Config {
	return &config.Config{
		Session: config.SessionConfig{
			CookieName: "choco_session",
			TTL:        24 * time.Hour,
		},
	}
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	uc := &stubAuthUsecase{
		loginFn: func(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
			return &usecase.LoginOutput{
				Session: &entity.Session{Token: "tok-123", AdminID: 1, Username: input.Username},
				Admin:   &entity.AdminIdentity{ID: 1, Username: input.Username},
			}, nil
		},
	}
	e.POST("/api/login", NewAuthHandler(uc, authTestConfig(), testLogger()).Login)

	req := httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"username":"admin","password":"admin123"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"admin":{"id":1,"username":"admin"}}`, rec.Body.String())

	cookie := findCookie(t, rec, "choco_session")
	require.NotNil(t, cookie, "login must set the session cookie")
	assert.Equal(t, "tok-123", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, int(24*time.Hour/time.Second), cookie.MaxAge)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	uc := &stubAuthUsecase{
		loginFn: func(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
			return nil, domainerrors.ErrInvalidCredentials
		},
	}
	e.POST("/api/login", NewAuthHandler(uc, authTestConfig(), testLogger()).Login)

	req := httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"username":"admin","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, rec.Body.String())
	assert.Nil(t, findCookie(t, rec, "choco_session"), "failed login must not set a cookie")
}

func TestAuthHandler_Login_MissingCredentials(t *testing.T) {
	e := newTestEcho()
	uc := &stubAuthUsecase{
		loginFn: func(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
			t.Fatal("usecase must not be reached without credentials")

			return nil, nil
		},
	}
	e.POST("/api/login", NewAuthHandler(uc, authTestConfig(), testLogger()).Login)

	req := httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"username":"admin"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Missing username or password"}`, rec.Body.String())
}

func TestAuthHandler_Logout_DestroysSessionAndClearsCookie(t *testing.T) {
	e := newTestEcho()
	var destroyed string
	uc := &stubAuthUsecase{
		logoutFn: func(ctx context.Context, token string) error {
			destroyed = token

			return nil
		},
	}
	e.POST("/api/logout", NewAuthHandler(uc, authTestConfig(), testLogger()).Logout)

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.AddCookie(&http.Cookie{Name: "choco_session", Value: "tok-123"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	assert.Equal(t, "tok-123", destroyed)

	cookie := findCookie(t, rec, "choco_session")
	require.NotNil(t, cookie)
	assert.Negative(t, cookie.MaxAge, "logout must expire the cookie")
}

func TestAuthHandler_Logout_WithoutSessionSucceeds(t *testing.T) {
	e := newTestEcho()
	uc := &stubAuthUsecase{
		logoutFn: func(ctx context.Context, token string) error {
			t.Fatal("usecase must not be reached without a cookie")

			return nil
		},
	}
	e.POST("/api/logout", NewAuthHandler(uc, authTestConfig(), testLogger()).Logout)

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestAuthHandler_Me_Success(t *testing.T) {
	e := newTestEcho()
	uc := &stubAuthUsecase{
		whoAmIFn: func(ctx context.Context, token string) (*entity.AdminIdentity, error) {
			require.Equal(t, "tok-123", token)

			return &entity.AdminIdentity{ID: 1, Username: "admin"}, nil
		},
	}
	e.GET("/api/me", NewAuthHandler(uc, authTestConfig(), testLogger()).Me)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(&http.Cookie{Name: "choco_session", Value: "tok-123"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"admin":{"id":1,"username":"admin"}}`, rec.Body.String())
}

func TestAuthHandler_Me_NotLoggedIn(t *testing.T) {
	e := newTestEcho()
	uc := &stubAuthUsecase{
		whoAmIFn: func(ctx context.Context, token string) (*entity.AdminIdentity, error) {
			require.Empty(t, token)

			return nil, domainerrors.ErrNotLoggedIn
		},
	}
	e.GET("/api/me", NewAuthHandler(uc, authTestConfig(), testLogger()).Me)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Not logged in"}`, rec.Body.String())
}
