package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chocoshop/internal/domain/entity"
	"chocoshop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactHandler_Submit_Success(t *testing.T) {
	e := newTestEcho()
	uc := &stubContactUsecase{
		submitFn: func(ctx context.Context, input *usecase.SubmitContactInput) (*entity.Contact, error) {
			return &entity.Contact{ID: 5, Name: input.Name, Email: input.Email, Message: input.Message}, nil
		},
	}
	e.POST("/api/contact", NewContactHandler(uc, testLogger()).Submit)

	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":"Asha","email":"asha@example.com","message":"Do you ship internationally?"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"id":5`)
	assert.Contains(t, body, `"email":"asha@example.com"`)
}

func TestContactHandler_Submit_MissingFields(t *testing.T) {
	e := newTestEcho()
	uc := &stubContactUsecase{
		submitFn: func(ctx context.Context, input *usecase.SubmitContactInput) (*entity.Contact, error) {
			t.Fatal("usecase must not be reached on a missing-field body")

			return nil, nil
		},
	}
	e.POST("/api/contact", NewContactHandler(uc, testLogger()).Submit)

	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":"Asha"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Missing fields"}`, rec.Body.String())
}
