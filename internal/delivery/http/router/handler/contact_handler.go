package handler

import (
	"log/slog"

	domainerrors "chocoshop/internal/domain/errors"
	"chocoshop/internal/delivery/http/response"
	"chocoshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContactHandler holds dependencies for the contact inbox handler.
type ContactHandler struct {
	uc     usecase.ContactUsecase
	logger *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler, injected by Fx.
func NewContactHandler(uc usecase.ContactUsecase, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		uc:     uc,
		logger: logger,
	}
}

// Submit handles POST /api/contact and answers 201 with the created record.
func (h *ContactHandler) Submit(c echo.Context) error {
	var input usecase.SubmitContactInput
	if err := c.Bind(&input); err != nil {
		return errors.Wrap(domainerrors.ErrMissingFields, "invalid contact body")
	}
	if err := c.Validate(&input); err != nil {
		return errors.Wrap(domainerrors.ErrMissingFields, "contact validation failed")
	}

	contact, err := h.uc.SubmitContact(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, contact)
}
