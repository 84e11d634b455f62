// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	domainerrors "chocoshop/internal/domain/errors"
	"chocoshop/internal/delivery/http/response"
	"chocoshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// chocolateAddedMessage is the confirmation body of POST /api/add-chocolate.
const chocolateAddedMessage = "Chocolate added"

// CatalogHandler holds dependencies for catalog-related handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles GET /api/chocolates. The body is a bare array, newest first.
func (h *CatalogHandler) List(c echo.Context) error {
	chocolates, err := h.uc.ListChocolates(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, chocolates)
}

// Add handles POST /api/add-chocolate. The route is admin-gated by the
// router.
func (h *CatalogHandler) Add(c echo.Context) error {
	var input usecase.AddChocolateInput
	if err := c.Bind(&input); err != nil {
		return errors.Wrap(domainerrors.ErrMissingFields, "invalid add-chocolate body")
	}
	if err := c.Validate(&input); err != nil {
		return errors.Wrap(domainerrors.ErrMissingFields, "add-chocolate validation failed")
	}

	if _, err := h.uc.AddChocolate(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, chocolateAddedMessage)
}

// Delete handles DELETE /api/chocolates/:id. Deleting an absent id still
// reports success.
func (h *CatalogHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid chocolate id")
	}

	if err := h.uc.DeleteChocolate(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}
