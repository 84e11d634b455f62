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

// CartHandler holds dependencies for cart-related handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles GET /api/cart. Each record carries both cart_id and
// chocolate_id.
func (h *CartHandler) List(c echo.Context) error {
	lines, err := h.uc.ListCart(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, lines)
}

// Add handles POST /api/cart. A first add answers 201 with the new row; a
// repeat add answers 200 with the incremented row.
func (h *CartHandler) Add(c echo.Context) error {
	var input usecase.AddToCartInput
	if err := c.Bind(&input); err != nil {
		return errors.Wrap(domainerrors.ErrMissingChocolateID, "invalid add-to-cart body")
	}
	if err := c.Validate(&input); err != nil {
		return errors.Wrap(domainerrors.ErrMissingChocolateID, "add-to-cart validation failed")
	}

	output, err := h.uc.AddToCart(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	if output.Created {
		return response.Created(c, output.Item)
	}

	return response.OK(c, output.Item)
}

// Remove handles DELETE /api/cart/:id. The id is the cart row's own id, not
// the chocolate id.
func (h *CartHandler) Remove(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid cart id")
	}

	if err := h.uc.RemoveFromCart(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c)
}
