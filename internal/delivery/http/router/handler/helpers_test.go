package handler

import (
	"context"
	"io"
	"log/slog"

	"chocoshop/internal/delivery/http/middleware"
	"chocoshop/internal/delivery/http/validator"
	"chocoshop/internal/domain/entity"
	"chocoshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// newTestEcho builds an echo instance with the same validator and error
// mapping the real server uses, so tests observe the exact wire contract.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	return e
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Stub usecases with overridable function fields. Handlers only depend on
// the usecase interfaces, so these keep handler tests free of store wiring.

type stubCatalogUsecase struct {
	listFn   func(ctx context.Context) ([]*entity.Chocolate, error)
	addFn    func(ctx context.Context, input *usecase.AddChocolateInput) (*entity.Chocolate, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubCatalogUsecase) ListChocolates(ctx context.Context) ([]*entity.Chocolate, error) {
	return s.listFn(ctx)
}

func (s *stubCatalogUsecase) AddChocolate(ctx context.Context, input *usecase.AddChocolateInput) (*entity.Chocolate, error) {
	return s.addFn(ctx, input)
}

func (s *stubCatalogUsecase) DeleteChocolate(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubCartUsecase struct {
	listFn   func(ctx context.Context) ([]*entity.CartLine, error)
	addFn    func(ctx context.Context, input *usecase.AddToCartInput) (*usecase.AddToCartOutput, error)
	removeFn func(ctx context.Context, cartID int64) error
}

func (s *stubCartUsecase) ListCart(ctx context.Context) ([]*entity.CartLine, error) {
	return s.listFn(ctx)
}

func (s *stubCartUsecase) AddToCart(ctx context.Context, input *usecase.AddToCartInput) (*usecase.AddToCartOutput, error) {
	return s.addFn(ctx, input)
}

func (s *stubCartUsecase) RemoveFromCart(ctx context.Context, cartID int64) error {
	return s.removeFn(ctx, cartID)
}

type stubContactUsecase struct {
	submitFn func(ctx context.Context, input *usecase.SubmitContactInput) (*entity.Contact, error)
}

func (s *stubContactUsecase) SubmitContact(ctx context.Context, input *usecase.SubmitContactInput) (*entity.Contact, error) {
	return s.submitFn(ctx, input)
}

type stubAuthUsecase struct {
	loginFn   func(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error)
	logoutFn  func(ctx context.Context, token string) error
	whoAmIFn  func(ctx context.Context, token string) (*entity.AdminIdentity, error)
	cleanupFn func(ctx context.Context) error
}

func (s *stubAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return s.loginFn(ctx, input)
}

func (s *stubAuthUsecase) Logout(ctx context.Context, token string) error {
	return s.logoutFn(ctx, token)
}

func (s *stubAuthUsecase) WhoAmI(ctx context.Context, token string) (*entity.AdminIdentity, error) {
	return s.whoAmIFn(ctx, token)
}

func (s *stubAuthUsecase) CleanupExpiredSessions(ctx context.Context) error {
	return s.cleanupFn(ctx)
}
