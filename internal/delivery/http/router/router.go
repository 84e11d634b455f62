// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"chocoshop/internal/delivery/http/middleware"
	"chocoshop/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler *handler.CatalogHandler
	CartHandler    *handler.CartHandler
	ContactHandler *handler.ContactHandler
	AuthHandler    *handler.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler *handler.CatalogHandler
	cartHandler    *handler.CartHandler
	contactHandler *handler.ContactHandler
	authHandler    *handler.AuthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler: params.CatalogHandler,
		cartHandler:    params.CartHandler,
		contactHandler: params.ContactHandler,
		authHandler:    params.AuthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// The paths and method choices are part of the public contract the
// browser client depends on, so they are registered verbatim.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	{
		// Catalog routes; writes require an admin session
		api.GET("/chocolates", r.catalogHandler.List)
		api.POST("/add-chocolate", r.catalogHandler.Add, r.authMiddleware.EnsureAdmin)
		api.DELETE("/chocolates/:id", r.catalogHandler.Delete, r.authMiddleware.EnsureAdmin)

		// Cart routes
		api.GET("/cart", r.cartHandler.List)
		api.POST("/cart", r.cartHandler.Add)
		api.DELETE("/cart/:id", r.cartHandler.Remove)

		// Contact form
		api.POST("/contact", r.contactHandler.Submit)

		// Admin session routes
		api.POST("/login", r.authHandler.Login)
		api.POST("/logout", r.authHandler.Logout)
		api.GET("/me", r.authHandler.Me)
	}
}
