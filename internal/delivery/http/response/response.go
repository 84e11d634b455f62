// Package response holds the JSON body shapes of the public API. The shapes
// are flat (bare arrays, {"error": ...}, {"success": true}) because the
// browser client consumes them directly.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// OK writes data with a 200 status.
func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

// Created writes data with a 201 status.
func Created(c echo.Context, data any) error {
	return c.JSON(http.StatusCreated, data)
}

// Success writes the {"success": true} acknowledgement.
func Success(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// Message writes a {"message": ...} confirmation.
func Message(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, map[string]string{"message": message})
}

// Error writes the {"error": ...} body shared by every failure response.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, map[string]string{"error": message})
}
