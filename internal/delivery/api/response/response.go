// Package response writes the JSON bodies of the HTTP API.
package response

import (
	"net/http"

	domainerrors "develfood/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// List writes a collection as a bare JSON array, never null.
func List[T any](c echo.Context, items []T) error {
	if items == nil {
		items = []T{}
	}

	return c.JSON(http.StatusOK, items)
}

// Record writes a single record as is.
func Record(c echo.Context, record any) error {
	return c.JSON(http.StatusOK, record)
}

// Message writes {"message": message}.
func Message(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, domainerrors.MessageResponse{Message: message})
}

// MessageWith writes {"message": message, key: record}.
func MessageWith(c echo.Context, message, key string, record any) error {
	return c.JSON(http.StatusOK, map[string]any{
		"message": message,
		key:       record,
	})
}

// Error writes {"error": message}.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, domainerrors.ErrorResponse{Error: message})
}

// HandleAppError renders application errors and hands anything else to the central error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return Error(c, appErr.HTTPCode(), appErr.Message())
	}

	return errors.WithStack(err)
}
