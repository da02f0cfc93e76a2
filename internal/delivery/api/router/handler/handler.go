// Package handler contains one echo handler per route of the HTTP API.
package handler

import (
	"strconv"

	domainerrors "develfood/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bindAndValidate decodes the body into req and checks its `validate` tags.
// Undecodable bodies are reported like missing fields.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	return errors.WithStack(c.Validate(req))
}

// pathID parses the :id parameter. An id that is not an integer cannot match a record,
// so the caller's not-found error is returned instead.
func pathID(c echo.Context, notFound error) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, errors.WithStack(notFound)
	}

	return id, nil
}
