// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"

	domainerrors "develfood/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// TagTruthy rejects values a client would treat as missing: absent, null, false, 0 and "".
const TagTruthy = "truthy"

type truthy interface {
	Truthy() bool
}

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates a validator honouring `validate` struct tags.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation(TagTruthy, isTruthy)

	return &CustomValidator{validator: v}
}

// Validate reports any failed rule as ErrValidationFailed; the failing fields stay in the error chain.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	return nil
}

func isTruthy(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() == reflect.Invalid {
		return false
	}
	if t, ok := field.Interface().(truthy); ok {
		return t.Truthy()
	}

	return !field.IsZero()
}
