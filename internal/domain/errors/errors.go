package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message, rendered as {"error": message}
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

// WithMessage returns a copy carrying a different user-facing message.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
	}
}

// Messages are kept in Portuguese; the frontend displays them verbatim.
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Todos os campos são obrigatórios!",
	)

	ErrMissingToken = NewBaseError(
		http.StatusForbidden,
		"MISSING_TOKEN",
		"Token não fornecido",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Token inválido ou expirado",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Usuário ou senha incorretos!",
	)

	// ErrCNPJAlreadyExists keeps the legacy 401 status instead of 409.
	ErrCNPJAlreadyExists = NewBaseError(
		http.StatusUnauthorized,
		"CNPJ_ALREADY_EXISTS",
		"CNPJ já cadastrado!",
	)

	ErrUpstream = NewBaseError(
		http.StatusInternalServerError,
		"UPSTREAM_ERROR",
		"Erro ao acessar os usuários!",
	)

	ErrRestaurantNotFound = NewBaseError(
		http.StatusNotFound,
		"RESTAURANT_NOT_FOUND",
		"Restaurante não encontrado",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Produto não encontrado",
	)

	ErrPromotionNotFound = NewBaseError(
		http.StatusNotFound,
		"PROMOTION_NOT_FOUND",
		"Promoção não encontrada",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Pedido não encontrado",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erro interno do servidor",
	)
)

// StoreError is an unexpected record store failure, reported with an operation-specific message.
type StoreError struct {
	err     error
	message string
}

// NewStoreError creates a store-related error. message is what the client sees.
func NewStoreError(err error, message string) AppError {
	return &StoreError{
		err:     err,
		message: message,
	}
}

func (e *StoreError) Error() string {
	return errors.Wrap(e.err, "record store operation failed").Error()
}

// Unwrap exposes the underlying store error.
func (e *StoreError) Unwrap() error {
	return e.err
}

func (e *StoreError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *StoreError) ErrorCode() string {
	return "STORE_EXECUTE_FAILED"
}

func (e *StoreError) Message() string {
	return e.message
}
