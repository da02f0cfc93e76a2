package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "develfood/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "app error",
			err:      errors.WithStack(domainerrors.ErrProductNotFound),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"Produto não encontrado"}`,
		},
		{
			name:     "wrapped validation error",
			err:      errors.Wrap(domainerrors.ErrValidationFailed, "Key: 'ProductInput.Name' Error:Field validation for 'Name' failed on the 'truthy' tag"),
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Todos os campos são obrigatórios!"}`,
		},
		{
			name:     "store error keeps its message",
			err:      domainerrors.NewStoreError(errors.New("disk full"), "Erro ao criar produto!"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Erro ao criar produto!"}`,
		},
		{
			name:     "echo http error",
			err:      echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"),
			wantCode: http.StatusRequestEntityTooLarge,
			wantBody: `{"error":"Request Entity Too Large"}`,
		},
		{
			name:     "unknown error",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Erro interno do servidor"}`,
		},
	}

	handler := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			handler.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
