package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "develfood/internal/delivery/context"
	domainerrors "develfood/internal/domain/errors"
	"develfood/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Decision is the outcome of the gate policy for a request.
type Decision int

const (
	// Allow lets the request through without looking at its headers.
	Allow Decision = iota
	// RequireToken demands a valid bearer token.
	RequireToken
)

// Decide applies the gate policy. Rules are checked in order and the first match wins.
// The PATCH, PUT and DELETE rules match by prefix, as the legacy gate did, so any
// deeper path under those collections is also open.
func Decide(method, path string) Decision {
	switch {
	case method == http.MethodGet:
		return Allow
	case method == http.MethodPatch && strings.HasPrefix(path, "/orders/"):
		return Allow
	case method == http.MethodPost && (path == "/restaurants" || path == "/products" || path == "/promotions"):
		return Allow
	case (method == http.MethodPut || method == http.MethodDelete) &&
		(strings.HasPrefix(path, "/products/") || strings.HasPrefix(path, "/promotions/")):
		return Allow
	default:
		return RequireToken
	}
}

// AuthMiddleware enforces the gate policy on the resource routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Gate lets exempt requests through and verifies the bearer token of every other one.
func (m *AuthMiddleware) Gate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		if Decide(req.Method, req.URL.Path) == Allow {
			return next(c)
		}

		authHeader := req.Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return errors.WithStack(domainerrors.ErrMissingToken)
		}

		claims, err := m.tokenSvc.Verify(bearerValue(authHeader))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).
				Debug("Rejected bearer token", slog.Any("error", err))

			return errors.WithStack(domainerrors.ErrInvalidToken)
		}

		deliverycontext.SetClaims(c, claims)

		return next(c)
	}
}

// bearerValue returns the second space-separated segment of the header, or "" if there is none.
func bearerValue(header string) string {
	parts := strings.Split(header, " ")
	if len(parts) < 2 {
		return ""
	}

	return parts[1]
}
