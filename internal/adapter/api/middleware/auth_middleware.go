package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"picklrzone/internal/usecase"
	"picklrzone/pkg/errors"
)

const (
	ContextKeyUID      = "uid"
	ContextKeyIdentity = "identity"
)

type AuthMiddleware struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthMiddleware(authUseCase *usecase.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{
		authUseCase: authUseCase,
	}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return errors.Unauthorized("Unauthorized: No token provided", nil)
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token == "" {
			return errors.Unauthorized("Unauthorized: No token provided", nil)
		}

		identity, err := m.authUseCase.Authenticate(c.Request().Context(), token)
		if err != nil {
			return err
		}

		c.Set(ContextKeyUID, identity.UID)
		c.Set(ContextKeyIdentity, identity)
		return next(c)
	}
}

// VerifyToken authenticates a raw token, for transports that cannot send
// an Authorization header.
func (m *AuthMiddleware) VerifyToken(ctx context.Context, token string) (*usecase.Identity, error) {
	if token == "" {
		return nil, errors.Unauthorized("Unauthorized: No token provided", nil)
	}
	return m.authUseCase.Authenticate(ctx, token)
}

// GetIdentity returns the caller set by Authenticate, or nil.
func GetIdentity(c echo.Context) *usecase.Identity {
	identity, _ := c.Get(ContextKeyIdentity).(*usecase.Identity)
	return identity
}
