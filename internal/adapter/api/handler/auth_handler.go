package handler

import (
	"github.com/labstack/echo/v4"

	"picklrzone/internal/adapter/api/middleware"
	"picklrzone/internal/usecase"
	"picklrzone/pkg/errors"
	"picklrzone/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// Me echoes the identity resolved by the auth middleware.
func (h *AuthHandler) Me(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, identity)
}

// caller returns the authenticated identity or a 401.
func caller(c echo.Context) (*usecase.Identity, error) {
	identity := middleware.GetIdentity(c)
	if identity == nil {
		return nil, errors.Unauthorized("Authentication required", nil)
	}
	return identity, nil
}
