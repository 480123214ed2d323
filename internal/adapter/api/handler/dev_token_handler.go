package handler

import (
	"github.com/labstack/echo/v4"

	"picklrzone/internal/domain/entity"
	"picklrzone/internal/infrastructure/firebase"
	"picklrzone/internal/usecase"
	"picklrzone/pkg/response"
)

// DevTokenHandler issues development tokens. Only mounted when
// ENVIRONMENT=development.
type DevTokenHandler struct {
	authUseCase *usecase.AuthUseCase
	userUseCase *usecase.UserUseCase
}

var devTokenHandler *DevTokenHandler

func NewDevTokenHandler(authUseCase *usecase.AuthUseCase, userUseCase *usecase.UserUseCase) *DevTokenHandler {
	return &DevTokenHandler{
		authUseCase: authUseCase,
		userUseCase: userUseCase,
	}
}

func SetupDevTokenHandler(authUseCase *usecase.AuthUseCase, userUseCase *usecase.UserUseCase) {
	devTokenHandler = NewDevTokenHandler(authUseCase, userUseCase)
}

func GetDevTokenHandler() *DevTokenHandler {
	return devTokenHandler
}

type devTokenRequest struct {
	UID         string `json:"uid" validate:"required,max=128"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role" validate:"omitempty,oneof=user vendor"`
}

type devTokenResponse struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// GenerateToken returns a token for uid and stores the requested profile
// fields, so a vendor account can be created in one call.
func (h *DevTokenHandler) GenerateToken(c echo.Context) error {
	var req devTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	token := firebase.GenerateDevToken(req.UID)
	identity, err := h.authUseCase.Authenticate(c.Request().Context(), token)
	if err != nil {
		return response.Error(c, err)
	}

	input := usecase.UpdateProfileInput{}
	if req.DisplayName != "" {
		input.DisplayName = &req.DisplayName
	}
	if req.Role != "" {
		input.Role = &req.Role
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), identity, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, devTokenResponse{Token: token, User: user})
}
