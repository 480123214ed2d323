package router

import (
	"github.com/labstack/echo/v4"

	"picklrzone/internal/adapter/api/handler"
	"picklrzone/internal/adapter/api/middleware"
)

func SetupAuthRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	auth := api.Group("/auth")
	auth.Use(authMiddleware.Authenticate)

	auth.GET("/me", authHandler.Me)
}
