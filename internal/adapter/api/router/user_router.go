package router

import (
	"github.com/labstack/echo/v4"

	"picklrzone/internal/adapter/api/handler"
	"picklrzone/internal/adapter/api/middleware"
)

func SetupUserRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	users := api.Group("/users")

	users.GET("/profile", userHandler.GetProfile, protected(authMiddleware)...)
	users.PUT("/profile", userHandler.UpdateProfile, protected(authMiddleware)...)
	users.GET("/:uid", userHandler.GetPublicProfile)
}
