package router

import (
	"github.com/labstack/echo/v4"

	"picklrzone/internal/adapter/api/handler"
	"picklrzone/internal/adapter/api/middleware"
	"picklrzone/internal/usecase"
)

const actionSearchUsers = "search_users"

// SetupChatRouter mounts the REST side of messaging. Per-action limits for
// sending and creating live in the usecase.
func SetupChatRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware, limiter usecase.RateLimiter) {
	chatHandler := handler.GetChatHandler()

	messages := api.Group("/messages")
	messages.Use(authMiddleware.Authenticate)

	messages.GET("/users/search", chatHandler.SearchUsers, middleware.RateLimit(limiter, actionSearchUsers))

	messages.GET("/conversations", chatHandler.ListConversations)
	messages.POST("/conversations", chatHandler.CreateConversation)
	messages.GET("/conversations/:id/messages", chatHandler.GetMessages)
	messages.POST("/conversations/:id/messages", chatHandler.SendMessage)
	messages.PUT("/conversations/:id/read", chatHandler.MarkAsRead)
}
