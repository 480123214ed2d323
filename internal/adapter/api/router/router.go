package router

import (
	"github.com/labstack/echo/v4"

	"picklrzone/internal/adapter/api/handler"
	"picklrzone/internal/adapter/api/middleware"
	"picklrzone/internal/usecase"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter usecase.RateLimiter, wsHandler *handler.WebSocketHandler) {
	api := e.Group("/api")

	SetupAuthRouter(api, authMiddleware)
	SetupUserRouter(api, authMiddleware)
	SetupCourseRouter(api, authMiddleware)
	SetupReviewRouter(api, authMiddleware)
	SetupPaymentRouter(api, authMiddleware, limiter)
	SetupBookingRouter(api, authMiddleware)
	SetupSubmissionRouter(api, authMiddleware)
	SetupChatRouter(api, authMiddleware, limiter)
	SetupWebSocketRouter(api, wsHandler)
	SetupHealthRouter(e)
}
