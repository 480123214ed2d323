package router

import (
	"github.com/labstack/echo/v4"

	"picklrzone/internal/adapter/api/handler"
	"picklrzone/internal/adapter/api/middleware"
	"picklrzone/internal/usecase"
)

const actionCheckout = "checkout"

func SetupPaymentRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware, limiter usecase.RateLimiter) {
	paymentHandler := handler.GetPaymentHandler()

	payments := api.Group("/payments")
	payments.Use(authMiddleware.Authenticate)

	payments.POST("/create-checkout-session", paymentHandler.CreateCheckoutSession, middleware.RateLimit(limiter, actionCheckout))
	payments.POST("/confirm", paymentHandler.ConfirmPayment)
	payments.GET("/enrollments", paymentHandler.ListEnrollments)
}
