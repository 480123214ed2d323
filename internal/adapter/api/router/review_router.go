package router

import (
	"github.com/labstack/echo/v4"

	"picklrzone/internal/adapter/api/handler"
	"picklrzone/internal/adapter/api/middleware"
)

func SetupReviewRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	reviews := api.Group("/reviews")
	reviews.GET("/:courseId", reviewHandler.ListReviews)
	reviews.POST("/:courseId", reviewHandler.CreateReview, protected(authMiddleware)...)
}
