package router

import (
	"github.com/labstack/echo/v4"

	"picklrzone/internal/adapter/api/handler"
	"picklrzone/internal/adapter/api/middleware"
)

func SetupSubmissionRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	submissionHandler := handler.GetSubmissionHandler()

	submissions := api.Group("/submissions")
	submissions.Use(authMiddleware.Authenticate)

	submissions.POST("/upload-url", submissionHandler.RequestUploadURL)
	submissions.GET("/my/:courseId", submissionHandler.ListMySubmissions)
	submissions.GET("/vendor/all", submissionHandler.ListVendorSubmissions, middleware.VendorOnly)
	submissions.POST("/:courseId", submissionHandler.CreateSubmission)
	submissions.PUT("/:id/evaluate", submissionHandler.EvaluateSubmission, middleware.VendorOnly)
}
