package router

import (
	"github.com/labstack/echo/v4"

	"picklrzone/internal/adapter/api/handler"
	"picklrzone/internal/adapter/api/middleware"
)

func SetupCourseRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	courseHandler := handler.GetCourseHandler()

	courses := api.Group("/courses")

	// Public
	courses.GET("", courseHandler.ListCourses)
	courses.GET("/:id", courseHandler.GetCourse)

	// Vendor
	courses.POST("", courseHandler.CreateCourse, vendorOnly(authMiddleware)...)
	courses.PUT("/:id", courseHandler.UpdateCourse, vendorOnly(authMiddleware)...)
	courses.DELETE("/:id", courseHandler.DeleteCourse, vendorOnly(authMiddleware)...)
}
