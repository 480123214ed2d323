package router

import (
	"github.com/labstack/echo/v4"

	"picklrzone/internal/adapter/api/handler"
	"picklrzone/internal/adapter/api/middleware"
)

func SetupBookingRouter(api *echo.Group, authMiddleware *middleware.AuthMiddleware) {
	bookingHandler := handler.GetBookingHandler()

	bookings := api.Group("/bookings")
	bookings.Use(authMiddleware.Authenticate)

	bookings.GET("/my/all", bookingHandler.ListMyBookings)
	bookings.GET("/upcoming", bookingHandler.UpcomingBookings)
	bookings.GET("/vendor/all", bookingHandler.ListVendorBookings, middleware.VendorOnly)
	bookings.POST("/:courseId", bookingHandler.CreateBooking)
	bookings.PUT("/:id/respond", bookingHandler.RespondToBooking, middleware.VendorOnly)
}
