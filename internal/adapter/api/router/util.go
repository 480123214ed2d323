package router

import (
	"github.com/labstack/echo/v4"

	"picklrzone/internal/adapter/api/middleware"
)

// protected prepends authentication to extra, for routes that share a
// prefix with public ones.
func protected(authMiddleware *middleware.AuthMiddleware, extra ...echo.MiddlewareFunc) []echo.MiddlewareFunc {
	return append([]echo.MiddlewareFunc{authMiddleware.Authenticate}, extra...)
}

// vendorOnly is protected plus the vendor role check.
func vendorOnly(authMiddleware *middleware.AuthMiddleware) []echo.MiddlewareFunc {
	return protected(authMiddleware, middleware.VendorOnly)
}
