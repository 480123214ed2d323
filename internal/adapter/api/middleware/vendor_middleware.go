package middleware

import (
	"github.com/labstack/echo/v4"

	"picklrzone/pkg/errors"
)

// VendorOnly rejects callers whose profile role is not vendor. It must run
// after Authenticate.
func VendorOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity := GetIdentity(c)
		if identity == nil {
			return errors.Unauthorized("Authentication required", nil)
		}
		if !identity.IsVendor() {
			return errors.Forbidden("Vendor access required", nil)
		}
		return next(c)
	}
}
