package response

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "picklrzone/pkg/errors"
	"picklrzone/pkg/logger"
)

// ErrorBody is the shape of every non-2xx response.
type ErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type MessageBody struct {
	Message string `json:"message"`
}

func Success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

func Message(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, MessageBody{Message: message})
}

func Error(c echo.Context, err error) error {
	status, body := render(c, err)
	return c.JSON(status, body)
}

// HTTPErrorHandler renders errors that escape handlers and middleware.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := render(c, err)
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		logger.Error("Failed to write error response: %v", err)
	}
}

func render(c echo.Context, err error) (int, ErrorBody) {
	if appErr, ok := apperrors.As(err); ok {
		if appErr.Status >= http.StatusInternalServerError {
			logger.Logger().Error().Err(appErr.Err).
				Str("code", appErr.Code).
				Str("path", c.Path()).
				Msg(appErr.Message)
		}
		if appErr.RetryAfter > 0 {
			seconds := int(math.Ceil(appErr.RetryAfter.Seconds()))
			c.Response().Header().Set("Retry-After", strconv.Itoa(seconds))
		}
		return appErr.Status, ErrorBody{Message: appErr.Message, Error: appErr.Code}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, ErrorBody{
			Message: fmt.Sprint(httpErr.Message),
			Error:   statusCode(httpErr.Code),
		}
	}

	logger.Logger().Error().Err(err).Str("path", c.Path()).Msg("Unhandled error")
	return http.StatusInternalServerError, ErrorBody{
		Message: "An unexpected error occurred",
		Error:   apperrors.CodeInternal,
	}
}

func statusCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "HTTP_ERROR"
	}
	return strings.ToUpper(strings.NewReplacer(" ", "_", "-", "_", "'", "").Replace(text))
}
