package errors

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		code   string
		status int
	}{
		{"not found", NotFound("Course", nil), CodeNotFound, http.StatusNotFound},
		{"bad request", BadRequest("Payment not completed", nil), CodeBadRequest, http.StatusBadRequest},
		{"validation", Validation("Rating must be between 1 and 5", nil), CodeValidation, http.StatusBadRequest},
		{"unauthorized", Unauthorized("Unauthorized: No token provided", nil), CodeUnauthorized, http.StatusUnauthorized},
		{"forbidden", Forbidden("Vendor access required", nil), CodeForbidden, http.StatusForbidden},
		{"conflict", Conflict("You have already reviewed this course"), CodeConflict, http.StatusConflict},
		{"internal", Internal("boom", nil), CodeInternal, http.StatusInternalServerError},
		{"rate limited", TooManyRequests("slow down", time.Second), CodeTooManyRequests, http.StatusTooManyRequests},
		{"unavailable", ServiceUnavailable("Video uploads are not configured", nil), CodeServiceUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.Status)
		})
	}

	assert.Equal(t, "Course not found", NotFound("Course", nil).Message)
}

func TestWrappingAndMatching(t *testing.T) {
	cause := fmt.Errorf("rpc error: deadline exceeded")
	err := Internal("Failed to load course", cause)

	assert.Equal(t, "INTERNAL_ERROR: Failed to load course: rpc error: deadline exceeded", err.Error())
	assert.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("list courses: %w", err)
	assert.True(t, Is(wrapped, CodeInternal))
	assert.False(t, Is(wrapped, CodeNotFound))

	appErr, ok := As(wrapped)
	assert.True(t, ok)
	assert.Same(t, err, appErr)

	_, ok = As(cause)
	assert.False(t, ok)
	assert.False(t, Is(nil, CodeInternal))
}
