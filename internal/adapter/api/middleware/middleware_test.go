package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"picklrzone/internal/adapter/repository/memory"
	"picklrzone/internal/domain/entity"
	"picklrzone/internal/infrastructure/firebase"
	"picklrzone/internal/usecase"
	"picklrzone/pkg/response"
)

func newTestServer(t *testing.T) (*echo.Echo, *AuthMiddleware) {
	t.Helper()
	users := memory.NewUserRepository(memory.NewStore())
	require.NoError(t, users.Create(context.Background(), &entity.User{
		UID:         "ben",
		DisplayName: "Ben Johns",
		Role:        entity.RoleVendor,
	}))

	e := echo.New()
	e.HTTPErrorHandler = response.HTTPErrorHandler
	auth := NewAuthMiddleware(usecase.NewAuthUseCase(users, firebase.NewDevAuthClient(nil)))
	return e, auth
}

func serve(e *echo.Echo, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()
	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuthenticate(t *testing.T) {
	e, auth := newTestServer(t)
	e.GET("/me", func(c echo.Context) error {
		identity := GetIdentity(c)
		return c.JSON(http.StatusOK, map[string]string{
			"uid":  c.Get(ContextKeyUID).(string),
			"role": identity.Role,
		})
	}, auth.Authenticate)

	rec := serve(e, http.MethodGet, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized: No token provided", decodeError(t, rec).Message)

	rec = serve(e, http.MethodGet, "/me", "not-a-dev-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", decodeError(t, rec).Error)

	rec = serve(e, http.MethodGet, "/me", firebase.GenerateDevToken("ben"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"uid":"ben","role":"vendor"}`, rec.Body.String())

	rec = serve(e, http.MethodGet, "/me", firebase.GenerateDevToken("newcomer"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"uid":"newcomer","role":"user"}`, rec.Body.String())
}

func TestVendorOnly(t *testing.T) {
	e, auth := newTestServer(t)
	ok := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }
	e.POST("/courses", ok, auth.Authenticate, VendorOnly)
	e.POST("/unguarded", ok, VendorOnly)

	rec := serve(e, http.MethodPost, "/courses", firebase.GenerateDevToken("ben"))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(e, http.MethodPost, "/courses", firebase.GenerateDevToken("mike"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Vendor access required", decodeError(t, rec).Message)

	rec = serve(e, http.MethodPost, "/unguarded", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyToken(t *testing.T) {
	_, auth := newTestServer(t)

	_, err := auth.VerifyToken(context.Background(), "")
	assert.Error(t, err)

	identity, err := auth.VerifyToken(context.Background(), firebase.GenerateDevToken("ben"))
	require.NoError(t, err)
	assert.True(t, identity.IsVendor())
}

type onceLimiter struct {
	keys map[string]bool
}

func (l *onceLimiter) Allow(key, action string) (bool, time.Duration) {
	k := key + ":" + action
	if l.keys[k] {
		return false, 1500 * time.Millisecond
	}
	l.keys[k] = true
	return true, 0
}

func TestRateLimit(t *testing.T) {
	e, auth := newTestServer(t)
	limiter := &onceLimiter{keys: map[string]bool{}}
	ok := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }
	e.GET("/search", ok, auth.Authenticate, RateLimit(limiter, "search_users"))
	e.GET("/public", ok, RateLimit(limiter, "search_users"))

	benToken := firebase.GenerateDevToken("ben")
	assert.Equal(t, http.StatusNoContent, serve(e, http.MethodGet, "/search", benToken).Code)

	rec := serve(e, http.MethodGet, "/search", benToken)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("Retry-After"))
	assert.Equal(t, "TOO_MANY_REQUESTS", decodeError(t, rec).Error)

	// a different caller has its own budget
	assert.Equal(t, http.StatusNoContent, serve(e, http.MethodGet, "/search", firebase.GenerateDevToken("mike")).Code)

	assert.Equal(t, http.StatusNoContent, serve(e, http.MethodGet, "/public", "").Code)
	assert.True(t, limiter.keys["ip:192.0.2.1:search_users"])
}
