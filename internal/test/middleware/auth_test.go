package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"printperfect-backend/internal/config"
	"printperfect-backend/internal/middleware"
)

const testSecret = "test-secret-key-for-jwt-signing-must-be-long-enough"

func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWTSecret: testSecret}

	router := gin.New()
	router.GET("/protected", middleware.AuthMiddleware(cfg), func(c *gin.Context) {
		userID := c.GetInt(middleware.UserIDKey)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return router
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func doProtected(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	router := newProtectedRouter()

	w := doProtected(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing authorization header")
}

func TestAuthMiddleware_BadFormat(t *testing.T) {
	router := newProtectedRouter()

	for _, header := range []string{"Token abc", "Bearer", "Bearer a b"} {
		w := doProtected(router, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	router := newProtectedRouter()

	w := doProtected(router, "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid token")
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	router := newProtectedRouter()

	token := signToken(t, "some-other-secret", jwt.MapClaims{
		"sub": "1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	w := doProtected(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	router := newProtectedRouter()

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	w := doProtected(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_NonNumericSubject(t *testing.T) {
	router := newProtectedRouter()

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	w := doProtected(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	router := newProtectedRouter()

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": strconv.Itoa(42),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	w := doProtected(router, "Bearer "+token)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "42")
}
