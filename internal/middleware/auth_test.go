package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newProtectedRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append([]gin.HandlerFunc{JWTProtected(testSecret)}, handlers...)
	chain = append(chain, func(c *gin.Context) {
		id, _ := UserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	r.GET("/protected", chain...)
	return r
}

func doRequest(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTProtectedMissingHeader(t *testing.T) {
	w := doRequest(newProtectedRouter(), "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTProtectedMalformedHeader(t *testing.T) {
	w := doRequest(newProtectedRouter(), "Token abc")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTProtectedBadSignature(t *testing.T) {
	token := signTestToken(t, "other-secret", jwt.MapClaims{
		"sub": 1, "role": "user", "exp": time.Now().Add(time.Hour).Unix(),
	})
	w := doRequest(newProtectedRouter(), "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTProtectedExpiredToken(t *testing.T) {
	token := signTestToken(t, testSecret, jwt.MapClaims{
		"sub": 1, "role": "user", "exp": time.Now().Add(-time.Hour).Unix(),
	})
	w := doRequest(newProtectedRouter(), "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTProtectedValidToken(t *testing.T) {
	token := signTestToken(t, testSecret, jwt.MapClaims{
		"sub": 42, "role": "user", "exp": time.Now().Add(time.Hour).Unix(),
	})
	w := doRequest(newProtectedRouter(), "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "42")
}

func TestRequireRoleForbidsNonAdmin(t *testing.T) {
	token := signTestToken(t, testSecret, jwt.MapClaims{
		"sub": 1, "role": "user", "exp": time.Now().Add(time.Hour).Unix(),
	})
	w := doRequest(newProtectedRouter(RequireRole("admin")), "Bearer "+token)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleAllowsAdmin(t *testing.T) {
	token := signTestToken(t, testSecret, jwt.MapClaims{
		"sub": 1, "role": "admin", "exp": time.Now().Add(time.Hour).Unix(),
	})
	w := doRequest(newProtectedRouter(RequireRole("admin")), "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
}
