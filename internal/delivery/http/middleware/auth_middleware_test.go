package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"go-jobportal-api/config"
	"go-jobportal-api/internal/delivery/http/middleware"
	"go-jobportal-api/internal/domain"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

const testSecret = "test-secret"

func newAuthRouter() *gin.Engine {
	cfg := &config.Config{JWTSecret: testSecret}
	r := gin.New()
	r.Use(middleware.AuthMiddleware(cfg))
	r.GET("/whoami", func(c *gin.Context) {
		actor, ok := middleware.ActorFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, nil)
			return
		}
		c.JSON(http.StatusOK, actor)
	})
	return r
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return s
}

func TestAuthMiddleware(t *testing.T) {
	router := newAuthRouter()

	t.Run("Resolves a normalized actor from valid claims", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"sub": "1", "email": "a@example.com", "role": domain.RoleJobseeker,
		})
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"1"`)
		assert.Contains(t, rec.Body.String(), `"role":"jobseeker"`)
	})

	t.Run("Accepts the token from the auth cookie", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"sub": "5", "email": "r@example.com", "role": domain.RoleRecruiter,
		})
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"role":"recruiter"`)
	})

	t.Run("Rejects requests without a token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Rejects a token signed with the wrong secret", func(t *testing.T) {
		token := signToken(t, "other-secret", jwt.MapClaims{
			"sub": "1", "role": domain.RoleJobseeker,
		})
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Rejects tokens without a recognized role", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"sub": "1", "role": "superuser",
		})
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Rejects tokens without a subject", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"role": domain.RoleAdmin,
		})
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
