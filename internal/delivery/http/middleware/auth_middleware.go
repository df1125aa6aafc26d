package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"go-jobportal-api/config"
	"go-jobportal-api/internal/delivery/http/response"
	"go-jobportal-api/internal/domain"
)

// AuthMiddleware resolves the bearer token into a single normalized Actor and
// stores it in the context. Downstream code never inspects claims or alternate
// identity shapes; the actor id here is the same id jobs are posted under.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		// 1. Try to get token from Header
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			// 2. Try to get token from Cookie
			cookie, err := c.Cookie("auth_token")
			if err == nil && cookie != "" {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			if cfg.JWTSecret == "" {
				return nil, fmt.Errorf("JWT_SECRET is not configured")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid claims", nil)
			c.Abort()
			return
		}

		sub, _ := claims["sub"].(string)
		email, _ := claims["email"].(string)
		role, _ := claims["role"].(string)

		if sub == "" {
			response.Error(c, http.StatusUnauthorized, "Token has no subject", nil)
			c.Abort()
			return
		}
		if !domain.IsValidRole(role) {
			response.Error(c, http.StatusUnauthorized, "Token has no recognized role", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyActor), domain.Actor{
			ID:    sub,
			Role:  role,
			Email: email,
		})

		c.Next()
	}
}

// ActorFromContext returns the Actor resolved by AuthMiddleware. The boolean is
// false when the middleware did not run, which routes must treat as unauthorized.
func ActorFromContext(c *gin.Context) (domain.Actor, bool) {
	v, exists := c.Get(string(domain.KeyActor))
	if !exists {
		return domain.Actor{}, false
	}
	actor, ok := v.(domain.Actor)
	return actor, ok
}
