package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"cv-intake-backend/config"
	"cv-intake-backend/internal/delivery/http/response"
	"cv-intake-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware verifies the bearer token the external identity provider
// issued and exposes the authenticated principal on the context. The token
// carries subject, email and an admin flag; this service never manages
// credentials itself.
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
			if cfg.AuthJWTSecret == "" {
				return nil, fmt.Errorf("AUTH_JWT_SECRET is not configured")
			}
			return []byte(cfg.AuthJWTSecret), nil
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

		// The provider marks administrators either with a boolean claim or a
		// role string; accept both shapes.
		isAdmin, _ := claims["admin"].(bool)
		if role, ok := claims["role"].(string); ok && role == "admin" {
			isAdmin = true
		}

		c.Set(string(domain.KeyUserID), sub)
		c.Set(string(domain.KeyUserEmail), email)
		c.Set(string(domain.KeyIsAdmin), isAdmin)

		c.Next()
	}
}

// AdminOnly gates routes to principals the identity provider flagged as
// administrators. It assumes AuthMiddleware already ran.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(string(domain.KeyIsAdmin)) {
			response.Error(c, http.StatusForbidden, "Administrator access required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
