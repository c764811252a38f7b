package http

import (
	"net/http"
	"strings"

	"github.com/dkarklins/fitauth/internal/server/auth"
	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// authMiddleware extracts the Bearer access token from the Authorization
// header, validates it, and injects the authenticated user id into the
// request context. Handlers behind it can assume an identity is present.
func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, Response{
				Error: true, Status: "failure", Message: "Authorization header is required.",
			})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, Response{
				Error: true, Status: "failure", Message: "Invalid authorization format, expected 'Bearer {token}'.",
			})
			return
		}

		claims, err := auth.ParseToken(parts[1], s.jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, Response{
				Error: true, Status: "failure", Message: "Invalid or expired access token.",
			})
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

// authenticatedUserID returns the user id injected by authMiddleware.
func authenticatedUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
