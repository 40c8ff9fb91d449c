package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sportfy/internal/pkg/jwt"
	"sportfy/internal/pkg/response"
)

// Auth validates the Bearer token and stores the caller identity in the
// request context under "user_id" and "role".
func Auth(tokens *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing or malformed Authorization header")
			c.Abort()
			return
		}

		claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}
