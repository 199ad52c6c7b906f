package auth

import (
	"gameatlas/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// OptionalAuthMiddleware inspects for a token and sets the userID if present and valid,
// but does not fail if the token is missing or invalid.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c); ok {
			if userID, err := jwt.ParseToken(tokenString); err == nil {
				c.Set(userIDKey, userID)
			}
		}
		c.Next()
	}
}
