package middlewares

import (
	"net/http"
	"strings"

	"github.com/UJJWAL-7777/Diet-Manager/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires a Bearer token and stores the user id on the
// context under "userID".
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		userID, err := utils.ParseJWT(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
