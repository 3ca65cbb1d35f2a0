package middlewares

import (
	"net/http"
	"strings"

	"foodfront/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and stores the user id on the
// context.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing or invalid token"})
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(strings.TrimPrefix(h, "Bearer "), jwtSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Next()
	}
}
