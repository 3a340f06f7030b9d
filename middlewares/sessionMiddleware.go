package middlewares

import (
	"net/http"

	"github.com/CoderDeepakJoura/BankingSolution-sub003/config"
	"github.com/CoderDeepakJoura/BankingSolution-sub003/utils"
	"github.com/gin-gonic/gin"
)

// SessionMiddleware checks that a presented token still has a live redis
// session, so logout revokes access before the JWT itself expires.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := utils.GetTokenFromContext(c.Request.Context())
		if !ok || token == "" {
			c.Next()
			return
		}
		username, exists, err := config.GetRedisValue("Token:" + token)
		if err != nil || !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			c.Abort()
			return
		}

		ctx := utils.SetUsernameInContext(c.Request.Context(), username)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
