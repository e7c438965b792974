// middlewares/auth_middleware.go
package middlewares

import (
	"net/http"
	"strings"

	"github.com/arinkulshi/diet-recommendation-tool/utils"

	"github.com/gin-gonic/gin"
)

// UserGuard restricts /users/:id routes to the bearer of a token whose
// userId claim equals the path user. An empty secret disables the check.
func UserGuard(secret string, params ...string) gin.HandlerFunc {
	if len(params) == 0 {
		params = []string{"id"}
	}
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		uid, err := utils.ParseUserID(strings.TrimPrefix(authHeader, "Bearer "), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		for _, p := range params {
			raw := c.Param(p)
			if raw == "" {
				continue
			}
			if pathID, ok := utils.ParseID(raw); !ok || pathID != uid {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
				return
			}
		}

		c.Set("userID", uid)
		c.Next()
	}
}
