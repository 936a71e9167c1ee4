package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bookstore-backend/internal/core/auth"
)

const KeyUserID = "userId"

// AuthJWT 只校验签名和有效期，不查库；缺 token 401，token 坏掉或过期统一 403
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access denied. Token missing."})
			return
		}
		tokenStr := strings.TrimPrefix(ah, "Bearer ")
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access denied. Token missing."})
			return
		}
		claims, err := j.Parse(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Invalid or expired token."})
			return
		}
		c.Set(KeyUserID, claims.UID)
		c.Next()
	}
}
