package response

import (
	"github.com/gin-gonic/gin"

	"bookstore-backend/internal/apperr"
)

// Err 统一错误出口：业务错误带真实状态码，其它一律 500 的笼统 message
func Err(c *gin.Context, err error) {
	status, msg := apperr.Resolve(err)
	c.JSON(status, gin.H{"message": msg})
}

// AbortErr 中间件里用，短路后续 handler
func AbortErr(c *gin.Context, err error) {
	status, msg := apperr.Resolve(err)
	c.AbortWithStatusJSON(status, gin.H{"message": msg})
}
