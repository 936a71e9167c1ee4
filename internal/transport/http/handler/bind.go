package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// bindJSON 解析请求体，失败时写好响应并返回 false。
// 超过 MaxBytesReader 上限时 bind 报的是 *http.MaxBytesError，要单独映射成 413。
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"message": "Request body too large"})
			return false
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return false
	}
	return true
}
