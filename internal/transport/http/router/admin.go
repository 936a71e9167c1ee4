package router

import (
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookstore-backend/internal/core/auth"
	"bookstore-backend/internal/transport/http/handler"
	mdw "bookstore-backend/internal/transport/http/middleware"
)

// NewAdminEngine 账号管理面（独立端口起一个进程），角色判定同样落在服务层
func NewAdminEngine(l *zap.Logger, jwter *auth.JWTer, admin *handler.AdminHandler) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(50, 100),
		mdw.ConcurrencyLimit(100),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })

	g := r.Group("/admin/v1")
	g.Use(mdw.AuthJWT(jwter))

	g.GET("/users", admin.ListUsers)
	g.DELETE("/users/:id", admin.DeleteUser)

	return r
}
