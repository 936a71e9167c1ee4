package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"bookstore-backend/internal/core/auth"
	"bookstore-backend/internal/transport/http/handler"
	mdw "bookstore-backend/internal/transport/http/middleware"
)

func NewAPIEngine(
	l *zap.Logger,
	jwter *auth.JWTer,
	users *handler.UserHandler,
	books *handler.BookHandler,
	lists *handler.MembershipHandler,
) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "Backend is Running") })
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	// 公开路由：注册/登录/书目列表
	api.POST("/signup", users.Signup)
	api.POST("/signin", users.Signin)
	api.GET("/allbooks", books.AllBooks)

	// 其余全部过 JWT 中间件；管理员判定在服务层查库完成
	authed := api.Group("")
	authed.Use(mdw.AuthJWT(jwter))

	authed.GET("/userInfo", users.UserInfo)
	authed.PUT("/update_address", users.UpdateAddress)

	authed.POST("/addbook", books.AddBook)
	authed.PUT("/updatebook/:bookId", books.UpdateBook)
	authed.DELETE("/deletebook/:bookId", books.DeleteBook)

	authed.PUT("/addtocart/:bookId", lists.AddToCart)
	authed.PUT("/removefromcart/:bookId", lists.RemoveFromCart)
	authed.GET("/cart", lists.GetCart)

	authed.PUT("/addtofavourites/:bookId", lists.AddToFavourites)
	authed.PUT("/removefromfavourites/:bookId", lists.RemoveFromFavourites)
	authed.GET("/favourites", lists.GetFavourites)

	return r
}
