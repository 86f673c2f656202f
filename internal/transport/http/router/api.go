package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-magmart-api/internal/core/auth"
	"go-magmart-api/internal/core/cache"
	"go-magmart-api/internal/service"
	"go-magmart-api/internal/transport/http/handler"
	mdw "go-magmart-api/internal/transport/http/middleware"
)

type Deps struct {
	Log        *zap.Logger
	DB         *gorm.DB
	JWTer      *auth.JWTer
	Cache      *cache.Cache // 可为 nil
	ItemStore  *service.ItemStore
	RefreshTTL time.Duration
}

func NewAPIEngine(d Deps) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(
		mdw.RequestID(),
		cors.Default(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(d.Log, true),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
	)

	// 健康检查 + 指标
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 服务
	userSvc := service.NewUserService(d.DB)
	accountSvc := service.NewAccountService(d.DB)
	productSvc := service.NewProductService(d.DB, d.Cache)
	categorySvc := service.NewCategoryService(d.DB)
	orderSvc := service.NewOrderService(d.DB)
	authSvc := service.NewAuthService(d.DB, d.JWTer, d.RefreshTTL)

	userH := handler.NewUserHandler(userSvc, d.Log)
	accountH := handler.NewAccountHandler(accountSvc, userSvc, d.Log)
	itemH := handler.NewItemHandler(d.ItemStore)
	productH := handler.NewProductHandler(productSvc, d.Log)
	categoryH := handler.NewCategoryHandler(categorySvc, d.Log)
	orderH := handler.NewOrderHandler(orderSvc, d.Log)
	authH := handler.NewAuthHandler(authSvc, userSvc, d.Log)

	api := r.Group("/api")
	authed := mdw.AuthJWT(d.JWTer, "")
	adminOnly := mdw.AuthJWT(d.JWTer, "admin")

	users := api.Group("/users")
	{
		users.POST("/", userH.Create)
		users.GET("/", userH.List)
		users.GET("/user", accountH.List)
		users.POST("/user", accountH.Create)
		users.GET("/user/email/:email", userH.GetByEmail)
		users.GET("/user/:id", userH.GetByID)
		users.PUT("/user/:id", userH.Update)
		users.DELETE("/user/:id", userH.Delete)
		users.GET("/user/:id/address", accountH.Get)
		users.PUT("/user/:id/address", accountH.Update)
		users.DELETE("/user/:id/address", accountH.Delete)
	}

	items := api.Group("/items")
	{
		items.POST("/", itemH.Create)
		items.GET("/", itemH.List)
		items.GET("/item/name/:name", itemH.GetByName)
		items.GET("/item/:id", itemH.GetByID)
		items.PUT("/item/:id", itemH.Update)
		items.DELETE("/item/:id", itemH.Delete)
	}

	products := api.Group("/products")
	{
		products.GET("/", productH.List)
		products.GET("/product/:id", productH.GetByID)
		products.POST("/", authed, productH.Create)
		products.PUT("/product/:id", authed, productH.Update)
		products.DELETE("/product/:id", authed, productH.Delete)
	}

	categories := api.Group("/categories")
	{
		categories.GET("/", categoryH.List)
		categories.GET("/category/:id", categoryH.GetByID)
		categories.POST("/", adminOnly, categoryH.Create)
		categories.PUT("/category/:id", adminOnly, categoryH.Rename)
		categories.DELETE("/category/:id", adminOnly, categoryH.Delete)
	}

	orders := api.Group("/orders", authed)
	{
		orders.POST("/", orderH.Create)
		orders.GET("/", orderH.ListMine)
		orders.GET("/order/:id", orderH.GetByID)
		orders.POST("/order/:id/status", adminOnly, orderH.AppendStatus)
		orders.POST("/order/:id/delivered", adminOnly, orderH.MarkDelivered)
	}

	authGrp := api.Group("/auth")
	{
		authGrp.POST("/register", authH.Register)
		authGrp.POST("/login", authH.Login)
		authGrp.POST("/refresh", authH.Refresh)
		authGrp.POST("/logout", authed, authH.Logout)
	}

	return r
}
