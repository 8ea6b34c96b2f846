package router

import (
	"fmt"
	"strings"

	"github.com/noren-next/internal/cache"
	"github.com/noren-next/internal/config"
	publichandlers "github.com/noren-next/internal/http/handlers/public"
	"github.com/noren-next/internal/logger"
	"github.com/noren-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "nr"
	}
	redisClient := cache.Client()
	cartRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:cart", redisPrefix),
		WindowSeconds: cfg.Security.CartRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CartRateLimit.MaxRequests,
		Message:       "error.cart_too_many_requests",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))
	r.Use(SessionMiddleware(cfg.Session))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开只读接口（菜单目录）
		public := apiV1.Group("/public")
		{
			public.GET("/menu", publicHandler.GetMenu)
			public.GET("/menu/:item_id", publicHandler.GetMenuItem)
		}

		// 购物车读接口
		apiV1.GET("/cart", publicHandler.GetCart)

		// 购物车写接口（限流保护）
		cart := apiV1.Group("/cart")
		cart.Use(RateLimitMiddleware(redisClient, cartRule, KeyBySession))
		{
			cart.POST("/items", publicHandler.AddCartItem)
			cart.PUT("/items/:item_id", publicHandler.UpdateCartItem)
			cart.DELETE("/items/:item_id", publicHandler.DeleteCartItem)
			cart.DELETE("", publicHandler.ClearCart)
			cart.POST("/open", publicHandler.OpenCart)
			cart.POST("/close", publicHandler.CloseCart)
			cart.POST("/toggle", publicHandler.ToggleCart)
		}
	}

	return r
}
