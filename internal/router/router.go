package router

import (
	"fmt"
	"strings"
	"time"

	"github.com/inkwell-cms/inkwell/internal/cache"
	"github.com/inkwell-cms/inkwell/internal/config"
	adminhandlers "github.com/inkwell-cms/inkwell/internal/http/handlers/admin"
	publichandlers "github.com/inkwell-cms/inkwell/internal/http/handlers/public"
	"github.com/inkwell-cms/inkwell/internal/logger"
	"github.com/inkwell-cms/inkwell/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "ink"
	}
	redisClient := cache.Client()
	writeRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_write", redisPrefix),
		WindowSeconds: cfg.Security.WriteRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.WriteRateLimit.MaxRequests,
	}
	writeLimit := RateLimitMiddleware(redisClient, writeRule, KeyByIP)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))
	r.Use(TimeoutMiddleware(time.Duration(cfg.Server.RequestTimeoutMS) * time.Millisecond))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("")
		{
			public.GET("/posts", publicHandler.GetPosts)
			public.GET("/posts/:id", publicHandler.GetPost)
			public.GET("/categories", publicHandler.GetCategories)
		}

		// 管理员接口
		admin := apiV1.Group("/admin")
		{
			// 文章管理
			admin.GET("/posts", adminHandler.GetAdminPosts)
			admin.GET("/posts/:id", adminHandler.GetAdminPost)
			admin.POST("/posts", writeLimit, adminHandler.CreatePost)
			admin.PUT("/posts/:id", writeLimit, adminHandler.UpdatePost)
			admin.DELETE("/posts/:id", writeLimit, adminHandler.DeletePost)

			// 分类管理
			admin.GET("/categories", adminHandler.GetAdminCategories)
			admin.GET("/categories/:id", adminHandler.GetAdminCategory)
			admin.POST("/categories", writeLimit, adminHandler.CreateCategory)
			admin.PUT("/categories/:id", writeLimit, adminHandler.UpdateCategory)
			admin.DELETE("/categories/:id", writeLimit, adminHandler.DeleteCategory)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
