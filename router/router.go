package router

import (
	"net/http"
	"time"

	"monviso/api"
	"monviso/config"
	"monviso/database"
	_ "monviso/docs"
	"monviso/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())
	r.Use(CORSMiddleware(cfg.Server.Origins))

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus 指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 健康检查
	r.GET("/health", healthHandler)

	apiGroup := r.Group("/api")
	{
		// 认证相关路由（无需登录）
		authHandler := api.NewAuthHandler(cfg)
		loginLimit := middleware.LoginRateLimit(
			cfg.Security.LoginMaxAttempts,
			time.Duration(cfg.Security.LoginWindowSeconds)*time.Second,
		)
		auth := apiGroup.Group("/auth")
		{
			auth.POST("/register", loginLimit, authHandler.Register)
			auth.POST("/login", loginLimit, authHandler.Login)
			auth.POST("/token/refresh", authHandler.Refresh)
			auth.POST("/logout", authHandler.Logout)
		}

		// 需要 JWT 认证的路由
		authorized := apiGroup.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			authorized.GET("/profile", api.NewProfileHandler().Get)

			onboardingHandler := api.NewOnboardingHandler()
			authorized.POST("/onboarding", onboardingHandler.Complete)
			authorized.GET("/onboarding/status", onboardingHandler.Status)

			summaryHandler := api.NewSummaryHandler()
			authorized.GET("/dashboard", summaryHandler.Dashboard)
			authorized.GET("/financial-data", summaryHandler.Dashboard)
			authorized.GET("/summary", summaryHandler.Brief)

			// 交易流水
			transactionHandler := api.NewTransactionHandler()
			transactions := authorized.Group("/transactions")
			{
				transactions.GET("", transactionHandler.List)
				transactions.POST("", transactionHandler.Create)
				transactions.GET("/export", transactionHandler.Export)
				transactions.GET("/:id", transactionHandler.Get)
				transactions.PUT("/:id", transactionHandler.Update)
				transactions.DELETE("/:id", transactionHandler.Delete)
			}

			categoryHandler := api.NewCategoryHandler()
			categories := authorized.Group("/categories")
			{
				categories.GET("", categoryHandler.List)
				categories.POST("", categoryHandler.Create)
				categories.GET("/:id", categoryHandler.Get)
				categories.PUT("/:id", categoryHandler.Update)
				categories.DELETE("/:id", categoryHandler.Delete)
			}

			incomeHandler := api.NewIncomeHandler()
			incomes := authorized.Group("/incomes")
			{
				incomes.GET("", incomeHandler.List)
				incomes.POST("", incomeHandler.Create)
				incomes.GET("/:id", incomeHandler.Get)
				incomes.PUT("/:id", incomeHandler.Update)
				incomes.DELETE("/:id", incomeHandler.Delete)
			}

			expenseHandler := api.NewExpenseHandler()
			expenses := authorized.Group("/expenses")
			{
				expenses.GET("", expenseHandler.List)
				expenses.POST("", expenseHandler.Create)
				expenses.GET("/:id", expenseHandler.Get)
				expenses.PUT("/:id", expenseHandler.Update)
				expenses.DELETE("/:id", expenseHandler.Delete)
			}

			goalHandler := api.NewSavingsGoalHandler()
			goals := authorized.Group("/savings-goals")
			{
				goals.GET("", goalHandler.List)
				goals.POST("", goalHandler.Create)
				goals.GET("/:id", goalHandler.Get)
				goals.PUT("/:id", goalHandler.Update)
				goals.DELETE("/:id", goalHandler.Delete)
			}
		}
	}

	return r
}

// healthHandler 检查数据库连通性
func healthHandler(c *gin.Context) {
	status := "ok"
	code := http.StatusOK
	if database.DB == nil {
		status, code = "unavailable", http.StatusServiceUnavailable
	} else if sqlDB, err := database.DB.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		status, code = "unavailable", http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"status":   status,
		"database": status,
	})
}

// CORSMiddleware CORS 跨域中间件，未配置来源时允许任意来源但不携带凭证
func CORSMiddleware(origins []string) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept", "Authorization", "X-Request-ID", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: len(origins) > 0,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) > 0 {
		corsCfg.AllowOrigins = origins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	return cors.New(corsCfg)
}
