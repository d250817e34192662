package api

import (
	"time"

	"cookia/internal/api/handlers/health"
	recipeHandler "cookia/internal/api/handlers/recipe"
	"cookia/internal/api/middleware"
	"cookia/internal/core/ai/groq"
	aiService "cookia/internal/core/ai/service"
	"cookia/internal/core/mealdb"
	recipeService "cookia/internal/core/recipe"
	"cookia/internal/infrastructure/config"
	"cookia/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter 設置路由並組裝所有服務
func SetupRouter(cfg *config.Config) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(requestid.New())
	router.Use(middleware.Logger())

	// CORS 設置（前端開發環境預設允許所有來源）
	router.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORS.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(cfg.Server.MaxBodyBytes))

	// 初始化服務
	completion := groq.NewClient(cfg.Groq)
	enricher := aiService.NewService(completion)
	meals := mealdb.NewClient(cfg.MealDB)
	recipeSvc := recipeService.NewRecipeService(meals, enricher,
		recipeService.WithParallelEnrichment(cfg.Recipe.ParallelEnrichment),
	)

	common.LogInfo("Recipe services initialized successfully",
		zap.String("model", completion.Model()),
		zap.Bool("completion_configured", cfg.HasAPIKey()),
		zap.String("mealdb", cfg.MealDB.BaseURL),
		zap.Bool("parallel_enrichment", cfg.Recipe.ParallelEnrichment),
	)

	// 健康檢查路由
	healthHandler := health.NewHandler(cfg)
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/ready", healthHandler.ReadinessCheck)
	router.GET("/live", healthHandler.LivenessCheck)

	// API 路由組
	api := router.Group("/api")
	{
		recipeGroup := api.Group("/recipe")
		{
			recipeGroup.POST("/generate", recipeHandler.NewHandler(recipeSvc).HandleGenerate)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.String("environment", cfg.App.Env),
		zap.Int64("max_body_size", cfg.Server.MaxBodyBytes),
	)

	return router, nil
}
