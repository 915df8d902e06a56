package api

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/aptit/backend/internal/middleware"
	"github.com/aptit/backend/internal/service"
)

// SetupAPI builds the services and registers every route on the router.
func SetupAPI(router *gin.Engine, db *gorm.DB, redisClient *redis.Client, gemini service.GeminiAPI, logger *zap.Logger) {
	recipeService := service.NewRecipeService(db)
	extractService := service.NewExtractService(gemini, redisClient, logger)
	convertService := service.NewConvertService(gemini, logger)
	explainService := service.NewExplainService(gemini, redisClient, logger)

	recipeHandler := NewRecipeHandler(recipeService, extractService, convertService, logger)
	ingredientHandler := NewIngredientHandler(explainService, logger)
	healthHandler := NewHealthHandler(db, redisClient)

	var extractLimiter gin.HandlerFunc
	if redisClient != nil {
		extractLimiter = middleware.NewExtractionRateLimiter(redisClient).RateLimitMiddleware()
	}

	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/api/v1")
	{
		recipeHandler.RegisterRoutes(v1, extractLimiter)
		ingredientHandler.RegisterRoutes(v1)
	}
}
