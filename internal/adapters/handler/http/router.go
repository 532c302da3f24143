package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/timewinder-app/timewinder/docs"
	"github.com/timewinder-app/timewinder/internal/adapters/handler/http/middleware"
	"github.com/timewinder-app/timewinder/internal/core/services"
)

type RouterDependencies struct {
	AuthHandler       *AuthHandler
	GoalHandler       *GoalHandler
	StreakHandler     *StreakHandler
	MotivationHandler *MotivationHandler
	TokenService      *services.TokenService
	Redis             *redis.Client
	StartTime         time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	if deps.Redis != nil {
		router.Use(middleware.RateLimiter(deps.Redis, 100, 1*time.Minute))
	}

	router.GET("/health", func(c *gin.Context) {
		redisStatus := "disabled"
		statusCode := 200
		if deps.Redis != nil {
			redisStatus = "connected"
			if deps.Redis.Ping(c.Request.Context()).Err() != nil {
				redisStatus = "unreachable"
				statusCode = 503
			}
		}

		c.JSON(statusCode, gin.H{
			"status": "ok",
			"redis":  redisStatus,
			"uptime": time.Since(deps.StartTime).String(),
		})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1")

	deps.AuthHandler.RegisterRoutes(apiV1)

	protected := apiV1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.TokenService))
	{
		deps.GoalHandler.RegisterRoutes(protected)
		deps.StreakHandler.RegisterRoutes(protected)
		deps.MotivationHandler.RegisterRoutes(protected)
	}

	return router
}
