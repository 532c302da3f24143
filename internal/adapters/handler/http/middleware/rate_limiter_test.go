package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timewinder-app/timewinder/internal/adapters/cache"
)

func TestRateLimiter_FailsOpen(t *testing.T) {
	gin.SetMode(gin.TestMode)

	deadClient := redis.NewClient(&redis.Options{Addr: "localhost:1"})

	router := gin.New()
	router.Use(RateLimiter(deadClient, 1, time.Minute))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimiter_Integration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	_ = godotenv.Load("../../../../../.env")

	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	rdb, err := cache.NewRedisClient(cache.Config{
		Host:     host,
		Port:     port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       1,
	})
	if err != nil {
		t.Skipf("Skipping Redis integration test: %v", err)
	}
	defer rdb.Close()

	ctx := context.Background()
	require.NoError(t, rdb.FlushDB(ctx).Err())

	hit := func(router *gin.Engine, ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Forwarded-For", ip)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("Requests under the limit pass with headers", func(t *testing.T) {
		require.NoError(t, rdb.FlushDB(ctx).Err())

		var limit int64 = 3
		router := gin.New()
		router.Use(RateLimiter(rdb, limit, time.Minute))
		router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		for i := int64(1); i <= limit; i++ {
			w := hit(router, "10.0.0.1")
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, strconv.FormatInt(limit, 10), w.Header().Get("X-RateLimit-Limit"))
			assert.Equal(t, strconv.FormatInt(limit-i, 10), w.Header().Get("X-RateLimit-Remaining"))
		}
	})

	t.Run("Request over the limit is rejected", func(t *testing.T) {
		require.NoError(t, rdb.FlushDB(ctx).Err())

		router := gin.New()
		router.Use(RateLimiter(rdb, 1, time.Minute))
		router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		assert.Equal(t, http.StatusOK, hit(router, "10.0.0.2").Code)

		w := hit(router, "10.0.0.2")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), "rate limit exceeded")
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
	})
}
