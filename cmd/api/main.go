package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/timewinder-app/timewinder/internal/adapters/cache"
	"github.com/timewinder-app/timewinder/internal/adapters/generator"
	adapterHTTP "github.com/timewinder-app/timewinder/internal/adapters/handler/http"
	"github.com/timewinder-app/timewinder/internal/adapters/notify"
	"github.com/timewinder-app/timewinder/internal/adapters/repository"
	"github.com/timewinder-app/timewinder/internal/core/domain"
	"github.com/timewinder-app/timewinder/internal/core/services"
	"github.com/timewinder-app/timewinder/internal/core/workers"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// @title        TimeWinder API
// @version      1.0
// @description  Goal tracking engine with live countdowns, bucket classification and a completion streak.
// @BasePath     /api/v1
func main() {
	startTime := time.Now()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	serverPort := getEnv("PORT", "8080")
	backend := getEnv("STORAGE_BACKEND", "memory")
	jwtSecret := getEnv("JWT_SECRET", "dev-secret-change-me")

	var rdb *redis.Client
	var kv domain.KeyValueStore
	var codes services.CodeStore
	var userRepo domain.UserRepository

	memory := repository.NewMemoryKVStore()
	kv = memory
	codes = memory
	userRepo = repository.NewMemoryUserRepository()

	switch backend {
	case "redis":
		client, err := cache.NewRedisClient(cache.Config{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		if err != nil {
			log.Fatalf("Critical: %v", err)
		}
		rdb = client
		store := repository.NewRedisKVStore(client)
		kv = store
		codes = store

	case "postgres":
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
			getEnv("DB_HOST", "localhost"), getEnv("DB_PORT", "5432"),
			os.Getenv("DB_NAME"))

		db, err := sqlx.Connect("pgx", dsn)
		if err != nil {
			log.Fatalf("Critical: Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)

		pgKV := repository.NewPostgresKVStore(db)
		pgUsers := repository.NewPostgresUserRepository(db)

		setupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := pgKV.EnsureSchema(setupCtx); err != nil {
			log.Fatalf("Critical: %v", err)
		}
		if err := pgUsers.EnsureSchema(setupCtx); err != nil {
			log.Fatalf("Critical: %v", err)
		}

		kv = pgKV
		userRepo = pgUsers

	case "memory":
		log.Println("Using in-memory storage (state is lost on restart)")

	default:
		log.Fatalf("Critical: unknown STORAGE_BACKEND %q", backend)
	}

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	clock := domain.NewSystemClock()

	streakService := services.NewStreakService(kv)
	streakWorker := workers.NewStreakWorker(streakService)
	streakWorker.Start(workerCtx)

	goalService := services.NewGoalService(kv, clock, streakWorker)

	hydrateCtx, cancelHydrate := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelHydrate()
	if err := goalService.Hydrate(hydrateCtx); err != nil {
		log.Fatalf("Critical: %v", err)
	}
	if err := streakService.Hydrate(hydrateCtx); err != nil {
		log.Fatalf("Critical: %v", err)
	}

	tickerWorker := workers.NewTickerWorker(goalService, clock, 1*time.Second)
	tickerWorker.Start(workerCtx)

	tokenService := services.NewTokenService(jwtSecret, "timewinder", 24*time.Hour)
	authService := services.NewAuthService(userRepo, tokenService, codes, notify.NewLogMailer())
	otpService := services.NewOTPService(codes, notify.NewLogSMSSender(), tokenService)

	var msgGen domain.MessageGenerator
	if endpoint := os.Getenv("GENERATOR_URL"); endpoint != "" {
		msgGen = generator.NewHTTPGenerator(endpoint, os.Getenv("GENERATOR_API_KEY"))
	}
	motivationService := services.NewMotivationService(msgGen)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:       adapterHTTP.NewAuthHandler(authService, otpService),
		GoalHandler:       adapterHTTP.NewGoalHandler(goalService, tickerWorker),
		StreakHandler:     adapterHTTP.NewStreakHandler(streakService, goalService),
		MotivationHandler: adapterHTTP.NewMotivationHandler(motivationService),
		TokenService:      tokenService,
		Redis:             rdb,
		StartTime:         startTime,
	})

	srv := &http.Server{
		Addr:         ":" + serverPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		// No write timeout: /goals/stream holds its response open.
		WriteTimeout: 0,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("TimeWinder running on http://localhost:%s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	stopWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}
