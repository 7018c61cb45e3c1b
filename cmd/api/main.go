package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"askhub/internal/config"
	"askhub/internal/db"
	apihttp "askhub/internal/http"
	"askhub/internal/questionbank"
	"askhub/internal/repository"
	"askhub/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	bank, err := questionbank.Load(cfg.QuestionBankDir)
	if err != nil {
		logger.Fatal("load question bank", zap.Error(err))
	}
	logger.Info("question bank loaded",
		zap.Int("questions", len(bank.Questions)),
		zap.Int("tracks", len(bank.Tracks)),
		zap.Strings("pillars", bank.Pillars),
	)

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	attemptRepo := repository.NewPgAttemptRepository(pool)

	var cache service.ResultCache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			cache = service.NewRedisResultCache(redisClient, time.Duration(cfg.ResultCacheTTLMinutes)*time.Minute)
		}
		cancel()
	}

	assessSvc := service.NewAssessmentService(bank, attemptRepo, cache, logger)
	assessHandler := apihttp.NewAssessmentHandler(logger, assessSvc)
	router := apihttp.NewRouter(logger, assessHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
