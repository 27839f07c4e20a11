package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"adpc-engine/internal/config"
	"adpc-engine/internal/db"
	apihttp "adpc-engine/internal/http"
	"adpc-engine/internal/repository"
	"adpc-engine/internal/service"
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

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	if err := db.Ping(ctx, pool); err != nil {
		logger.Fatal("db ping", zap.Error(err))
	}

	questionRepo := repository.NewPgQuestionRepository(pool)
	submissionStore := repository.NewPgSubmissionStore(pool)
	userRepo := repository.NewPgUserRepository(pool)
	auditRepo := repository.NewPgAuditRepository(pool)

	var questionCache service.QuestionCache
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
			questionCache = service.NewRedisQuestionCache(redisClient, time.Duration(cfg.QuestionCacheTTL)*time.Second)
		}
		cancel()
	}

	validator := service.NewResponseValidator(questionRepo)
	submissionSvc := service.NewSubmissionService(logger, validator, submissionStore, cfg.DefaultVersion)
	questionSvc := service.NewQuestionService(logger, questionRepo, questionCache, cfg.DefaultVersion)
	userSvc := service.NewUserService(userRepo)

	userHandler := apihttp.NewUserHandler(logger, userSvc)
	questionHandler := apihttp.NewQuestionHandler(logger, questionSvc)
	submissionHandler := apihttp.NewSubmissionHandler(logger, submissionSvc)
	router := apihttp.NewRouter(logger, cfg.APIKey, auditRepo, userHandler, questionHandler, submissionHandler)

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
