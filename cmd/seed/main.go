package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"adpc-engine/internal/domain"
	"adpc-engine/internal/repository"
)

// seedFile es el formato del archivo versionado de cuestionario.
type seedFile struct {
	Version   string `json:"version"`
	Questions []struct {
		Code      string `json:"code"`
		Text      string `json:"text"`
		Dimension string `json:"dimension"`
		Options   []struct {
			Code      string  `json:"code"`
			Text      string  `json:"text"`
			Weight    float64 `json:"weight"`
			Dimension string  `json:"dimension,omitempty"`
		} `json:"options"`
	} `json:"questions"`
}

func main() {
	path := flag.String("file", "seed/adpc.v1.json", "archivo JSON del cuestionario")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		logger.Fatal("DATABASE_URL is required")
	}

	raw, err := os.ReadFile(*path)
	if err != nil {
		logger.Fatal("read seed file", zap.Error(err))
	}
	var seed seedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		logger.Fatal("parse seed file", zap.Error(err))
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	repo := repository.NewPgSeedRepository(pool)

	logger.Info("seeding questionnaire", zap.String("version", seed.Version), zap.Int("questions", len(seed.Questions)))

	now := time.Now().UTC()
	for _, q := range seed.Questions {
		questionID, err := repo.UpsertQuestion(ctx, domain.Question{
			ID:        uuid.NewString(),
			Code:      q.Code,
			Text:      q.Text,
			Dimension: q.Dimension,
			Version:   seed.Version,
			CreatedAt: now,
		})
		if err != nil {
			logger.Fatal("upsert question", zap.Error(err), zap.String("code", q.Code))
		}

		for _, opt := range q.Options {
			err := repo.UpsertOption(ctx, domain.Option{
				ID:         uuid.NewString(),
				QuestionID: questionID,
				Code:       opt.Code,
				Text:       opt.Text,
				Weight:     opt.Weight,
				Dimension:  opt.Dimension,
			})
			if err != nil {
				logger.Fatal("upsert option", zap.Error(err), zap.String("question", q.Code), zap.String("option", opt.Code))
			}
		}
	}

	logger.Info("seed finished")
}
