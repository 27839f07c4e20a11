package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// QuestionCache guarda listas de preguntas ya redactadas (sin pesos) por
// version del cuestionario.
type QuestionCache interface {
	Get(ctx context.Context, version string) ([]QuestionView, bool)
	Set(ctx context.Context, version string, questions []QuestionView)
}

type redisQuestionCache struct {
	client redisStringClient
	ttl    time.Duration
	prefix string
}

type redisStringClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// NewRedisQuestionCache crea un cache sobre Redis; devuelve nil si no hay
// cliente, y el servicio de preguntas tolera un cache nil.
func NewRedisQuestionCache(client *redis.Client, ttl time.Duration) QuestionCache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &redisQuestionCache{
		client: client,
		ttl:    ttl,
		prefix: "adpc:questions:",
	}
}

func (c *redisQuestionCache) Get(ctx context.Context, version string) ([]QuestionView, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, c.prefix+version).Bytes()
	if err != nil {
		return nil, false
	}
	var questions []QuestionView
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, false
	}
	return questions, true
}

func (c *redisQuestionCache) Set(ctx context.Context, version string, questions []QuestionView) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(questions)
	if err != nil {
		return
	}
	// El cache es mejor-esfuerzo: un Set fallido solo cuesta una lectura.
	_ = c.client.Set(ctx, c.prefix+version, raw, c.ttl).Err()
}
