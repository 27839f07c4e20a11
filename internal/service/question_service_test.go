package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"adpc-engine/internal/domain"
)

type memoryQuestionCache struct {
	entries map[string][]QuestionView
	gets    int
	sets    int
}

func newMemoryQuestionCache() *memoryQuestionCache {
	return &memoryQuestionCache{entries: make(map[string][]QuestionView)}
}

func (c *memoryQuestionCache) Get(_ context.Context, version string) ([]QuestionView, bool) {
	c.gets++
	views, ok := c.entries[version]
	return views, ok
}

func (c *memoryQuestionCache) Set(_ context.Context, version string, questions []QuestionView) {
	c.sets++
	c.entries[version] = questions
}

func TestListQuestionsRedactsWeights(t *testing.T) {
	repo := &mockQuestionRepo{questions: []domain.Question{discQuestion()}}
	svc := NewQuestionService(zap.NewNop(), repo, nil, "v1")

	version, questions, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if version != "v1" {
		t.Fatalf("expected default version v1, got %s", version)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	if len(questions[0].Options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(questions[0].Options))
	}
	// OptionView no tiene campo de peso; verificamos lo visible.
	for _, opt := range questions[0].Options {
		if opt.ID == "" || opt.Code == "" {
			t.Fatalf("option view incomplete: %+v", opt)
		}
	}
}

func TestListQuestionsUsesCache(t *testing.T) {
	repo := &mockQuestionRepo{questions: []domain.Question{discQuestion()}}
	cache := newMemoryQuestionCache()
	svc := NewQuestionService(zap.NewNop(), repo, cache, "v1")

	if _, _, err := svc.List(context.Background(), "v1"); err != nil {
		t.Fatalf("first list: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected cache populated, got %d sets", cache.sets)
	}

	repoCallsBefore := repo.calls
	if _, questions, err := svc.List(context.Background(), "v1"); err != nil || len(questions) != 1 {
		t.Fatalf("second list: %v (%d questions)", err, len(questions))
	}
	if repo.calls != repoCallsBefore {
		t.Fatalf("expected cache hit to skip repository")
	}
}
