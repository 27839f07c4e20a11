package service

import (
	"context"

	"go.uber.org/zap"

	"adpc-engine/internal/domain"
	"adpc-engine/internal/repository"
)

// QuestionView es la forma publica de una pregunta: los pesos de las
// opciones nunca salen hacia el cliente.
type QuestionView struct {
	ID        string       `json:"id"`
	Code      string       `json:"code"`
	Text      string       `json:"text"`
	Dimension string       `json:"dimension"`
	Options   []OptionView `json:"options"`
}

type OptionView struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Text string `json:"text"`
}

// QuestionService lista el cuestionario de una version, con cache opcional.
type QuestionService struct {
	logger         *zap.Logger
	questions      repository.QuestionRepository
	cache          QuestionCache
	defaultVersion string
}

func NewQuestionService(logger *zap.Logger, questions repository.QuestionRepository, cache QuestionCache, defaultVersion string) *QuestionService {
	if defaultVersion == "" {
		defaultVersion = "v1"
	}
	return &QuestionService{
		logger:         logger,
		questions:      questions,
		cache:          cache,
		defaultVersion: defaultVersion,
	}
}

func (s *QuestionService) List(ctx context.Context, version string) (string, []QuestionView, error) {
	if version == "" {
		version = s.defaultVersion
	}

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, version); ok {
			return version, cached, nil
		}
	}

	questions, err := s.questions.ListByVersion(ctx, version)
	if err != nil {
		return "", nil, err
	}

	views := make([]QuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, redactQuestion(q))
	}

	if s.cache != nil {
		s.cache.Set(ctx, version, views)
	}
	return version, views, nil
}

func redactQuestion(q domain.Question) QuestionView {
	view := QuestionView{
		ID:        q.ID,
		Code:      q.Code,
		Text:      q.Text,
		Dimension: q.Dimension,
		Options:   make([]OptionView, 0, len(q.Options)),
	}
	for _, o := range q.Options {
		view.Options = append(view.Options, OptionView{ID: o.ID, Code: o.Code, Text: o.Text})
	}
	return view
}
