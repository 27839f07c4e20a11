package service

import (
	"context"
	"strings"

	"adpc-engine/internal/domain"
	"adpc-engine/internal/repository"
)

// SubmitInput es el request tipado del submit; llega ya deserializado
// desde el borde HTTP.
type SubmitInput struct {
	UserID    string
	Version   string
	Responses []AnswerInput
}

type AnswerInput struct {
	QuestionID string
	OptionID   string
}

// EnrichedResponse es una respuesta resuelta contra el cuestionario: peso y
// dimension de la opcion elegida, mas el rango alcanzable de su pregunta
// para la normalizacion posterior.
type EnrichedResponse struct {
	QuestionID string
	OptionID   string
	// Dimension efectiva de la opcion elegida (puede diferir de la de la
	// pregunta si la opcion la sobreescribe).
	Dimension string
	Weight    float64
	// Dimension de la pregunta; el min/max acumula sobre esta.
	QuestionDimension string
	MinWeight         float64
	MaxWeight         float64
}

// ResponseValidator chequea un lote de respuestas contra el cuestionario.
// Lectura pura: no tiene efectos sobre el store.
type ResponseValidator struct {
	questions repository.QuestionRepository
}

func NewResponseValidator(questions repository.QuestionRepository) *ResponseValidator {
	return &ResponseValidator{questions: questions}
}

// Validate falla con *domain.ValidationError ante cualquier problema del
// lote; cualquier otro error es de infraestructura.
func (v *ResponseValidator) Validate(ctx context.Context, input SubmitInput) ([]EnrichedResponse, error) {
	if len(input.Responses) == 0 {
		return nil, domain.NewValidationError(domain.ValidationEmptyResponses, "responses must be a non-empty array")
	}
	if strings.TrimSpace(input.UserID) == "" {
		return nil, domain.NewValidationError(domain.ValidationMissingUser, "userId is required")
	}

	questionIDs := make([]string, 0, len(input.Responses))
	seen := make(map[string]bool, len(input.Responses))
	var duplicated []string
	for _, r := range input.Responses {
		if seen[r.QuestionID] {
			duplicated = append(duplicated, r.QuestionID)
			continue
		}
		seen[r.QuestionID] = true
		questionIDs = append(questionIDs, r.QuestionID)
	}
	if len(duplicated) > 0 {
		return nil, domain.NewValidationError(domain.ValidationDuplicateQuestion, "duplicate questionId in responses", duplicated...)
	}

	questions, err := v.questions.FindByIDs(ctx, questionIDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	var missing []string
	for _, id := range questionIDs {
		if _, ok := byID[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError(domain.ValidationQuestionNotFound, "question(s) not found", missing...)
	}

	// Indice opcion -> metadata resuelta, mas rango min/max por pregunta.
	type optionMeta struct {
		questionID string
		dimension  string
		weight     float64
	}
	options := make(map[string]optionMeta)
	minByQuestion := make(map[string]float64, len(questions))
	maxByQuestion := make(map[string]float64, len(questions))
	for _, q := range questions {
		for i, opt := range q.Options {
			options[opt.ID] = optionMeta{
				questionID: q.ID,
				dimension:  opt.ResolvedDimension(q),
				weight:     opt.Weight,
			}
			if i == 0 || opt.Weight < minByQuestion[q.ID] {
				minByQuestion[q.ID] = opt.Weight
			}
			if i == 0 || opt.Weight > maxByQuestion[q.ID] {
				maxByQuestion[q.ID] = opt.Weight
			}
		}
	}

	enriched := make([]EnrichedResponse, 0, len(input.Responses))
	for _, r := range input.Responses {
		meta, ok := options[r.OptionID]
		if !ok {
			return nil, domain.NewValidationError(domain.ValidationOptionNotFound, "optionId not found", r.OptionID)
		}
		if meta.questionID != r.QuestionID {
			return nil, domain.NewValidationError(domain.ValidationOptionQuestionMismatch, "option does not belong to question", r.OptionID, r.QuestionID)
		}
		question := byID[r.QuestionID]
		enriched = append(enriched, EnrichedResponse{
			QuestionID:        r.QuestionID,
			OptionID:          r.OptionID,
			Dimension:         meta.dimension,
			Weight:            meta.weight,
			QuestionDimension: questionDimension(question),
			MinWeight:         minByQuestion[r.QuestionID],
			MaxWeight:         maxByQuestion[r.QuestionID],
		})
	}
	return enriched, nil
}

func questionDimension(q domain.Question) string {
	if q.Dimension != "" {
		return q.Dimension
	}
	return "UNKNOWN"
}
