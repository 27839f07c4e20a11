package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"adpc-engine/internal/domain"
	"adpc-engine/internal/repository"
)

// SubmissionService coordina el pipeline de scoring: valida el lote,
// calcula puntajes y persiste submission+responses+result como una sola
// unidad atomica.
type SubmissionService struct {
	logger         *zap.Logger
	validator      *ResponseValidator
	store          repository.SubmissionStore
	defaultVersion string
}

func NewSubmissionService(logger *zap.Logger, validator *ResponseValidator, store repository.SubmissionStore, defaultVersion string) *SubmissionService {
	if defaultVersion == "" {
		defaultVersion = "v1"
	}
	return &SubmissionService{
		logger:         logger,
		validator:      validator,
		store:          store,
		defaultVersion: defaultVersion,
	}
}

type SubmitOutput struct {
	SubmissionID string        `json:"submissionId"`
	Result       domain.Result `json:"result"`
}

// Submit no es idempotente: cada llamada representa una evaluacion y crea
// su propia Submission y su propio Result.
func (s *SubmissionService) Submit(ctx context.Context, input SubmitInput) (SubmitOutput, error) {
	if input.Version == "" {
		input.Version = s.defaultVersion
	}

	enriched, err := s.validator.Validate(ctx, input)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return SubmitOutput{}, err
		}
		s.logger.Error("questionnaire lookup failed", zap.Error(err))
		return SubmitOutput{}, &domain.ProcessingError{Cause: err}
	}

	card := ComputeScores(enriched)

	now := time.Now().UTC()
	submission := domain.Submission{
		ID:        uuid.NewString(),
		UserID:    strings.TrimSpace(input.UserID),
		Version:   input.Version,
		Status:    domain.SubmissionStatusProcessed,
		CreatedAt: now,
	}
	responses := make([]domain.Response, 0, len(input.Responses))
	for _, r := range input.Responses {
		responses = append(responses, domain.Response{
			ID:           uuid.NewString(),
			SubmissionID: submission.ID,
			QuestionID:   r.QuestionID,
			OptionID:     r.OptionID,
		})
	}
	result := domain.Result{
		ID:             uuid.NewString(),
		SubmissionID:   submission.ID,
		Scores:         card.Scores,
		PrimaryProfile: card.PrimaryProfile,
		// Por ahora las explicaciones reflejan los puntajes.
		Explanations: card.Scores,
		CreatedAt:    now,
	}

	if err := s.store.CreateWithResult(ctx, submission, responses, result); err != nil {
		s.logger.Error("submission persist failed",
			zap.Error(err),
			zap.String("user_id", submission.UserID),
			zap.String("version", submission.Version),
		)
		return SubmitOutput{}, &domain.ProcessingError{Cause: err}
	}

	return SubmitOutput{SubmissionID: submission.ID, Result: result}, nil
}

// GetResult lee el resultado confirmado de una entrega. Lectura idempotente.
func (s *SubmissionService) GetResult(ctx context.Context, submissionID string) (domain.Result, domain.Submission, error) {
	result, submission, err := s.store.GetResultBySubmissionID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, domain.ErrResultNotFound) {
			return domain.Result{}, domain.Submission{}, err
		}
		s.logger.Error("result lookup failed", zap.Error(err), zap.String("submission_id", submissionID))
		return domain.Result{}, domain.Submission{}, &domain.ProcessingError{Cause: err}
	}
	return result, submission, nil
}
