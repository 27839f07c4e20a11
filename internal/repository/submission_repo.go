package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpc-engine/internal/domain"
)

// SubmissionStore persiste la unidad atomica submission+responses+result
// y lee resultados ya confirmados.
type SubmissionStore interface {
	CreateWithResult(ctx context.Context, submission domain.Submission, responses []domain.Response, result domain.Result) error
	GetResultBySubmissionID(ctx context.Context, submissionID string) (domain.Result, domain.Submission, error)
}

type PgSubmissionStore struct {
	pool *pgxpool.Pool
}

func NewPgSubmissionStore(pool *pgxpool.Pool) *PgSubmissionStore {
	return &PgSubmissionStore{pool: pool}
}

// CreateWithResult escribe todo dentro de una sola transaccion: una
// Submission nunca queda visible sin su Result.
func (r *PgSubmissionStore) CreateWithResult(ctx context.Context, submission domain.Submission, responses []domain.Response, result domain.Result) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const insertSubmission = `
		INSERT INTO adpc_submissions (id, user_id, version, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := tx.Exec(ctx, insertSubmission,
		submission.ID,
		submission.UserID,
		submission.Version,
		submission.Status,
		submission.CreatedAt,
	); err != nil {
		return err
	}

	const insertResponse = `
		INSERT INTO adpc_responses (id, submission_id, question_id, option_id)
		VALUES ($1, $2, $3, $4)
	`
	for _, resp := range responses {
		if _, err := tx.Exec(ctx, insertResponse,
			resp.ID,
			resp.SubmissionID,
			resp.QuestionID,
			resp.OptionID,
		); err != nil {
			return err
		}
	}

	scores, err := json.Marshal(result.Scores)
	if err != nil {
		return err
	}
	explanations, err := json.Marshal(result.Explanations)
	if err != nil {
		return err
	}

	const insertResult = `
		INSERT INTO adpc_results (id, submission_id, scores, primary_profile, explanations, pdf_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := tx.Exec(ctx, insertResult,
		result.ID,
		result.SubmissionID,
		scores,
		result.PrimaryProfile,
		explanations,
		result.PdfURL,
		result.CreatedAt,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PgSubmissionStore) GetResultBySubmissionID(ctx context.Context, submissionID string) (domain.Result, domain.Submission, error) {
	const query = `
		SELECT r.id, r.submission_id, r.scores, r.primary_profile, r.explanations, r.pdf_url, r.created_at,
		       s.id, s.user_id, s.version, s.status, s.created_at
		FROM adpc_results r
		JOIN adpc_submissions s ON s.id = r.submission_id
		WHERE r.submission_id = $1
	`
	var (
		res          domain.Result
		sub          domain.Submission
		scores       []byte
		explanations []byte
	)
	err := r.pool.QueryRow(ctx, query, submissionID).Scan(
		&res.ID,
		&res.SubmissionID,
		&scores,
		&res.PrimaryProfile,
		&explanations,
		&res.PdfURL,
		&res.CreatedAt,
		&sub.ID,
		&sub.UserID,
		&sub.Version,
		&sub.Status,
		&sub.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Result{}, domain.Submission{}, domain.ErrResultNotFound
	}
	if err != nil {
		return domain.Result{}, domain.Submission{}, err
	}

	if err := json.Unmarshal(scores, &res.Scores); err != nil {
		return domain.Result{}, domain.Submission{}, err
	}
	if err := json.Unmarshal(explanations, &res.Explanations); err != nil {
		return domain.Result{}, domain.Submission{}, err
	}
	return res, sub, nil
}
