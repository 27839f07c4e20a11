package repository

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"

	"adpc-engine/internal/domain"
)

// QuestionRepository define el acceso de solo lectura al cuestionario.
// El engine nunca escribe preguntas; eso es del proceso de seed.
type QuestionRepository interface {
	FindByIDs(ctx context.Context, ids []string) ([]domain.Question, error)
	ListByVersion(ctx context.Context, version string) ([]domain.Question, error)
}

type PgQuestionRepository struct {
	pool *pgxpool.Pool
}

func NewPgQuestionRepository(pool *pgxpool.Pool) *PgQuestionRepository {
	return &PgQuestionRepository{pool: pool}
}

func (r *PgQuestionRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Question, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	const query = `
		SELECT id, code, text, dimension, version, created_at
		FROM adpc_questions
		WHERE id = ANY($1)
	`
	questions, err := r.queryQuestions(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	return r.attachOptions(ctx, questions)
}

func (r *PgQuestionRepository) ListByVersion(ctx context.Context, version string) ([]domain.Question, error) {
	const query = `
		SELECT id, code, text, dimension, version, created_at
		FROM adpc_questions
		WHERE version = $1
		ORDER BY code
	`
	questions, err := r.queryQuestions(ctx, query, version)
	if err != nil {
		return nil, err
	}
	return r.attachOptions(ctx, questions)
}

func (r *PgQuestionRepository) queryQuestions(ctx context.Context, query string, arg any) ([]domain.Question, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []domain.Question
	for rows.Next() {
		var q domain.Question
		if err := rows.Scan(&q.ID, &q.Code, &q.Text, &q.Dimension, &q.Version, &q.CreatedAt); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *PgQuestionRepository) attachOptions(ctx context.Context, questions []domain.Question) ([]domain.Question, error) {
	if len(questions) == 0 {
		return questions, nil
	}

	ids := make([]string, 0, len(questions))
	index := make(map[string]int, len(questions))
	for i, q := range questions {
		ids = append(ids, q.ID)
		index[q.ID] = i
	}

	const query = `
		SELECT id, question_id, code, text, weight, dimension
		FROM adpc_options
		WHERE question_id = ANY($1)
		ORDER BY code
	`
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var o domain.Option
		var dimension sql.NullString
		if err := rows.Scan(&o.ID, &o.QuestionID, &o.Code, &o.Text, &o.Weight, &dimension); err != nil {
			return nil, err
		}
		if dimension.Valid {
			o.Dimension = dimension.String
		}
		if i, ok := index[o.QuestionID]; ok {
			questions[i].Options = append(questions[i].Options, o)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return questions, nil
}
