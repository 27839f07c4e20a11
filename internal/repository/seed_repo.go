package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"adpc-engine/internal/domain"
)

// SeedRepository es el lado de escritura del cuestionario, usado solo por
// el proceso administrativo de seed (cmd/seed).
type SeedRepository interface {
	UpsertQuestion(ctx context.Context, q domain.Question) (string, error)
	UpsertOption(ctx context.Context, o domain.Option) error
}

type PgSeedRepository struct {
	pool *pgxpool.Pool
}

func NewPgSeedRepository(pool *pgxpool.Pool) *PgSeedRepository {
	return &PgSeedRepository{pool: pool}
}

// UpsertQuestion inserta o actualiza por (code, version) y devuelve el id
// persistido de la pregunta.
func (r *PgSeedRepository) UpsertQuestion(ctx context.Context, q domain.Question) (string, error) {
	const query = `
		INSERT INTO adpc_questions (id, code, text, dimension, version, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (code, version)
		DO UPDATE SET text = EXCLUDED.text, dimension = EXCLUDED.dimension
		RETURNING id
	`
	var id string
	err := r.pool.QueryRow(ctx, query,
		q.ID,
		q.Code,
		q.Text,
		q.Dimension,
		q.Version,
		q.CreatedAt,
	).Scan(&id)
	return id, err
}

func (r *PgSeedRepository) UpsertOption(ctx context.Context, o domain.Option) error {
	var dimension any
	if o.Dimension != "" {
		dimension = o.Dimension
	}

	const query = `
		INSERT INTO adpc_options (id, question_id, code, text, weight, dimension)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (question_id, code)
		DO UPDATE SET text = EXCLUDED.text, weight = EXCLUDED.weight, dimension = EXCLUDED.dimension
	`
	_, err := r.pool.Exec(ctx, query,
		o.ID,
		o.QuestionID,
		o.Code,
		o.Text,
		o.Weight,
		dimension,
	)
	return err
}
