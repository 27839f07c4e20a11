package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"adpc-engine/internal/domain"
)

// AuditRepository escribe registros de auditoria (solo insert).
type AuditRepository interface {
	Create(ctx context.Context, entry domain.AuditLog) error
}

type PgAuditRepository struct {
	pool *pgxpool.Pool
}

func NewPgAuditRepository(pool *pgxpool.Pool) *PgAuditRepository {
	return &PgAuditRepository{pool: pool}
}

func (r *PgAuditRepository) Create(ctx context.Context, entry domain.AuditLog) error {
	var metadata []byte
	if entry.Metadata != nil {
		encoded, err := json.Marshal(entry.Metadata)
		if err != nil {
			return err
		}
		metadata = encoded
	}

	const query = `
		INSERT INTO audit_logs (id, request_id, action, ip, user_agent, status_code, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		entry.ID,
		entry.RequestID,
		entry.Action,
		entry.IP,
		entry.UserAgent,
		entry.StatusCode,
		metadata,
		entry.CreatedAt,
	)
	return err
}
