package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"editorial-workflow/internal/domain"
)

// DefaultAuditListLimit caps audit queries that pass no explicit limit.
const DefaultAuditListLimit = 100

// PostgresAuditRepository implements AuditRepository using PostgreSQL.
// The table is append-only; no update or delete statements exist here.
type PostgresAuditRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAuditRepository creates a new PostgresAuditRepository.
func NewPostgresAuditRepository(pool *pgxpool.Pool) *PostgresAuditRepository {
	return &PostgresAuditRepository{pool: pool}
}

// Append inserts one audit entry. The database assigns seq from a
// sequence so entries created within the same clock resolution still
// have a total order.
func (r *PostgresAuditRepository) Append(ctx context.Context, draft domain.AuditEntryDraft) (*domain.AuditEntry, error) {
	entry := domain.AuditEntry{
		ID:           uuid.New().String(),
		ActorID:      draft.ActorID,
		Action:       draft.Action,
		ResourceType: draft.ResourceType,
		ResourceID:   draft.ResourceID,
		Details:      draft.Details,
	}

	err := r.pool.QueryRow(ctx, `
		INSERT INTO audit_entries (id, actor_id, action, resource_type, resource_id, details)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING seq, created_at
	`, entry.ID, entry.ActorID, entry.Action, entry.ResourceType, entry.ResourceID, entry.Details).
		Scan(&entry.Seq, &entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("append audit entry: %w", err)
	}
	return &entry, nil
}

// List returns at most limit entries matching filter, ordered by
// (created_at, seq) descending. Limits at or below zero, or above the
// default cap, are clamped to the cap to prevent unbounded reads.
func (r *PostgresAuditRepository) List(ctx context.Context, filter domain.AuditFilter, limit int) ([]domain.AuditEntry, error) {
	if limit <= 0 || limit > DefaultAuditListLimit {
		limit = DefaultAuditListLimit
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, seq, actor_id, action, resource_type, resource_id, details, created_at
		FROM audit_entries
		WHERE ($1::uuid IS NULL OR actor_id = $1)
		  AND ($2::text IS NULL OR resource_type = $2)
		  AND ($3::timestamptz IS NULL OR created_at >= $3)
		ORDER BY created_at DESC, seq DESC
		LIMIT $4
	`, filter.ActorID, filter.ResourceType, filter.Since, limit)
	if err != nil {
		return nil, fmt.Errorf("query audit entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.AuditEntry{}
	for rows.Next() {
		var e domain.AuditEntry
		if err := rows.Scan(&e.ID, &e.Seq, &e.ActorID, &e.Action, &e.ResourceType,
			&e.ResourceID, &e.Details, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
