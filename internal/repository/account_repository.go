package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"editorial-workflow/internal/domain"
)

// PostgresAccountRepository implements AccountRepository using PostgreSQL.
type PostgresAccountRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAccountRepository creates a new PostgresAccountRepository.
func NewPostgresAccountRepository(pool *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{pool: pool}
}

// Create inserts a new account, as provisioned on first authentication.
func (r *PostgresAccountRepository) Create(ctx context.Context, a *domain.Account) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO accounts (id, email, display_name, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, a.ID, a.Email, a.DisplayName, a.Role, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.NewValidationError("email", "duplicate_email")
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID fetches an account by id.
func (r *PostgresAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	return r.get(ctx, `
		SELECT id, email, display_name, role, created_at, updated_at
		FROM accounts WHERE id = $1
	`, id)
}

// GetByEmail fetches an account by its unique email.
func (r *PostgresAccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.get(ctx, `
		SELECT id, email, display_name, role, created_at, updated_at
		FROM accounts WHERE email = $1
	`, email)
}

func (r *PostgresAccountRepository) get(ctx context.Context, query, arg string) (*domain.Account, error) {
	var a domain.Account
	err := r.pool.QueryRow(ctx, query, arg).
		Scan(&a.ID, &a.Email, &a.DisplayName, &a.Role, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}

// UpdateRole sets a new role on the account in one conditional update
// keyed on (id, expected) and returns the updated record. A concurrent
// role change is reported as a conflict, never overwritten.
func (r *PostgresAccountRepository) UpdateRole(ctx context.Context, id string, role, expected domain.Role) (*domain.Account, error) {
	var a domain.Account
	err := r.pool.QueryRow(ctx, `
		UPDATE accounts
		SET role = $3, updated_at = NOW()
		WHERE id = $1 AND role = $2
		RETURNING id, email, display_name, role, created_at, updated_at
	`, id, expected, role).
		Scan(&a.ID, &a.Email, &a.DisplayName, &a.Role, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.disambiguate(ctx, id)
		}
		return nil, fmt.Errorf("update account role: %w", err)
	}
	return &a, nil
}

// disambiguate tells a zero-row conditional update apart: the account is
// either gone (NotFound) or its role moved under us (Conflict).
func (r *PostgresAccountRepository) disambiguate(ctx context.Context, id string) error {
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM accounts WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("check account existence: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrConflict
}
