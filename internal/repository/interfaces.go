package repository

import (
	"context"

	"editorial-workflow/internal/domain"
)

// ArticleRepository defines methods for article data access. Mutations
// that change status are conditioned on the caller's previously observed
// status so concurrent writers cannot silently overwrite each other.
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) error
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error)
	// UpdateConditional persists article in a single conditional update
	// keyed on (article.ID, expected). It returns domain.ErrConflict when
	// the stored status no longer matches expected, and domain.ErrNotFound
	// when the article is gone.
	UpdateConditional(ctx context.Context, article *domain.Article, expected domain.Status) error
	// DeleteConditional removes the article only while its stored status
	// still matches expected.
	DeleteConditional(ctx context.Context, id string, expected domain.Status) error
}

// AccountRepository defines methods for account data access.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	// UpdateRole moves the account to role in a single conditional update
	// keyed on (id, expected). It returns domain.ErrConflict when the
	// stored role no longer matches expected, and domain.ErrNotFound when
	// the account is gone.
	UpdateRole(ctx context.Context, id string, role, expected domain.Role) (*domain.Account, error)
}

// AuditRepository defines methods for the append-only audit log.
// Entries are never updated or deleted.
type AuditRepository interface {
	Append(ctx context.Context, draft domain.AuditEntryDraft) (*domain.AuditEntry, error)
	// List returns entries matching filter, most recent first, ordered by
	// (created_at, seq) descending, at most limit entries.
	List(ctx context.Context, filter domain.AuditFilter, limit int) ([]domain.AuditEntry, error)
}
