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

const uniqueViolation = "23505"

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

// Create inserts a new article. Slug uniqueness is enforced by the
// unique index; a violation surfaces as a duplicate-slug validation
// error rather than a silent overwrite.
func (r *PostgresArticleRepository) Create(ctx context.Context, a *domain.Article) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO articles (id, slug, title, body, excerpt, tags, author_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, a.ID, a.Slug, a.Title, a.Body, a.Excerpt, a.Tags, a.AuthorID, a.Status, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.NewValidationError("slug", "duplicate_slug")
		}
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// GetByID fetches a single article. The returned status is a snapshot
// valid at fetch time; transitions must be conditioned on it, not
// assumed to still hold.
func (r *PostgresArticleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, slug, title, body, excerpt, tags, author_id, status,
		       reviewer_id, review_notes, published_at, created_at, updated_at
		FROM articles
		WHERE id = $1
	`, id)

	a, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	return a, nil
}

// List returns articles matching filter, newest first.
func (r *PostgresArticleRepository) List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error) {
	query := `
		SELECT id, slug, title, body, excerpt, tags, author_id, status,
		       reviewer_id, review_notes, published_at, created_at, updated_at
		FROM articles
		WHERE ($1::uuid IS NULL OR author_id = $1)
		  AND ($2::text IS NULL OR status = $2)
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, filter.AuthorID, (*string)(filter.Status))
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	articles := []domain.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, *a)
	}
	return articles, rows.Err()
}

// UpdateConditional persists the article's mutable fields in one
// conditional statement keyed on (id, expected status). Either the full
// transition commits or nothing does; a concurrent status change is
// reported as a conflict, never overwritten.
func (r *PostgresArticleRepository) UpdateConditional(ctx context.Context, a *domain.Article, expected domain.Status) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE articles
		SET title = $3, body = $4, excerpt = $5, tags = $6, status = $7,
		    reviewer_id = $8, review_notes = $9,
		    published_at = COALESCE(published_at, $10),
		    updated_at = $11
		WHERE id = $1 AND status = $2
	`, a.ID, expected, a.Title, a.Body, a.Excerpt, a.Tags, a.Status,
		a.ReviewerID, a.ReviewNotes, a.PublishedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return r.disambiguate(ctx, a.ID)
	}
	return nil
}

// DeleteConditional removes the article while its stored status still
// matches expected.
func (r *PostgresArticleRepository) DeleteConditional(ctx context.Context, id string, expected domain.Status) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM articles WHERE id = $1 AND status = $2
	`, id, expected)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return r.disambiguate(ctx, id)
	}
	return nil
}

// disambiguate tells a zero-row conditional write apart: the article is
// either gone (NotFound) or its status moved under us (Conflict).
func (r *PostgresArticleRepository) disambiguate(ctx context.Context, id string) error {
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM articles WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("check article existence: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrConflict
}

func scanArticle(row pgx.Row) (*domain.Article, error) {
	var a domain.Article
	err := row.Scan(&a.ID, &a.Slug, &a.Title, &a.Body, &a.Excerpt, &a.Tags,
		&a.AuthorID, &a.Status, &a.ReviewerID, &a.ReviewNotes,
		&a.PublishedAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
