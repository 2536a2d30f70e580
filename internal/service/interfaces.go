package service

import (
	"context"

	"editorial-workflow/internal/domain"
	"editorial-workflow/internal/validator"
)

// ReviewInput carries an admin's verdict on a pending article.
// Decision must be StatusApproved or StatusRejected.
type ReviewInput struct {
	Decision domain.Status
	Notes    *string
}

// WorkflowService is the single entry point for every workflow
// operation. External callers (HTTP handlers, RPC bindings) invoke
// nothing else.
//
// Mutating methods may return a non-nil result together with a
// *domain.AuditWriteError: the mutation committed but its audit entry
// could not be appended. Callers should surface that as a warning, not
// a failure.
type WorkflowService interface {
	CreateArticle(ctx context.Context, actorID string, in validator.CreateArticleInput) (*domain.Article, error)
	GetArticle(ctx context.Context, actorID, articleID string) (*domain.Article, error)
	UpdateArticle(ctx context.Context, actorID, articleID string, patch domain.ArticlePatch) (*domain.Article, error)
	DeleteArticle(ctx context.Context, actorID, articleID string) error
	SubmitArticle(ctx context.Context, actorID, articleID string) (*domain.Article, error)
	ReviewArticle(ctx context.Context, actorID, articleID string, review ReviewInput) (*domain.Article, error)
	PublishArticle(ctx context.Context, actorID, articleID string) (*domain.Article, error)
	ListArticles(ctx context.Context, actorID string, filter domain.ArticleFilter) ([]domain.Article, error)
	UpdateAccountRole(ctx context.Context, actorID, accountID string, role domain.Role) (*domain.Account, error)
	ListAuditEntries(ctx context.Context, actorID string, filter domain.AuditFilter, limit int) ([]domain.AuditEntry, error)
}

// AuditRecorder appends audit entries for successful mutations.
// Failures are non-fatal by contract.
type AuditRecorder interface {
	Record(ctx context.Context, draft domain.AuditEntryDraft) (*domain.AuditEntry, error)
}
