package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"editorial-workflow/internal/domain"
	"editorial-workflow/internal/metrics"
	"editorial-workflow/internal/mocks"
	"editorial-workflow/internal/service"
	"editorial-workflow/internal/validator"
)

type workflowFixture struct {
	articles *mocks.MockArticleRepository
	accounts *mocks.MockAccountRepository
	auditLog *mocks.MockAuditRepository
	recorder *mocks.MockAuditRecorder
	svc      *service.Workflow
}

func newWorkflowFixture(t *testing.T) *workflowFixture {
	f := &workflowFixture{
		articles: mocks.NewMockArticleRepository(t),
		accounts: mocks.NewMockAccountRepository(t),
		auditLog: mocks.NewMockAuditRepository(t),
		recorder: mocks.NewMockAuditRecorder(t),
	}
	f.svc = service.NewWorkflow(f.articles, f.accounts, f.auditLog, f.recorder, validator.NewValidator(), 100)
	return f
}

func account(id string, role domain.Role) *domain.Account {
	return &domain.Account{
		ID:          id,
		Email:       id + "@example.com",
		DisplayName: id,
		Role:        role,
	}
}

func draftArticle(id, authorID string) *domain.Article {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Article{
		ID:        id,
		Slug:      "test-article",
		Title:     "Test Article",
		Body:      "body",
		AuthorID:  authorID,
		Status:    domain.StatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (f *workflowFixture) expectActor(a *domain.Account) {
	f.accounts.EXPECT().GetByID(mock.Anything, a.ID).Return(a, nil)
}

func (f *workflowFixture) expectAudit(action domain.Action) {
	f.recorder.EXPECT().
		Record(mock.Anything, mock.MatchedBy(func(d domain.AuditEntryDraft) bool {
			return d.Action == action
		})).
		Return(&domain.AuditEntry{ID: "audit-1"}, nil)
}

func TestWorkflow_CreateArticle(t *testing.T) {
	f := newWorkflowFixture(t)
	author := account("author-1", domain.RoleAuthor)
	f.expectActor(author)

	f.articles.EXPECT().Create(mock.Anything, mock.MatchedBy(func(a *domain.Article) bool {
		return a.AuthorID == author.ID && a.Status == domain.StatusDraft && a.Slug == "my-first-post"
	})).Return(nil)
	f.expectAudit(domain.ActionCreateArticle)

	article, err := f.svc.CreateArticle(context.Background(), author.ID, validator.CreateArticleInput{
		Title: "My First Post",
		Body:  "Hello.",
	})

	require.NoError(t, err)
	require.NotNil(t, article)
	assert.Equal(t, domain.StatusDraft, article.Status)
	assert.Equal(t, author.ID, article.AuthorID)
	assert.NotEmpty(t, article.ID)
}

func TestWorkflow_CreateArticle_Unauthenticated(t *testing.T) {
	f := newWorkflowFixture(t)

	t.Run("empty actor id", func(t *testing.T) {
		_, err := f.svc.CreateArticle(context.Background(), "", validator.CreateArticleInput{Title: "T", Body: "B"})
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("unknown actor id", func(t *testing.T) {
		f.accounts.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrNotFound).Once()
		_, err := f.svc.CreateArticle(context.Background(), "ghost", validator.CreateArticleInput{Title: "T", Body: "B"})
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})
}

func TestWorkflow_CreateArticle_ValidationFailure(t *testing.T) {
	f := newWorkflowFixture(t)
	author := account("author-1", domain.RoleAuthor)
	f.expectActor(author)

	_, err := f.svc.CreateArticle(context.Background(), author.ID, validator.CreateArticleInput{Title: "", Body: "B"})

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestWorkflow_CreateArticle_DuplicateSlug(t *testing.T) {
	f := newWorkflowFixture(t)
	author := account("author-1", domain.RoleAuthor)
	f.expectActor(author)

	f.articles.EXPECT().Create(mock.Anything, mock.Anything).
		Return(domain.NewValidationError("slug", "duplicate_slug"))

	_, err := f.svc.CreateArticle(context.Background(), author.ID, validator.CreateArticleInput{Title: "Taken Title", Body: "B"})

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestWorkflow_GetArticle(t *testing.T) {
	f := newWorkflowFixture(t)
	author := account("author-1", domain.RoleAuthor)
	article := draftArticle("art-1", author.ID)

	t.Run("owner reads own draft", func(t *testing.T) {
		f.accounts.EXPECT().GetByID(mock.Anything, author.ID).Return(author, nil).Once()
		f.articles.EXPECT().GetByID(mock.Anything, article.ID).Return(article, nil).Once()

		got, err := f.svc.GetArticle(context.Background(), author.ID, article.ID)
		require.NoError(t, err)
		assert.Equal(t, article, got)
	})

	t.Run("other author is forbidden", func(t *testing.T) {
		other := account("author-2", domain.RoleAuthor)
		f.accounts.EXPECT().GetByID(mock.Anything, other.ID).Return(other, nil).Once()
		f.articles.EXPECT().GetByID(mock.Anything, article.ID).Return(article, nil).Once()

		_, err := f.svc.GetArticle(context.Background(), other.ID, article.ID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("admin reads any article", func(t *testing.T) {
		admin := account("admin-1", domain.RoleAdmin)
		f.accounts.EXPECT().GetByID(mock.Anything, admin.ID).Return(admin, nil).Once()
		f.articles.EXPECT().GetByID(mock.Anything, article.ID).Return(article, nil).Once()

		got, err := f.svc.GetArticle(context.Background(), admin.ID, article.ID)
		require.NoError(t, err)
		assert.Equal(t, article, got)
	})
}

func TestWorkflow_SubmitArticle(t *testing.T) {
	f := newWorkflowFixture(t)
	author := account("author-1", domain.RoleAuthor)
	article := draftArticle("art-1", author.ID)

	f.expectActor(author)
	f.articles.EXPECT().GetByID(mock.Anything, article.ID).Return(article, nil)
	f.articles.EXPECT().
		UpdateConditional(mock.Anything, mock.MatchedBy(func(a *domain.Article) bool {
			return a.Status == domain.StatusPendingReview
		}), domain.StatusDraft).
		Return(nil)
	f.expectAudit(domain.ActionSubmitArticle)

	got, err := f.svc.SubmitArticle(context.Background(), author.ID, article.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPendingReview, got.Status)
	// The stored record passed to apply must not be mutated in place.
	assert.Equal(t, domain.StatusDraft, article.Status)
}

func TestWorkflow_SubmitArticle_ForbiddenBeforeMutation(t *testing.T) {
	f := newWorkflowFixture(t)
	intruder := account("author-2", domain.RoleAuthor)
	article := draftArticle("art-1", "author-1")

	f.expectActor(intruder)
	f.articles.EXPECT().GetByID(mock.Anything, article.ID).Return(article, nil)
	// No UpdateConditional, no audit: the mocks fail the test if either happens.

	_, err := f.svc.SubmitArticle(context.Background(), intruder.ID, article.ID)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestWorkflow_SubmitArticle_RetainsReviewHistory(t *testing.T) {
	f := newWorkflowFixture(t)
	author := account("author-1", domain.RoleAuthor)
	notes := "needs a stronger opening"
	reviewer := "admin-1"

	rejected := draftArticle("art-1", author.ID)
	rejected.Status = domain.StatusRejected
	rejected.ReviewerID = &reviewer
	rejected.ReviewNotes = &notes

	f.expectActor(author)
	f.articles.EXPECT().GetByID(mock.Anything, rejected.ID).Return(rejected, nil)
	f.articles.EXPECT().
		UpdateConditional(mock.Anything, mock.Anything, domain.StatusRejected).
		Return(nil)
	f.expectAudit(domain.ActionSubmitArticle)

	got, err := f.svc.SubmitArticle(context.Background(), author.ID, rejected.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPendingReview, got.Status)
	require.NotNil(t, got.ReviewerID)
	assert.Equal(t, reviewer, *got.ReviewerID)
	require.NotNil(t, got.ReviewNotes)
	assert.Equal(t, notes, *got.ReviewNotes)
}

func TestWorkflow_ReviewArticle(t *testing.T) {
	f := newWorkflowFixture(t)
	admin := account("admin-1", domain.RoleAdmin)
	notes := "looks good"

	pending := draftArticle("art-1", "author-1")
	pending.Status = domain.StatusPendingReview

	f.expectActor(admin)
	f.articles.EXPECT().GetByID(mock.Anything, pending.ID).Return(pending, nil)
	f.articles.EXPECT().
		UpdateConditional(mock.Anything, mock.MatchedBy(func(a *domain.Article) bool {
			return a.Status == domain.StatusApproved &&
				a.ReviewerID != nil && *a.ReviewerID == admin.ID &&
				a.ReviewNotes != nil && *a.ReviewNotes == notes
		}), domain.StatusPendingReview).
		Return(nil)
	f.expectAudit(domain.ActionApproveArticle)

	got, err := f.svc.ReviewArticle(context.Background(), admin.ID, pending.ID, service.ReviewInput{
		Decision: domain.StatusApproved,
		Notes:    &notes,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, got.Status)
}

func TestWorkflow_ReviewArticle_AuthorForbidden(t *testing.T) {
	f := newWorkflowFixture(t)
	author := account("author-1", domain.RoleAuthor)

	pending := draftArticle("art-1", author.ID)
	pending.Status = domain.StatusPendingReview

	f.expectActor(author)
	f.articles.EXPECT().GetByID(mock.Anything, pending.ID).Return(pending, nil)

	_, err := f.svc.ReviewArticle(context.Background(), author.ID, pending.ID, service.ReviewInput{
		Decision: domain.StatusApproved,
	})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestWorkflow_ReviewArticle_InvalidDecision(t *testing.T) {
	f := newWorkflowFixture(t)
	reviewCounter := metrics.OperationsTotal.WithLabelValues("article_review", metrics.OutcomeValidationError)
	approveCounter := metrics.OperationsTotal.WithLabelValues(string(domain.ActionApproveArticle), metrics.OutcomeValidationError)
	reviewBefore := testutil.ToFloat64(reviewCounter)
	approveBefore := testutil.ToFloat64(approveCounter)

	_, err := f.svc.ReviewArticle(context.Background(), "admin-1", "art-1", service.ReviewInput{
		Decision: domain.StatusPublished,
	})

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	// The failure counts under a neutral review label, not as an approval.
	assert.Equal(t, reviewBefore+1, testutil.ToFloat64(reviewCounter))
	assert.Equal(t, approveBefore, testutil.ToFloat64(approveCounter))
}

func TestWorkflow_ReviewArticle_InvalidTransitionLeavesStoreUntouched(t *testing.T) {
	f := newWorkflowFixture(t)
	admin := account("admin-1", domain.RoleAdmin)
	article := draftArticle("art-1", "author-1")

	f.expectActor(admin)
	f.articles.EXPECT().GetByID(mock.Anything, article.ID).Return(article, nil)
	// Approving a draft never reaches UpdateConditional or the recorder.

	_, err := f.svc.ReviewArticle(context.Background(), admin.ID, article.ID, service.ReviewInput{
		Decision: domain.StatusApproved,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestWorkflow_ReviewArticle_ConflictPropagates(t *testing.T) {
	f := newWorkflowFixture(t)
	admin := account("admin-1", domain.RoleAdmin)

	pending := draftArticle("art-1", "author-1")
	pending.Status = domain.StatusPendingReview

	f.expectActor(admin)
	f.articles.EXPECT().GetByID(mock.Anything, pending.ID).Return(pending, nil)
	f.articles.EXPECT().
		UpdateConditional(mock.Anything, mock.Anything, domain.StatusPendingReview).
		Return(domain.ErrConflict)

	_, err := f.svc.ReviewArticle(context.Background(), admin.ID, pending.ID, service.ReviewInput{
		Decision: domain.StatusRejected,
	})

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestWorkflow_PublishArticle(t *testing.T) {
	f := newWorkflowFixture(t)
	admin := account("admin-1", domain.RoleAdmin)

	approved := draftArticle("art-1", "author-1")
	approved.Status = domain.StatusApproved

	f.expectActor(admin)
	f.articles.EXPECT().GetByID(mock.Anything, approved.ID).Return(approved, nil)
	f.articles.EXPECT().
		UpdateConditional(mock.Anything, mock.MatchedBy(func(a *domain.Article) bool {
			return a.Status == domain.StatusPublished && a.PublishedAt != nil
		}), domain.StatusApproved).
		Return(nil)
	f.expectAudit(domain.ActionPublishArticle)

	got, err := f.svc.PublishArticle(context.Background(), admin.ID, approved.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPublished, got.Status)
	require.NotNil(t, got.PublishedAt)
}

func TestWorkflow_PublishArticle_AuditFailureIsWarning(t *testing.T) {
	f := newWorkflowFixture(t)
	admin := account("admin-1", domain.RoleAdmin)

	approved := draftArticle("art-1", "author-1")
	approved.Status = domain.StatusApproved

	f.expectActor(admin)
	f.articles.EXPECT().GetByID(mock.Anything, approved.ID).Return(approved, nil)
	f.articles.EXPECT().UpdateConditional(mock.Anything, mock.Anything, domain.StatusApproved).Return(nil)
	f.recorder.EXPECT().Record(mock.Anything, mock.Anything).
		Return(nil, &domain.AuditWriteError{Err: errors.New("audit store down")})

	got, err := f.svc.PublishArticle(context.Background(), admin.ID, approved.ID)

	// The publish committed; the caller gets the article plus a warning.
	require.NotNil(t, got)
	assert.Equal(t, domain.StatusPublished, got.Status)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAuditWrite)
}

func TestWorkflow_UpdateArticle(t *testing.T) {
	f := newWorkflowFixture(t)
	author := account("author-1", domain.RoleAuthor)
	article := draftArticle("art-1", author.ID)
	newTitle := "Revised Title"

	f.expectActor(author)
	f.articles.EXPECT().GetByID(mock.Anything, article.ID).Return(article, nil)
	f.articles.EXPECT().
		UpdateConditional(mock.Anything, mock.MatchedBy(func(a *domain.Article) bool {
			// Content patches never touch the slug or the status.
			return a.Title == newTitle && a.Slug == article.Slug && a.Status == domain.StatusDraft
		}), domain.StatusDraft).
		Return(nil)
	f.expectAudit(domain.ActionUpdateArticle)

	got, err := f.svc.UpdateArticle(context.Background(), author.ID, article.ID, domain.ArticlePatch{Title: &newTitle})

	require.NoError(t, err)
	assert.Equal(t, newTitle, got.Title)
}

func TestWorkflow_UpdateArticle_PublishedNotEditable(t *testing.T) {
	f := newWorkflowFixture(t)
	author := account("author-1", domain.RoleAuthor)

	published := draftArticle("art-1", author.ID)
	published.Status = domain.StatusPublished

	f.expectActor(author)
	f.articles.EXPECT().GetByID(mock.Anything, published.ID).Return(published, nil)

	newTitle := "Too Late"
	_, err := f.svc.UpdateArticle(context.Background(), author.ID, published.ID, domain.ArticlePatch{Title: &newTitle})

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestWorkflow_DeleteArticle(t *testing.T) {
	f := newWorkflowFixture(t)
	author := account("author-1", domain.RoleAuthor)
	article := draftArticle("art-1", author.ID)

	f.expectActor(author)
	f.articles.EXPECT().GetByID(mock.Anything, article.ID).Return(article, nil)
	f.articles.EXPECT().DeleteConditional(mock.Anything, article.ID, domain.StatusDraft).Return(nil)
	f.expectAudit(domain.ActionDeleteArticle)

	err := f.svc.DeleteArticle(context.Background(), author.ID, article.ID)

	require.NoError(t, err)
}

func TestWorkflow_DeleteArticle_PublishedBlocked(t *testing.T) {
	f := newWorkflowFixture(t)
	admin := account("admin-1", domain.RoleAdmin)

	published := draftArticle("art-1", "author-1")
	published.Status = domain.StatusPublished

	f.expectActor(admin)
	f.articles.EXPECT().GetByID(mock.Anything, published.ID).Return(published, nil)

	err := f.svc.DeleteArticle(context.Background(), admin.ID, published.ID)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestWorkflow_ListArticles_AuthorScopedToOwn(t *testing.T) {
	f := newWorkflowFixture(t)
	author := account("author-1", domain.RoleAuthor)

	f.expectActor(author)
	f.articles.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(filter domain.ArticleFilter) bool {
			return filter.AuthorID != nil && *filter.AuthorID == author.ID
		})).
		Return([]domain.Article{*draftArticle("art-1", author.ID)}, nil)

	got, err := f.svc.ListArticles(context.Background(), author.ID, domain.ArticleFilter{})

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestWorkflow_ListArticles_AuthorCannotListOthers(t *testing.T) {
	f := newWorkflowFixture(t)
	author := account("author-1", domain.RoleAuthor)
	other := "author-2"

	f.expectActor(author)

	_, err := f.svc.ListArticles(context.Background(), author.ID, domain.ArticleFilter{AuthorID: &other})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestWorkflow_ListArticles_AdminListsAll(t *testing.T) {
	f := newWorkflowFixture(t)
	admin := account("admin-1", domain.RoleAdmin)

	f.expectActor(admin)
	f.articles.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(filter domain.ArticleFilter) bool {
			return filter.AuthorID == nil
		})).
		Return([]domain.Article{}, nil)

	_, err := f.svc.ListArticles(context.Background(), admin.ID, domain.ArticleFilter{})

	require.NoError(t, err)
}

func TestWorkflow_UpdateAccountRole(t *testing.T) {
	f := newWorkflowFixture(t)
	super := account("super-1", domain.RoleSuperAdmin)
	target := account("author-1", domain.RoleAuthor)
	promoted := account("author-1", domain.RoleAdmin)

	f.expectActor(super)
	f.accounts.EXPECT().GetByID(mock.Anything, target.ID).Return(target, nil)
	// Conditioned on the role observed just before the update.
	f.accounts.EXPECT().
		UpdateRole(mock.Anything, target.ID, domain.RoleAdmin, domain.RoleAuthor).
		Return(promoted, nil)
	f.recorder.EXPECT().
		Record(mock.Anything, mock.MatchedBy(func(d domain.AuditEntryDraft) bool {
			return d.Action == domain.ActionUpdateRole &&
				d.ResourceType == domain.ResourceTypeAccount &&
				d.Details["old_role"] == string(domain.RoleAuthor) &&
				d.Details["new_role"] == string(domain.RoleAdmin)
		})).
		Return(&domain.AuditEntry{ID: "audit-1"}, nil)

	got, err := f.svc.UpdateAccountRole(context.Background(), super.ID, target.ID, domain.RoleAdmin)

	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, got.Role)
}

func TestWorkflow_UpdateAccountRole_ConflictPropagates(t *testing.T) {
	f := newWorkflowFixture(t)
	super := account("super-1", domain.RoleSuperAdmin)
	target := account("author-1", domain.RoleAuthor)

	f.expectActor(super)
	f.accounts.EXPECT().GetByID(mock.Anything, target.ID).Return(target, nil)
	// Another super admin moved the role first; no audit entry is written.
	f.accounts.EXPECT().
		UpdateRole(mock.Anything, target.ID, domain.RoleAdmin, domain.RoleAuthor).
		Return(nil, domain.ErrConflict)

	_, err := f.svc.UpdateAccountRole(context.Background(), super.ID, target.ID, domain.RoleAdmin)

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestWorkflow_UpdateAccountRole_AdminForbidden(t *testing.T) {
	f := newWorkflowFixture(t)
	admin := account("admin-1", domain.RoleAdmin)

	f.expectActor(admin)

	_, err := f.svc.UpdateAccountRole(context.Background(), admin.ID, "author-1", domain.RoleAdmin)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestWorkflow_UpdateAccountRole_InvalidRole(t *testing.T) {
	f := newWorkflowFixture(t)
	super := account("super-1", domain.RoleSuperAdmin)

	f.expectActor(super)

	_, err := f.svc.UpdateAccountRole(context.Background(), super.ID, "author-1", domain.Role("editor"))

	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestWorkflow_ListAuditEntries(t *testing.T) {
	f := newWorkflowFixture(t)
	super := account("super-1", domain.RoleSuperAdmin)

	f.expectActor(super)
	f.auditLog.EXPECT().
		List(mock.Anything, domain.AuditFilter{}, 100).
		Return([]domain.AuditEntry{{ID: "e1", Seq: 2}, {ID: "e2", Seq: 1}}, nil)

	// A zero limit falls back to the configured cap.
	got, err := f.svc.ListAuditEntries(context.Background(), super.ID, domain.AuditFilter{}, 0)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestWorkflow_ListAuditEntries_AdminForbidden(t *testing.T) {
	f := newWorkflowFixture(t)
	admin := account("admin-1", domain.RoleAdmin)

	f.expectActor(admin)

	_, err := f.svc.ListAuditEntries(context.Background(), admin.ID, domain.AuditFilter{}, 10)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestWorkflow_FullLifecycle(t *testing.T) {
	f := newWorkflowFixture(t)
	author := account("author-1", domain.RoleAuthor)
	admin := account("admin-1", domain.RoleAdmin)
	f.expectActor(author)
	f.expectActor(admin)

	// A one-article store backing the whole scenario.
	var stored domain.Article
	f.articles.EXPECT().Create(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, a *domain.Article) error {
			stored = *a
			return nil
		})
	f.articles.EXPECT().GetByID(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string) (*domain.Article, error) {
			a := stored
			return &a, nil
		})
	f.articles.EXPECT().UpdateConditional(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, a *domain.Article, expected domain.Status) error {
			if stored.Status != expected {
				return domain.ErrConflict
			}
			stored = *a
			return nil
		})
	f.recorder.EXPECT().Record(mock.Anything, mock.Anything).
		Return(&domain.AuditEntry{ID: "audit-1"}, nil)

	ctx := context.Background()

	created, err := f.svc.CreateArticle(ctx, author.ID, validator.CreateArticleInput{
		Title: "Launch Notes",
		Body:  "First cut.",
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusDraft, created.Status)

	submitted, err := f.svc.SubmitArticle(ctx, author.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPendingReview, submitted.Status)

	notes := "needs a second section"
	rejected, err := f.svc.ReviewArticle(ctx, admin.ID, created.ID, service.ReviewInput{
		Decision: domain.StatusRejected,
		Notes:    &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, rejected.Status)

	body := "First cut, now with a second section."
	revised, err := f.svc.UpdateArticle(ctx, author.ID, created.ID, domain.ArticlePatch{Body: &body})
	require.NoError(t, err)
	assert.Equal(t, body, revised.Body)

	resubmitted, err := f.svc.SubmitArticle(ctx, author.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPendingReview, resubmitted.Status)
	// The rejection stays on the record until the next review.
	require.NotNil(t, resubmitted.ReviewNotes)
	assert.Equal(t, notes, *resubmitted.ReviewNotes)

	approved, err := f.svc.ReviewArticle(ctx, admin.ID, created.ID, service.ReviewInput{
		Decision: domain.StatusApproved,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, approved.Status)
	require.NotNil(t, approved.ReviewerID)
	assert.Equal(t, admin.ID, *approved.ReviewerID)
	assert.Nil(t, approved.ReviewNotes)

	published, err := f.svc.PublishArticle(ctx, admin.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPublished, published.Status)
	require.NotNil(t, published.PublishedAt)

	// Published is terminal.
	_, err = f.svc.SubmitArticle(ctx, author.ID, created.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}
