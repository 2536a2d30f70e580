package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"editorial-workflow/internal/domain"
	"editorial-workflow/internal/lifecycle"
	"editorial-workflow/internal/logger"
	"editorial-workflow/internal/metrics"
	"editorial-workflow/internal/rbac"
	"editorial-workflow/internal/repository"
	"editorial-workflow/internal/validator"
)

// Workflow orchestrates authorization, the article state machine, and
// the audit log as one unit per operation. Every exposed method follows
// the same protocol: resolve actor, resolve target, authorize, validate
// and apply the transition conditioned on the observed status, persist,
// record an audit entry.
type Workflow struct {
	articles  repository.ArticleRepository
	accounts  repository.AccountRepository
	validator *validator.Validator
	recorder  AuditRecorder
	auditLog  repository.AuditRepository

	auditListCap int
	now          func() time.Time
}

// NewWorkflow creates the workflow service.
func NewWorkflow(
	articles repository.ArticleRepository,
	accounts repository.AccountRepository,
	auditLog repository.AuditRepository,
	recorder AuditRecorder,
	v *validator.Validator,
	auditListCap int,
) *Workflow {
	if auditListCap < 1 {
		auditListCap = repository.DefaultAuditListLimit
	}
	return &Workflow{
		articles:     articles,
		accounts:     accounts,
		auditLog:     auditLog,
		recorder:     recorder,
		validator:    v,
		auditListCap: auditListCap,
		now:          time.Now,
	}
}

var _ WorkflowService = (*Workflow)(nil)

// resolveActor loads the acting account. An empty or unknown actor id
// means the call is unauthenticated, not a missing resource.
func (s *Workflow) resolveActor(ctx context.Context, actorID string) (*domain.Account, error) {
	if actorID == "" {
		return nil, domain.ErrUnauthenticated
	}
	actor, err := s.accounts.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("resolve actor: %w", err)
	}
	return actor, nil
}

// CreateArticle creates a new draft owned by the actor.
func (s *Workflow) CreateArticle(ctx context.Context, actorID string, in validator.CreateArticleInput) (*domain.Article, error) {
	timer := metrics.NewTimer()
	action := domain.ActionCreateArticle

	actor, err := s.resolveActor(ctx, actorID)
	if err != nil {
		return nil, s.observe(action, timer, err)
	}

	if !rbac.CanPerform(actor, action, nil) {
		return nil, s.observe(action, timer, domain.ErrForbidden)
	}

	if err := s.validator.ValidateCreateArticle(&in); err != nil {
		return nil, s.observe(action, timer, err)
	}

	article := lifecycle.NewArticle(uuid.New().String(), actor.ID, in.Title, in.Body, in.Excerpt, in.Tags, s.now())
	if err := s.articles.Create(ctx, &article); err != nil {
		return nil, s.observe(action, timer, err)
	}

	return &article, s.observe(action, timer, s.audit(ctx, actor.ID, action, &article, nil))
}

// GetArticle fetches one article with read authorization applied.
func (s *Workflow) GetArticle(ctx context.Context, actorID, articleID string) (*domain.Article, error) {
	actor, err := s.resolveActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	article, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	if !rbac.CanPerform(actor, domain.ActionReadArticle, article) {
		return nil, domain.ErrForbidden
	}
	return article, nil
}

// UpdateArticle patches an editable article's content fields.
func (s *Workflow) UpdateArticle(ctx context.Context, actorID, articleID string, patch domain.ArticlePatch) (*domain.Article, error) {
	timer := metrics.NewTimer()
	action := domain.ActionUpdateArticle

	if err := s.validator.ValidateArticlePatch(&patch); err != nil {
		return nil, s.observe(action, timer, err)
	}

	article, err := s.mutate(ctx, actorID, articleID, action,
		func(a domain.Article) (domain.Article, error) {
			return lifecycle.ApplyPatch(a, patch, s.now())
		},
		map[string]string{"fields": patchFields(patch)})
	if err != nil && article == nil {
		return nil, s.observe(action, timer, err)
	}
	return article, s.observe(action, timer, err)
}

// SubmitArticle moves a draft or rejected article into review.
func (s *Workflow) SubmitArticle(ctx context.Context, actorID, articleID string) (*domain.Article, error) {
	timer := metrics.NewTimer()
	action := domain.ActionSubmitArticle

	article, err := s.mutate(ctx, actorID, articleID, action,
		func(a domain.Article) (domain.Article, error) {
			return lifecycle.ApplySubmit(a, s.now())
		}, nil)
	if err != nil && article == nil {
		return nil, s.observe(action, timer, err)
	}
	return article, s.observe(action, timer, err)
}

// ReviewArticle records an admin's approve or reject verdict on a
// pending article.
func (s *Workflow) ReviewArticle(ctx context.Context, actorID, articleID string, review ReviewInput) (*domain.Article, error) {
	timer := metrics.NewTimer()

	var action domain.Action
	switch review.Decision {
	case domain.StatusApproved:
		action = domain.ActionApproveArticle
	case domain.StatusRejected:
		action = domain.ActionRejectArticle
	default:
		// Neither an approval nor a rejection; the metric gets a neutral
		// label instead of misattributing the failure to one of them.
		err := domain.NewValidationError("decision", "decision_must_be_approved_or_rejected")
		metrics.ObserveOperation("article_review", outcome(err), timer.Seconds())
		return nil, err
	}

	details := map[string]string{}
	if review.Notes != nil {
		details["notes"] = *review.Notes
	}

	article, err := s.mutate(ctx, actorID, articleID, action,
		func(a domain.Article) (domain.Article, error) {
			return lifecycle.ApplyReview(a, lifecycle.ReviewDecision{
				ReviewerID: actorID,
				Approved:   review.Decision == domain.StatusApproved,
				Notes:      review.Notes,
			}, s.now())
		}, details)
	if err != nil && article == nil {
		return nil, s.observe(action, timer, err)
	}
	return article, s.observe(action, timer, err)
}

// PublishArticle publishes an approved article. PublishedAt is set on
// the first publish and immutable afterwards.
func (s *Workflow) PublishArticle(ctx context.Context, actorID, articleID string) (*domain.Article, error) {
	timer := metrics.NewTimer()
	action := domain.ActionPublishArticle

	article, err := s.mutate(ctx, actorID, articleID, action,
		func(a domain.Article) (domain.Article, error) {
			return lifecycle.ApplyPublish(a, s.now())
		}, nil)
	if err != nil && article == nil {
		return nil, s.observe(action, timer, err)
	}
	return article, s.observe(action, timer, err)
}

// DeleteArticle removes an editable article.
func (s *Workflow) DeleteArticle(ctx context.Context, actorID, articleID string) error {
	timer := metrics.NewTimer()
	action := domain.ActionDeleteArticle

	actor, err := s.resolveActor(ctx, actorID)
	if err != nil {
		return s.observe(action, timer, err)
	}

	article, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		return s.observe(action, timer, err)
	}

	if !rbac.CanPerform(actor, action, article) {
		return s.observe(action, timer, domain.ErrForbidden)
	}

	if err := lifecycle.CanDelete(article.Status); err != nil {
		return s.observe(action, timer, err)
	}

	// Conditioned on the status we just observed: if a reviewer moves the
	// article before the delete lands, the delete loses with a conflict.
	if err := s.articles.DeleteConditional(ctx, article.ID, article.Status); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			metrics.TransitionConflicts.Inc()
		}
		return s.observe(action, timer, err)
	}

	return s.observe(action, timer, s.audit(ctx, actor.ID, action, article, map[string]string{"slug": article.Slug}))
}

// ListArticles returns articles visible to the actor. Authors are
// implicitly scoped to their own articles when no author filter is set.
func (s *Workflow) ListArticles(ctx context.Context, actorID string, filter domain.ArticleFilter) ([]domain.Article, error) {
	actor, err := s.resolveActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if !actor.Role.AtLeast(domain.RoleAdmin) && filter.AuthorID == nil {
		filter.AuthorID = &actor.ID
	}

	if !rbac.CanList(actor, filter) {
		return nil, domain.ErrForbidden
	}

	return s.articles.List(ctx, filter)
}

// UpdateAccountRole changes another account's role. SuperAdmin only.
func (s *Workflow) UpdateAccountRole(ctx context.Context, actorID, accountID string, role domain.Role) (*domain.Account, error) {
	timer := metrics.NewTimer()
	action := domain.ActionUpdateRole

	actor, err := s.resolveActor(ctx, actorID)
	if err != nil {
		return nil, s.observe(action, timer, err)
	}

	if !rbac.CanPerform(actor, action, nil) {
		return nil, s.observe(action, timer, domain.ErrForbidden)
	}

	if err := s.validator.ValidateRole(role); err != nil {
		return nil, s.observe(action, timer, err)
	}

	target, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, s.observe(action, timer, err)
	}

	// Conditioned on the role we just observed: if another super admin
	// changes it first, this change loses with a conflict.
	account, err := s.accounts.UpdateRole(ctx, accountID, role, target.Role)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			logger.WithActor(actor.ID).Warn("role change lost to concurrent writer",
				slog.String("account_id", accountID),
				slog.String("observed_role", string(target.Role)))
		}
		return nil, s.observe(action, timer, err)
	}

	draft := domain.AuditEntryDraft{
		ActorID:      actor.ID,
		Action:       action,
		ResourceType: domain.ResourceTypeAccount,
		ResourceID:   &account.ID,
		Details: map[string]string{
			"old_role": string(target.Role),
			"new_role": string(role),
		},
	}
	_, auditErr := s.recorder.Record(ctx, draft)
	return account, s.observe(action, timer, auditErr)
}

// ListAuditEntries returns audit log entries, most recent first.
// SuperAdmin only.
func (s *Workflow) ListAuditEntries(ctx context.Context, actorID string, filter domain.AuditFilter, limit int) ([]domain.AuditEntry, error) {
	actor, err := s.resolveActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if !rbac.CanPerform(actor, domain.ActionReadAuditLog, nil) {
		return nil, domain.ErrForbidden
	}

	if limit <= 0 || limit > s.auditListCap {
		limit = s.auditListCap
	}
	return s.auditLog.List(ctx, filter, limit)
}

// mutate runs the shared transition protocol: resolve actor and target,
// authorize, apply the pure transition against the observed status, and
// persist through the conditional update. apply receives a copy; the
// stored record is untouched unless the conditional write succeeds.
func (s *Workflow) mutate(
	ctx context.Context,
	actorID, articleID string,
	action domain.Action,
	apply func(domain.Article) (domain.Article, error),
	details map[string]string,
) (*domain.Article, error) {
	actor, err := s.resolveActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	article, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	if !rbac.CanPerform(actor, action, article) {
		return nil, domain.ErrForbidden
	}

	observed := article.Status
	updated, err := apply(*article)
	if err != nil {
		return nil, err
	}

	if err := s.articles.UpdateConditional(ctx, &updated, observed); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			metrics.TransitionConflicts.Inc()
			logger.WithArticle(articleID).Warn("transition lost to concurrent writer",
				slog.String("actor_id", actor.ID),
				slog.String("action", string(action)),
				slog.String("observed_status", string(observed)))
		}
		return nil, err
	}

	return &updated, s.audit(ctx, actor.ID, action, &updated, details)
}

// audit records the entry for a committed mutation. The returned error
// is nil or a non-fatal *domain.AuditWriteError.
func (s *Workflow) audit(ctx context.Context, actorID string, action domain.Action, article *domain.Article, details map[string]string) error {
	if details == nil {
		details = map[string]string{}
	}
	details["status"] = string(article.Status)

	draft := domain.AuditEntryDraft{
		ActorID:      actorID,
		Action:       action,
		ResourceType: domain.ResourceTypeArticle,
		ResourceID:   &article.ID,
		Details:      details,
	}
	_, err := s.recorder.Record(ctx, draft)
	return err
}

// observe maps err onto an outcome label, records the operation metric,
// and passes err through unchanged.
func (s *Workflow) observe(action domain.Action, timer *metrics.Timer, err error) error {
	metrics.ObserveOperation(string(action), outcome(err), timer.Seconds())
	return err
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, domain.ErrAuditWrite):
		return metrics.OutcomeSuccessAuditFailed
	case errors.Is(err, domain.ErrUnauthenticated):
		return metrics.OutcomeUnauthenticated
	case errors.Is(err, domain.ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, domain.ErrForbidden):
		return metrics.OutcomeForbidden
	case errors.Is(err, domain.ErrInvalidTransition):
		return metrics.OutcomeInvalidTransition
	case errors.Is(err, domain.ErrConflict):
		return metrics.OutcomeConflict
	case domain.IsValidation(err):
		return metrics.OutcomeValidationError
	default:
		return metrics.OutcomeError
	}
}

func patchFields(patch domain.ArticlePatch) string {
	fields := ""
	add := func(name string) {
		if fields != "" {
			fields += ","
		}
		fields += name
	}
	if patch.Title != nil {
		add("title")
	}
	if patch.Body != nil {
		add("body")
	}
	if patch.Excerpt != nil {
		add("excerpt")
	}
	if patch.Tags != nil {
		add("tags")
	}
	return fields
}
