// Package lifecycle enforces the article state machine. It is pure:
// validation and application compute new article values without touching
// storage, so the repository layer can commit them atomically.
package lifecycle

import (
	"fmt"
	"time"

	"editorial-workflow/internal/domain"
)

// transitions maps (current status, action) to the resulting status.
// Any pair absent from the table is an invalid transition. Published has
// no outgoing edges.
var transitions = map[domain.Status]map[domain.Action]domain.Status{
	domain.StatusDraft: {
		domain.ActionSubmitArticle: domain.StatusPendingReview,
		domain.ActionUpdateArticle: domain.StatusDraft,
		domain.ActionDeleteArticle: domain.StatusDraft,
	},
	domain.StatusRejected: {
		domain.ActionSubmitArticle: domain.StatusPendingReview,
		domain.ActionUpdateArticle: domain.StatusRejected,
		domain.ActionDeleteArticle: domain.StatusRejected,
	},
	domain.StatusPendingReview: {
		domain.ActionApproveArticle: domain.StatusApproved,
		domain.ActionRejectArticle:  domain.StatusRejected,
	},
	domain.StatusApproved: {
		domain.ActionPublishArticle: domain.StatusPublished,
	},
}

// Next returns the status an article moves to when action is applied
// from the given status. It returns ErrInvalidTransition when the edge
// is not in the table.
func Next(from domain.Status, action domain.Action) (domain.Status, error) {
	if to, ok := transitions[from][action]; ok {
		return to, nil
	}
	return "", fmt.Errorf("%w: cannot %s from %s", domain.ErrInvalidTransition, action, from)
}

// ReviewDecision captures an admin's verdict on a pending article.
type ReviewDecision struct {
	ReviewerID string
	Approved   bool
	Notes      *string
}

// ApplySubmit computes the submitted form of a draft or rejected
// article. Prior reviewer and notes are retained as history on
// resubmission; they are replaced only by the next review.
func ApplySubmit(a domain.Article, now time.Time) (domain.Article, error) {
	next, err := Next(a.Status, domain.ActionSubmitArticle)
	if err != nil {
		return domain.Article{}, err
	}
	a.Status = next
	a.UpdatedAt = now
	return a, nil
}

// ApplyReview computes the reviewed form of a pending article, recording
// the reviewer and their notes.
func ApplyReview(a domain.Article, decision ReviewDecision, now time.Time) (domain.Article, error) {
	action := domain.ActionRejectArticle
	if decision.Approved {
		action = domain.ActionApproveArticle
	}
	next, err := Next(a.Status, action)
	if err != nil {
		return domain.Article{}, err
	}
	a.Status = next
	a.ReviewerID = &decision.ReviewerID
	a.ReviewNotes = decision.Notes
	a.UpdatedAt = now
	return a, nil
}

// ApplyPublish computes the published form of an approved article.
// PublishedAt is set on first publish only and never changes afterwards;
// since Published is terminal the first publish is the only one.
func ApplyPublish(a domain.Article, now time.Time) (domain.Article, error) {
	next, err := Next(a.Status, domain.ActionPublishArticle)
	if err != nil {
		return domain.Article{}, err
	}
	a.Status = next
	if a.PublishedAt == nil {
		publishedAt := now
		a.PublishedAt = &publishedAt
	}
	a.UpdatedAt = now
	return a, nil
}

// ApplyPatch computes the edited form of a draft or rejected article.
// Only content fields change; the status stays where it is.
func ApplyPatch(a domain.Article, patch domain.ArticlePatch, now time.Time) (domain.Article, error) {
	if _, err := Next(a.Status, domain.ActionUpdateArticle); err != nil {
		return domain.Article{}, err
	}
	if patch.Title != nil {
		a.Title = *patch.Title
	}
	if patch.Body != nil {
		a.Body = *patch.Body
	}
	if patch.Excerpt != nil {
		a.Excerpt = patch.Excerpt
	}
	if patch.Tags != nil {
		a.Tags = *patch.Tags
	}
	a.UpdatedAt = now
	return a, nil
}

// CanDelete reports whether an article in the given status may be
// removed. Deletion follows the same edit window as updates.
func CanDelete(status domain.Status) error {
	_, err := Next(status, domain.ActionDeleteArticle)
	return err
}

// NewArticle constructs a fresh draft owned by authorID. The slug is
// derived from the title; uniqueness is the repository's concern.
func NewArticle(id, authorID, title, body string, excerpt *string, tags []string, now time.Time) domain.Article {
	return domain.Article{
		ID:        id,
		Slug:      domain.Slugify(title),
		Title:     title,
		Body:      body,
		Excerpt:   excerpt,
		Tags:      tags,
		AuthorID:  authorID,
		Status:    domain.StatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
