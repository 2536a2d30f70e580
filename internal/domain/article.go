package domain

import "time"

// Status is the lifecycle state of an article. Published is terminal.
type Status string

const (
	StatusDraft         Status = "draft"
	StatusPendingReview Status = "pending_review"
	StatusApproved      Status = "approved"
	StatusRejected      Status = "rejected"
	StatusPublished     Status = "published"
)

// ValidStatuses contains all valid article statuses.
var ValidStatuses = []Status{
	StatusDraft,
	StatusPendingReview,
	StatusApproved,
	StatusRejected,
	StatusPublished,
}

// IsValidStatus checks if a status is valid.
func IsValidStatus(status Status) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Article is the workflow subject. Status only changes along the
// transitions enforced by the lifecycle package; AuthorID is immutable
// after creation; PublishedAt is set exactly once, on first publish.
type Article struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	AuthorID    string     `json:"author_id"`
	Status      Status     `json:"status"`
	ReviewerID  *string    `json:"reviewer_id,omitempty"`
	ReviewNotes *string    `json:"review_notes,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Editable reports whether the article is in a state where its author
// may still change or delete it.
func (a *Article) Editable() bool {
	return a.Status == StatusDraft || a.Status == StatusRejected
}

// ArticlePatch carries the content fields an author may change while an
// article is editable. Nil fields are left untouched.
type ArticlePatch struct {
	Title   *string   `json:"title,omitempty"`
	Body    *string   `json:"body,omitempty"`
	Excerpt *string   `json:"excerpt,omitempty"`
	Tags    *[]string `json:"tags,omitempty"`
}

// ArticleFilter narrows article listings.
type ArticleFilter struct {
	AuthorID *string
	Status   *Status
}
