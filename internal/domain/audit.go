package domain

import "time"

// AuditEntry is an immutable record of a successful mutating workflow
// operation. Entries are append-only; Seq is a monotonically increasing
// counter that breaks ties between entries created within the same
// clock resolution.
type AuditEntry struct {
	ID           string            `json:"id"`
	Seq          int64             `json:"seq"`
	ActorID      string            `json:"actor_id"`
	Action       Action            `json:"action"`
	ResourceType string            `json:"resource_type"`
	ResourceID   *string           `json:"resource_id,omitempty"`
	Details      map[string]string `json:"details,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}

// AuditEntryDraft is an audit entry before persistence assigns its ID,
// sequence number and timestamp.
type AuditEntryDraft struct {
	ActorID      string
	Action       Action
	ResourceType string
	ResourceID   *string
	Details      map[string]string
}

// AuditFilter narrows audit log listings.
type AuditFilter struct {
	ActorID      *string
	ResourceType *string
	Since        *time.Time
}

// Resource types persisted in audit entries.
const (
	ResourceTypeArticle = "article"
	ResourceTypeAccount = "account"
)
