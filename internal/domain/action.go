package domain

// Action identifies a workflow operation for authorization checks and
// audit records.
type Action string

const (
	ActionCreateArticle  Action = "article_created"
	ActionUpdateArticle  Action = "article_updated"
	ActionDeleteArticle  Action = "article_deleted"
	ActionSubmitArticle  Action = "article_submitted"
	ActionApproveArticle Action = "article_approved"
	ActionRejectArticle  Action = "article_rejected"
	ActionPublishArticle Action = "article_published"
	ActionReadArticle    Action = "article_read"
	ActionUpdateRole     Action = "account_role_updated"
	ActionReadAuditLog   Action = "audit_log_read"
)
