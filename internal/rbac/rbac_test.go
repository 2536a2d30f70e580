package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"editorial-workflow/internal/domain"
)

var (
	author = &domain.Account{ID: "author-1", Role: domain.RoleAuthor}
	other  = &domain.Account{ID: "author-2", Role: domain.RoleAuthor}
	admin  = &domain.Account{ID: "admin-1", Role: domain.RoleAdmin}
	super  = &domain.Account{ID: "super-1", Role: domain.RoleSuperAdmin}
)

func ownArticle(status domain.Status) *domain.Article {
	return &domain.Article{ID: "article-1", AuthorID: "author-1", Status: status}
}

func TestCanPerform_Matrix(t *testing.T) {
	draft := ownArticle(domain.StatusDraft)
	pending := ownArticle(domain.StatusPendingReview)

	tests := []struct {
		name    string
		actor   *domain.Account
		action  domain.Action
		target  *domain.Article
		allowed bool
	}{
		{"nil actor denied", nil, domain.ActionCreateArticle, nil, false},
		{"author creates", author, domain.ActionCreateArticle, nil, true},
		{"author reads own", author, domain.ActionReadArticle, draft, true},
		{"author reads own published", author, domain.ActionReadArticle, ownArticle(domain.StatusPublished), true},
		{"author cannot read others", other, domain.ActionReadArticle, draft, false},
		{"admin reads any", admin, domain.ActionReadArticle, draft, true},
		{"author updates own", author, domain.ActionUpdateArticle, draft, true},
		{"author cannot update others", other, domain.ActionUpdateArticle, draft, false},
		{"author deletes own", author, domain.ActionDeleteArticle, draft, true},
		{"author cannot delete others", other, domain.ActionDeleteArticle, draft, false},
		{"author submits own", author, domain.ActionSubmitArticle, draft, true},
		{"author cannot submit others", other, domain.ActionSubmitArticle, draft, false},
		{"update without target denied", author, domain.ActionUpdateArticle, nil, false},
		{"admin updates any", admin, domain.ActionUpdateArticle, draft, true},
		{"author cannot approve", author, domain.ActionApproveArticle, pending, false},
		{"author cannot reject own", author, domain.ActionRejectArticle, pending, false},
		{"author cannot publish", author, domain.ActionPublishArticle, ownArticle(domain.StatusApproved), false},
		{"admin approves", admin, domain.ActionApproveArticle, pending, true},
		{"admin rejects", admin, domain.ActionRejectArticle, pending, true},
		{"admin publishes", admin, domain.ActionPublishArticle, ownArticle(domain.StatusApproved), true},
		{"admin cannot change roles", admin, domain.ActionUpdateRole, nil, false},
		{"admin cannot read audit log", admin, domain.ActionReadAuditLog, nil, false},
		{"superadmin changes roles", super, domain.ActionUpdateRole, nil, true},
		{"superadmin reads audit log", super, domain.ActionReadAuditLog, nil, true},
		{"superadmin approves", super, domain.ActionApproveArticle, pending, true},
		{"unknown action denied", super, domain.Action("drop_tables"), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanPerform(tt.actor, tt.action, tt.target))
		})
	}
}

func TestCanList(t *testing.T) {
	own := "author-1"
	foreign := "author-2"

	tests := []struct {
		name    string
		actor   *domain.Account
		filter  domain.ArticleFilter
		allowed bool
	}{
		{"nil actor denied", nil, domain.ArticleFilter{}, false},
		{"author lists own", author, domain.ArticleFilter{AuthorID: &own}, true},
		{"author cannot list all", author, domain.ArticleFilter{}, false},
		{"author cannot list others", author, domain.ArticleFilter{AuthorID: &foreign}, false},
		{"admin lists all", admin, domain.ArticleFilter{}, true},
		{"admin lists anyone", admin, domain.ArticleFilter{AuthorID: &foreign}, true},
		{"superadmin lists all", super, domain.ArticleFilter{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanList(tt.actor, tt.filter))
		})
	}
}
