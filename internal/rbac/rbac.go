// Package rbac implements the capability matrix gating every workflow
// operation. Checks are pure and side-effect free; they are evaluated
// before any mutation and never consult storage themselves.
package rbac

import "editorial-workflow/internal/domain"

// CanPerform reports whether actor may perform action, optionally
// against a target article. The matrix:
//
//   - Author: create articles; read, update, delete and submit own
//     articles.
//   - Admin: everything an Author can do on any article, plus approve,
//     reject and publish.
//   - SuperAdmin: everything an Admin can do, plus change account roles
//     and read the audit log.
//
// CanPerform answers only whether this actor is allowed to try; whether
// the article's current status permits the move is the lifecycle
// package's concern, so an admin approving a draft is authorized here
// and rejected there as an invalid transition.
func CanPerform(actor *domain.Account, action domain.Action, target *domain.Article) bool {
	if actor == nil {
		return false
	}

	switch action {
	case domain.ActionCreateArticle:
		return actor.Role.AtLeast(domain.RoleAuthor)

	case domain.ActionReadArticle:
		if actor.Role.AtLeast(domain.RoleAdmin) {
			return true
		}
		return target != nil && target.AuthorID == actor.ID

	case domain.ActionUpdateArticle, domain.ActionDeleteArticle, domain.ActionSubmitArticle:
		if target == nil {
			return false
		}
		if actor.Role.AtLeast(domain.RoleAdmin) {
			return true
		}
		return target.AuthorID == actor.ID

	case domain.ActionApproveArticle, domain.ActionRejectArticle, domain.ActionPublishArticle:
		return actor.Role.AtLeast(domain.RoleAdmin)

	case domain.ActionUpdateRole, domain.ActionReadAuditLog:
		return actor.Role.AtLeast(domain.RoleSuperAdmin)
	}

	return false
}

// CanList reports whether actor may see articles matching filter.
// Authors may only list their own; Admin and above may list anything.
func CanList(actor *domain.Account, filter domain.ArticleFilter) bool {
	if actor == nil {
		return false
	}
	if actor.Role.AtLeast(domain.RoleAdmin) {
		return true
	}
	return filter.AuthorID != nil && *filter.AuthorID == actor.ID
}
