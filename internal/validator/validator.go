package validator

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"editorial-workflow/internal/domain"
)

var (
	slugRegex  = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	validRoles = []interface{}{domain.RoleAuthor, domain.RoleAdmin, domain.RoleSuperAdmin}
)

// CreateArticleInput carries the fields for a new draft.
type CreateArticleInput struct {
	Title   string
	Body    string
	Excerpt *string
	Tags    []string
}

// Validator provides validation methods for workflow inputs.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreateArticle validates input for article creation. The
// derived slug must be non-empty, which rules out titles made entirely
// of punctuation.
func (v *Validator) ValidateCreateArticle(in *CreateArticleInput) error {
	err := validation.ValidateStruct(in,
		validation.Field(&in.Title,
			validation.Required.Error("title_required"),
			validation.Length(1, 200).Error("title_too_long"),
		),
		validation.Field(&in.Body,
			validation.Required.Error("body_required"),
		),
	)
	if err != nil {
		return toDomainError(err)
	}

	if !slugRegex.MatchString(domain.Slugify(in.Title)) {
		return domain.NewValidationError("title", "title_yields_empty_slug")
	}

	return nil
}

// ValidateArticlePatch validates an update to an editable article.
func (v *Validator) ValidateArticlePatch(patch *domain.ArticlePatch) error {
	err := validation.ValidateStruct(patch,
		validation.Field(&patch.Title,
			validation.NilOrNotEmpty.Error("title_empty"),
			validation.Length(1, 200).Error("title_too_long"),
		),
		validation.Field(&patch.Body,
			validation.NilOrNotEmpty.Error("body_empty"),
		),
	)
	if err != nil {
		return toDomainError(err)
	}

	if patch.Title != nil && !slugRegex.MatchString(domain.Slugify(*patch.Title)) {
		return domain.NewValidationError("title", "title_yields_empty_slug")
	}

	return nil
}

// ValidateAccount validates an account at provisioning time.
func (v *Validator) ValidateAccount(a *domain.Account) error {
	err := validation.ValidateStruct(a,
		validation.Field(&a.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		validation.Field(&a.Role,
			validation.Required.Error("role_required"),
			validation.In(validRoles...).Error("invalid_role"),
		),
	)
	return toDomainError(err)
}

// ValidateRole validates a role value for role-change requests.
func (v *Validator) ValidateRole(role domain.Role) error {
	if !domain.IsValidRole(role) {
		return domain.NewValidationError("role", "invalid_role")
	}
	return nil
}

// toDomainError converts ozzo validation errors into the domain's
// ValidationError so callers only ever match one type.
func toDomainError(err error) error {
	if err == nil {
		return nil
	}

	var ve validation.Errors
	if errors.As(err, &ve) {
		for field, fieldErr := range ve {
			return domain.NewValidationError(field, fieldErr.Error())
		}
	}
	return domain.NewValidationError("input", err.Error())
}
