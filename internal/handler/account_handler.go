package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"editorial-workflow/internal/domain"
	"editorial-workflow/internal/middleware"
	"editorial-workflow/internal/service"
)

// AccountHandler handles account administration HTTP requests.
type AccountHandler struct {
	workflow service.WorkflowService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(workflow service.WorkflowService) *AccountHandler {
	return &AccountHandler{workflow: workflow}
}

// AccountResponse represents an account in the API response.
type AccountResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	Warning     string `json:"warning,omitempty"`
}

func toAccountResponse(a *domain.Account, warning string) AccountResponse {
	return AccountResponse{
		ID:          a.ID,
		Email:       a.Email,
		DisplayName: a.DisplayName,
		Role:        string(a.Role),
		CreatedAt:   a.CreatedAt.Format(TimeFormat),
		UpdatedAt:   a.UpdatedAt.Format(TimeFormat),
		Warning:     warning,
	}
}

// UpdateRoleRequest is the body for PUT /api/v1/accounts/:id/role.
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// UpdateRole handles PUT /api/v1/accounts/:id/role
func (h *AccountHandler) UpdateRole(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id must be a valid UUID"})
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	account, err := h.workflow.UpdateAccountRole(c.Request.Context(), middleware.GetActorID(c), id, domain.Role(req.Role))
	warning, ok := auditWarning(err)
	if err != nil && !ok {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAccountResponse(account, warning))
}
