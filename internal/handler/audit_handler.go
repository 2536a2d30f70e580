package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"editorial-workflow/internal/domain"
	"editorial-workflow/internal/middleware"
	"editorial-workflow/internal/service"
)

// AuditHandler handles audit log HTTP requests.
type AuditHandler struct {
	workflow service.WorkflowService
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(workflow service.WorkflowService) *AuditHandler {
	return &AuditHandler{workflow: workflow}
}

// AuditEntryResponse represents one audit log entry in the API response.
type AuditEntryResponse struct {
	ID           string            `json:"id"`
	Seq          int64             `json:"seq"`
	ActorID      string            `json:"actor_id"`
	Action       string            `json:"action"`
	ResourceType string            `json:"resource_type"`
	ResourceID   *string           `json:"resource_id,omitempty"`
	Details      map[string]string `json:"details,omitempty"`
	CreatedAt    string            `json:"created_at"`
}

func toAuditEntryResponse(e *domain.AuditEntry) AuditEntryResponse {
	return AuditEntryResponse{
		ID:           e.ID,
		Seq:          e.Seq,
		ActorID:      e.ActorID,
		Action:       string(e.Action),
		ResourceType: e.ResourceType,
		ResourceID:   e.ResourceID,
		Details:      e.Details,
		CreatedAt:    e.CreatedAt.Format(TimeFormat),
	}
}

// ListAuditEntries handles GET /api/v1/audit
func (h *AuditHandler) ListAuditEntries(c *gin.Context) {
	var filter domain.AuditFilter
	if actorID := c.Query("actor_id"); actorID != "" {
		if _, err := uuid.Parse(actorID); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "actor_id must be a valid UUID"})
			return
		}
		filter.ActorID = &actorID
	}
	if resourceType := c.Query("resource_type"); resourceType != "" {
		filter.ResourceType = &resourceType
	}
	if since := c.Query("since"); since != "" {
		ts, err := time.Parse(time.RFC3339, since)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "since must be an RFC3339 timestamp"})
			return
		}
		filter.Since = &ts
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	entries, err := h.workflow.ListAuditEntries(c.Request.Context(), middleware.GetActorID(c), filter, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	responses := make([]AuditEntryResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, toAuditEntryResponse(&entries[i]))
	}
	c.JSON(http.StatusOK, gin.H{"entries": responses, "count": len(responses)})
}
