package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"editorial-workflow/internal/domain"
	"editorial-workflow/internal/middleware"
	"editorial-workflow/internal/mocks"
	"editorial-workflow/internal/service"
)

func newAccountRouter(workflow service.WorkflowService) *gin.Engine {
	handler := NewAccountHandler(workflow)
	router := gin.New()
	api := router.Group("/api/v1", middleware.Actor())
	api.PUT("/accounts/:id/role", handler.UpdateRole)
	return router
}

func TestAccountHandler_UpdateRole(t *testing.T) {
	t.Run("promotes author to admin", func(t *testing.T) {
		workflow := mocks.NewMockWorkflowService(t)
		now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		target := &domain.Account{
			ID:          uuid.New().String(),
			Email:       "writer@example.com",
			DisplayName: "Writer",
			Role:        domain.RoleAdmin,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		workflow.EXPECT().
			UpdateAccountRole(mock.Anything, testActorID, target.ID, domain.RoleAdmin).
			Return(target, nil)

		w := doJSON(t, newAccountRouter(workflow), http.MethodPut, "/api/v1/accounts/"+target.ID+"/role",
			gin.H{"role": "admin"})

		require.Equal(t, http.StatusOK, w.Code)

		var response AccountResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "admin", response.Role)
	})

	t.Run("returns 403 for non super admin", func(t *testing.T) {
		workflow := mocks.NewMockWorkflowService(t)
		id := uuid.New().String()

		workflow.EXPECT().
			UpdateAccountRole(mock.Anything, testActorID, id, domain.RoleSuperAdmin).
			Return(nil, domain.ErrForbidden)

		w := doJSON(t, newAccountRouter(workflow), http.MethodPut, "/api/v1/accounts/"+id+"/role",
			gin.H{"role": "super_admin"})

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("returns 400 for unknown role", func(t *testing.T) {
		workflow := mocks.NewMockWorkflowService(t)
		id := uuid.New().String()

		workflow.EXPECT().
			UpdateAccountRole(mock.Anything, testActorID, id, domain.Role("editor")).
			Return(nil, domain.NewValidationError("role", "unknown_role"))

		w := doJSON(t, newAccountRouter(workflow), http.MethodPut, "/api/v1/accounts/"+id+"/role",
			gin.H{"role": "editor"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects malformed account id", func(t *testing.T) {
		workflow := mocks.NewMockWorkflowService(t)

		w := doJSON(t, newAccountRouter(workflow), http.MethodPut, "/api/v1/accounts/not-a-uuid/role",
			gin.H{"role": "admin"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
