package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"editorial-workflow/internal/domain"
	"editorial-workflow/internal/repository"
)

func TestPostgresAuditRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := repository.NewPostgresAuditRepository(tdb.Pool)
	ctx := context.Background()

	appendEntry := func(t *testing.T, actorID string, action domain.Action) *domain.AuditEntry {
		t.Helper()
		resourceID := uuid.New().String()
		entry, err := repo.Append(ctx, domain.AuditEntryDraft{
			ActorID:      actorID,
			Action:       action,
			ResourceType: domain.ResourceTypeArticle,
			ResourceID:   &resourceID,
			Details:      map[string]string{"status": "draft"},
		})
		require.NoError(t, err)
		return entry
	}

	t.Run("Append assigns id, seq and timestamp", func(t *testing.T) {
		tdb.TruncateTables(t, "audit_entries")

		first := appendEntry(t, uuid.New().String(), domain.ActionCreateArticle)
		second := appendEntry(t, uuid.New().String(), domain.ActionSubmitArticle)

		assert.NotEmpty(t, first.ID)
		assert.False(t, first.CreatedAt.IsZero())
		assert.Greater(t, second.Seq, first.Seq, "seq must be monotonically increasing")
	})

	t.Run("List orders by created_at then seq descending", func(t *testing.T) {
		tdb.TruncateTables(t, "audit_entries")

		actor := uuid.New().String()
		// Appended back to back, these share timestamps at coarse clock
		// resolution; seq breaks the ties.
		for i := 0; i < 5; i++ {
			appendEntry(t, actor, domain.ActionUpdateArticle)
		}

		entries, err := repo.List(ctx, domain.AuditFilter{}, 10)
		require.NoError(t, err)
		require.Len(t, entries, 5)

		for i := 1; i < len(entries); i++ {
			prev, cur := entries[i-1], entries[i]
			notAfter := cur.CreatedAt.Before(prev.CreatedAt) || cur.CreatedAt.Equal(prev.CreatedAt)
			assert.True(t, notAfter, "entries must be newest first")
			if cur.CreatedAt.Equal(prev.CreatedAt) {
				assert.Less(t, cur.Seq, prev.Seq, "ties must break on seq")
			}
		}
	})

	t.Run("List clamps limit to the default cap", func(t *testing.T) {
		tdb.TruncateTables(t, "audit_entries")

		actor := uuid.New().String()
		for i := 0; i < repository.DefaultAuditListLimit+5; i++ {
			appendEntry(t, actor, domain.ActionUpdateArticle)
		}

		entries, err := repo.List(ctx, domain.AuditFilter{}, 0)
		require.NoError(t, err)
		assert.Len(t, entries, repository.DefaultAuditListLimit)

		entries, err = repo.List(ctx, domain.AuditFilter{}, repository.DefaultAuditListLimit*2)
		require.NoError(t, err)
		assert.Len(t, entries, repository.DefaultAuditListLimit)

		entries, err = repo.List(ctx, domain.AuditFilter{}, 3)
		require.NoError(t, err)
		assert.Len(t, entries, 3)
	})

	t.Run("List filters by actor, resource type and since", func(t *testing.T) {
		tdb.TruncateTables(t, "audit_entries")

		alice := uuid.New().String()
		bob := uuid.New().String()
		appendEntry(t, alice, domain.ActionCreateArticle)
		appendEntry(t, alice, domain.ActionSubmitArticle)
		appendEntry(t, bob, domain.ActionCreateArticle)

		byActor, err := repo.List(ctx, domain.AuditFilter{ActorID: &alice}, 10)
		require.NoError(t, err)
		assert.Len(t, byActor, 2)

		articleType := domain.ResourceTypeArticle
		byType, err := repo.List(ctx, domain.AuditFilter{ResourceType: &articleType}, 10)
		require.NoError(t, err)
		assert.Len(t, byType, 3)

		future := time.Now().UTC().Add(time.Hour)
		none, err := repo.List(ctx, domain.AuditFilter{Since: &future}, 10)
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}
