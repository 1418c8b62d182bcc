package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionPG_Get(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionPG(db)
	ctx := context.Background()

	sessionID := fmt.Sprintf("test-session-%d", time.Now().UnixNano())

	s, err := repo.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, sessionID, s.ID)
	assert.Equal(t, 0, s.NumVisits, "unknown sessions start at zero")
	assert.True(t, s.LastUsedAt.IsZero())

	require.NoError(t, repo.SetVisits(ctx, sessionID, 3))
	s, err = repo.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, 3, s.NumVisits)
	assert.False(t, s.CreatedAt.IsZero())
	assert.False(t, s.LastUsedAt.IsZero())
}

func TestSessionPG_CleanupExpired(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionPG(db)
	ctx := context.Background()

	staleID := fmt.Sprintf("test-session-stale-%d", time.Now().UnixNano())
	freshID := fmt.Sprintf("test-session-fresh-%d", time.Now().UnixNano())

	_, err := db.Exec(ctx, `
		INSERT INTO sessions (id, num_visits, last_used_at)
		VALUES ($1, 1, now() - interval '31 days')
	`, staleID)
	require.NoError(t, err)
	require.NoError(t, repo.SetVisits(ctx, freshID, 1))

	require.NoError(t, repo.CleanupExpired(ctx))

	stale, err := repo.Get(ctx, staleID)
	require.NoError(t, err)
	assert.Equal(t, 0, stale.NumVisits, "idle sessions past 30 days are dropped")

	fresh, err := repo.Get(ctx, freshID)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.NumVisits, "recently used sessions survive cleanup")
}
