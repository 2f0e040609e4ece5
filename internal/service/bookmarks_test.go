package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkcast/backend/internal/testhelpers"
)

func TestBookmarkLifecycle(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := NewBookmarkService(db)
	ctx := context.Background()
	userID := uuid.New()

	held, err := svc.HeldRecipeIDs(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, held)

	require.NoError(t, svc.Add(ctx, userID, 7))
	require.NoError(t, svc.Add(ctx, userID, 42))

	held, err = svc.HeldRecipeIDs(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, held, 2)
	assert.Contains(t, held, int64(7))
	assert.Contains(t, held, int64(42))

	require.NoError(t, svc.Remove(ctx, userID, 7))
	held, err = svc.HeldRecipeIDs(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, held, 1)
	assert.NotContains(t, held, int64(7))
}

func TestHeldRecipeIDsScopedToUser(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)
	svc := NewBookmarkService(db)
	ctx := context.Background()

	alice := uuid.New()
	bob := uuid.New()
	require.NoError(t, svc.Add(ctx, alice, 1))
	require.NoError(t, svc.Add(ctx, bob, 2))

	held, err := svc.HeldRecipeIDs(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, held, 1)
	assert.Contains(t, held, int64(1))
}
