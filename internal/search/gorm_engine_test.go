package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkcast/backend/internal/model"
	"github.com/forkcast/backend/internal/search"
	"github.com/forkcast/backend/internal/testhelpers"
)

func seedCatalog(t *testing.T) *search.GormEngine {
	t.Helper()
	db := testhelpers.SetupSQLiteDB(t)
	recipes := []model.Recipe{
		{RecipeID: 3, Name: "Chicken Soup", Description: "A warming classic"},
		{RecipeID: 1, Name: "Apple Pie", Description: "Sweet pastry with apples", Instructions: "Bake the pie"},
		{RecipeID: 2, Name: "Beef Stew", Description: "Slow cooked beef"},
	}
	require.NoError(t, db.Create(&recipes).Error)
	return search.NewGormEngine(db)
}

func TestMultiMatchMatchesAnyField(t *testing.T) {
	engine := seedCatalog(t)
	ctx := context.Background()

	hits, err := engine.MultiMatch(ctx, []string{search.FieldName, search.FieldDescription}, "APPLE", 50)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, int64(1), hits[0].RecipeID)

	// Description-only match still surfaces the recipe.
	hits, err = engine.MultiMatch(ctx, []string{search.FieldName, search.FieldDescription}, "slow cooked", 50)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, int64(2), hits[0].RecipeID)
}

func TestMultiMatchOrdersByRecipeID(t *testing.T) {
	engine := seedCatalog(t)

	hits, err := engine.MultiMatch(context.Background(), []string{search.FieldName, search.FieldDescription}, "e", 50)
	require.NoError(t, err)
	require.Len(t, hits, 3)
	assert.Equal(t, int64(1), hits[0].RecipeID)
	assert.Equal(t, int64(2), hits[1].RecipeID)
	assert.Equal(t, int64(3), hits[2].RecipeID)
}

func TestMultiMatchHonorsLimit(t *testing.T) {
	engine := seedCatalog(t)

	hits, err := engine.MultiMatch(context.Background(), []string{search.FieldName, search.FieldDescription}, "e", 2)
	require.NoError(t, err)
	assert.Len(t, hits, 2)
}

func TestMultiMatchRejectsUnknownField(t *testing.T) {
	engine := seedCatalog(t)

	_, err := engine.MultiMatch(context.Background(), []string{"embedding"}, "x", 10)
	assert.Error(t, err)
}

func TestTermLookup(t *testing.T) {
	engine := seedCatalog(t)
	ctx := context.Background()

	hit, err := engine.TermLookup(ctx, search.FieldRecipeID, int64(2))
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, "Beef Stew", hit.Name)

	hit, err = engine.TermLookup(ctx, search.FieldRecipeID, int64(999))
	require.NoError(t, err)
	assert.Nil(t, hit)
}

func TestTermsLookupKeepsCallerOrder(t *testing.T) {
	engine := seedCatalog(t)

	hits, err := engine.TermsLookup(context.Background(), search.FieldRecipeID, []int64{2, 999, 1})
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, int64(2), hits[0].RecipeID)
	assert.Equal(t, int64(1), hits[1].RecipeID)
}

func TestTermsLookupEmptyInput(t *testing.T) {
	engine := seedCatalog(t)

	hits, err := engine.TermsLookup(context.Background(), search.FieldRecipeID, nil)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
