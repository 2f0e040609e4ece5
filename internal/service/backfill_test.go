package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkcast/backend/internal/model"
)

func TestBackfillAssignsNearestNeighborImage(t *testing.T) {
	pie := &model.Recipe{RecipeID: 1, Name: "Apple Pie", Description: "sweet dessert"}
	tart := &model.Recipe{RecipeID: 2, Name: "Apple Tart", Description: "sweet dessert", Images: strp("http://img/tart.jpg")}
	stew := &model.Recipe{RecipeID: 3, Name: "Beef Stew", Description: "savory", Images: strp("http://img/stew.jpg")}

	BackfillImages([]*model.Recipe{pie, tart, stew})

	require.NotNil(t, pie.Images)
	assert.Equal(t, "http://img/tart.jpg", *pie.Images)
}

func TestBackfillNeverTouchesExistingImages(t *testing.T) {
	a := &model.Recipe{RecipeID: 1, Name: "Apple Pie", Images: strp("http://img/pie.jpg")}
	b := &model.Recipe{RecipeID: 2, Name: "Apple Tart", Images: strp("http://img/tart.jpg")}
	c := &model.Recipe{RecipeID: 3, Name: "Apple Cake"}

	BackfillImages([]*model.Recipe{a, b, c})

	assert.Equal(t, "http://img/pie.jpg", *a.Images)
	assert.Equal(t, "http://img/tart.jpg", *b.Images)
	assert.NotNil(t, c.Images)
}

func TestBackfillNoAvailableImagesLeavesBatchUnchanged(t *testing.T) {
	a := &model.Recipe{RecipeID: 1, Name: "Apple Pie"}
	b := &model.Recipe{RecipeID: 2, Name: "Beef Stew"}

	BackfillImages([]*model.Recipe{a, b})

	assert.Nil(t, a.Images)
	assert.Nil(t, b.Images)
}

func TestBackfillNoMissingImagesLeavesBatchUnchanged(t *testing.T) {
	a := &model.Recipe{RecipeID: 1, Name: "Apple Pie", Images: strp("http://img/pie.jpg")}

	BackfillImages([]*model.Recipe{a})

	assert.Equal(t, "http://img/pie.jpg", *a.Images)
}

func TestBackfillCleansAssignedImage(t *testing.T) {
	missing := &model.Recipe{RecipeID: 1, Name: "Apple Pie", Description: "sweet"}
	available := &model.Recipe{RecipeID: 2, Name: "Apple Pie", Description: "sweet", Images: strp(`c("http://img/pie.jpg","http://img/pie2.jpg")`)}

	BackfillImages([]*model.Recipe{missing, available})

	require.NotNil(t, missing.Images)
	assert.Equal(t, "http://img/pie.jpg", *missing.Images)
}

func TestBackfillTieBreaksOnLowestIndex(t *testing.T) {
	// Two identical available recipes: the first one in batch order
	// must win.
	missing := &model.Recipe{RecipeID: 1, Name: "Apple Pie", Description: "sweet"}
	first := &model.Recipe{RecipeID: 2, Name: "Apple Pie", Description: "sweet", Images: strp("http://img/first.jpg")}
	second := &model.Recipe{RecipeID: 3, Name: "Apple Pie", Description: "sweet", Images: strp("http://img/second.jpg")}

	BackfillImages([]*model.Recipe{missing, first, second})

	require.NotNil(t, missing.Images)
	assert.Equal(t, "http://img/first.jpg", *missing.Images)
}

func TestTokenizeLowercasesAndSplitsOnNonAlphanumerics(t *testing.T) {
	assert.Equal(t, []string{"apple", "pie", "no", "2"}, tokenize("Apple-Pie, No.2!"))
}
