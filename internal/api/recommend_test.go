package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkcast/backend/internal/mocks"
	"github.com/forkcast/backend/internal/model"
)

func rankedEngine() *mocks.Engine {
	return &mocks.Engine{Recipes: map[int64]*model.Recipe{
		7: {RecipeID: 7, Name: "Best", Calories: 5},
		3: {RecipeID: 3, Name: "Good", Calories: 4},
		9: {RecipeID: 9, Name: "Fine", Calories: 3},
	}}
}

type recommendationsBody struct {
	Recommendations []struct {
		RecipeID        int64   `json:"recipe_id"`
		PredictedRating float64 `json:"predicted_rating"`
	} `json:"recommendations"`
}

func TestRecommendationsRequireAuth(t *testing.T) {
	r := newTestRouter(t, rankedEngine(), uuid.New())

	w := doRequest(r, http.MethodGet, "/api/v1/recommendations", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, http.MethodGet, "/api/v1/recommendations", "bad")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRecommendationsExcludeBookmarked(t *testing.T) {
	userID := uuid.New()
	r := newTestRouter(t, rankedEngine(), userID)

	w := doRequest(r, http.MethodPost, "/api/v1/recipes/7/bookmark", "token")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, "/api/v1/recommendations", "token")
	require.Equal(t, http.StatusOK, w.Code)

	var body recommendationsBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Recommendations, 2)
	assert.Equal(t, int64(3), body.Recommendations[0].RecipeID)
	assert.Equal(t, int64(9), body.Recommendations[1].RecipeID)
	assert.InDelta(t, 4.0, body.Recommendations[0].PredictedRating, 1e-9)
}

func TestRecommendationsHonorLimit(t *testing.T) {
	r := newTestRouter(t, rankedEngine(), uuid.New())

	w := doRequest(r, http.MethodGet, "/api/v1/recommendations?limit=1", "token")
	require.Equal(t, http.StatusOK, w.Code)

	var body recommendationsBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Recommendations, 1)
	assert.Equal(t, int64(7), body.Recommendations[0].RecipeID)
}

func TestBookmarkRoundTrip(t *testing.T) {
	r := newTestRouter(t, rankedEngine(), uuid.New())

	w := doRequest(r, http.MethodPost, "/api/v1/recipes/3/bookmark", "token")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodDelete, "/api/v1/recipes/3/bookmark", "token")
	assert.Equal(t, http.StatusOK, w.Code)

	// Removed bookmarks stop constraining recommendations.
	w = doRequest(r, http.MethodGet, "/api/v1/recommendations", "token")
	require.Equal(t, http.StatusOK, w.Code)
	var body recommendationsBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Recommendations, 3)
}

func TestBookmarkRejectsBadID(t *testing.T) {
	r := newTestRouter(t, rankedEngine(), uuid.New())

	w := doRequest(r, http.MethodPost, "/api/v1/recipes/pie/bookmark", "token")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
