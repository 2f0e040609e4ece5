package service

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/google/uuid"

	"github.com/forkcast/backend/internal/model"
	"github.com/forkcast/backend/internal/search"
)

// DefaultTopK is the recommendation list length when the caller does
// not ask for a specific one.
const DefaultTopK = 10

// ScoredRecipe pairs a catalog id with its predicted rating.
type ScoredRecipe struct {
	RecipeID int64   `json:"recipe_id"`
	Score    float64 `json:"predicted_rating"`
}

// RankedRecipe is one rehydrated recommendation.
type RankedRecipe struct {
	*model.Recipe
	PredictedRating float64 `json:"predicted_rating"`
}

// Recommender serves personalized top-K lists. The whole catalog is
// scored once at construction time, since the same catalog scores
// identically for every user, and each request only excludes the
// user's held set, sorts, truncates and rehydrates. The score table is
// immutable after construction, so one Recommender is safe for
// concurrent requests.
type Recommender struct {
	engine    search.Engine
	bookmarks *BookmarkService
	scores    []ScoredRecipe // catalog order
}

// NewRecommender batch-scores catalog with the loaded model. The
// preprocessor validates every row, so an unknown category anywhere in
// the catalog fails construction rather than surfacing per request.
func NewRecommender(engine search.Engine, bookmarks *BookmarkService, pre *Preprocessor, m *RegressionModel, catalog []*model.Recipe) (*Recommender, error) {
	features, err := pre.Transform(catalog)
	if err != nil {
		return nil, fmt.Errorf("preprocessing catalog: %w", err)
	}
	predictions := m.Predict(features)

	scores := make([]ScoredRecipe, len(catalog))
	for i, r := range catalog {
		scores[i] = ScoredRecipe{RecipeID: r.RecipeID, Score: predictions[i]}
	}
	log.Printf("Scored %d catalog recipes", len(scores))
	return &Recommender{engine: engine, bookmarks: bookmarks, scores: scores}, nil
}

// Recommend returns up to topK recipes the user has not bookmarked,
// highest predicted rating first. Equal scores keep catalog order
// (stable sort, no secondary key). Results are rehydrated through the
// search engine in one batch lookup and their images cleaned.
func (r *Recommender) Recommend(ctx context.Context, userID uuid.UUID, topK int) ([]RankedRecipe, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}

	held, err := r.bookmarks.HeldRecipeIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading held set: %w", err)
	}

	candidates := make([]ScoredRecipe, 0, len(r.scores))
	for _, s := range r.scores {
		if _, ok := held[s.RecipeID]; ok {
			continue
		}
		candidates = append(candidates, s)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > topK {
		candidates = candidates[:topK]
	}
	if len(candidates) == 0 {
		return []RankedRecipe{}, nil
	}

	ids := make([]int64, len(candidates))
	for i, c := range candidates {
		ids[i] = c.RecipeID
	}
	hits, err := r.engine.TermsLookup(ctx, search.FieldRecipeID, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*model.Recipe, len(hits))
	for _, h := range hits {
		byID[h.RecipeID] = h
	}

	ranked := make([]RankedRecipe, 0, len(candidates))
	for _, c := range candidates {
		recipe, ok := byID[c.RecipeID]
		if !ok {
			return nil, fmt.Errorf("%w: id %d", ErrRecipeNotFound, c.RecipeID)
		}
		recipe.Images = CleanImageRef(recipe.Images)
		ranked = append(ranked, RankedRecipe{Recipe: recipe, PredictedRating: c.Score})
	}
	return ranked, nil
}
