package mocks

import (
	"context"

	"github.com/forkcast/backend/internal/model"
)

// Engine is an in-memory search.Engine for tests. MultiMatch replays
// the configured hits (duplicates and all) so callers' deduplication
// can be exercised, and lookups resolve against Recipes.
type Engine struct {
	MultiMatchHits []*model.Recipe
	MultiMatchErr  error
	Recipes        map[int64]*model.Recipe

	LastQuery  string
	LastFields []string
	LastLimit  int
}

func (e *Engine) MultiMatch(ctx context.Context, fields []string, text string, limit int) ([]*model.Recipe, error) {
	e.LastQuery = text
	e.LastFields = fields
	e.LastLimit = limit
	if e.MultiMatchErr != nil {
		return nil, e.MultiMatchErr
	}
	hits := e.MultiMatchHits
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

func (e *Engine) TermLookup(ctx context.Context, field string, value any) (*model.Recipe, error) {
	id, ok := value.(int64)
	if !ok {
		return nil, nil
	}
	return e.Recipes[id], nil
}

func (e *Engine) TermsLookup(ctx context.Context, field string, values []int64) ([]*model.Recipe, error) {
	var hits []*model.Recipe
	for _, id := range values {
		if r, ok := e.Recipes[id]; ok {
			hits = append(hits, r)
		}
	}
	return hits, nil
}
