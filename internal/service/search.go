package service

import (
	"context"
	"strings"

	"github.com/forkcast/backend/internal/model"
	"github.com/forkcast/backend/internal/search"
)

// DefaultPageSize is how many hits one search requests from the engine
// when the caller does not say otherwise.
const DefaultPageSize = 50

// searchFields are the catalog fields a free-text query matches
// against.
var searchFields = []string{
	search.FieldName,
	search.FieldDescription,
	search.FieldInstructions,
}

// SearchService runs the query pipeline: spelling normalization, one
// multi-field engine query, first-occurrence deduplication by recipe
// id, and image-reference cleanup.
type SearchService struct {
	engine  search.Engine
	speller *Speller
}

func NewSearchService(engine search.Engine, speller *Speller) *SearchService {
	return &SearchService{engine: engine, speller: speller}
}

// Search corrects query's spelling and returns deduplicated hits in the
// engine's relevance order. The corrected query is returned so callers
// can echo it to the user. A blank query fails with ErrEmptyQuery; zero
// hits is not an error.
func (s *SearchService) Search(ctx context.Context, query string, pageSize int) (string, []*model.Recipe, error) {
	if strings.TrimSpace(query) == "" {
		return "", nil, ErrEmptyQuery
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	corrected := s.speller.Normalize(query)

	hits, err := s.engine.MultiMatch(ctx, searchFields, corrected, pageSize)
	if err != nil {
		return corrected, nil, err
	}

	seen := make(map[int64]bool, len(hits))
	results := make([]*model.Recipe, 0, len(hits))
	for _, hit := range hits {
		if seen[hit.RecipeID] {
			continue
		}
		seen[hit.RecipeID] = true
		if hit.Images != nil && *hit.Images != EmptyImageSentinel {
			hit.Images = CleanImageRef(hit.Images)
		}
		results = append(results, hit)
	}
	return corrected, results, nil
}
