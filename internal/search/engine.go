package search

import (
	"context"
	"errors"

	"github.com/forkcast/backend/internal/model"
)

// ErrUnavailable wraps any failure talking to the backing index. There
// is no retry policy; callers surface it immediately.
var ErrUnavailable = errors.New("search engine unavailable")

// Queryable field names accepted by MultiMatch.
const (
	FieldName         = "name"
	FieldDescription  = "description"
	FieldInstructions = "instructions"
	FieldRecipeID     = "recipe_id"
)

// Engine is the search collaborator consumed by the pipeline. Hits come
// back as full catalog records in relevance order; the engine itself
// performs no deduplication or image cleanup.
type Engine interface {
	// MultiMatch runs one relevance query for text across the given
	// fields and returns up to limit hits, best first.
	MultiMatch(ctx context.Context, fields []string, text string, limit int) ([]*model.Recipe, error)

	// TermLookup returns the single record whose field equals value, or
	// nil when there is no such record.
	TermLookup(ctx context.Context, field string, value any) (*model.Recipe, error)

	// TermsLookup returns the records whose field is any of values.
	// Order follows values; ids with no record are simply absent.
	TermsLookup(ctx context.Context, field string, values []int64) ([]*model.Recipe, error)
}
