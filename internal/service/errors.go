package service

import "errors"

var (
	// ErrEmptyQuery is returned when the search text is blank after
	// trimming whitespace.
	ErrEmptyQuery = errors.New("empty query")

	// ErrUnknownCategory is returned when a recipe carries a category
	// the encoder never saw at fit time. Scoring such a record would
	// feed the model an input it was never trained on, so it fails
	// instead of coercing to a default.
	ErrUnknownCategory = errors.New("unknown recipe category")

	// ErrArtifactMissing and ErrArtifactSchema are startup errors: the
	// service refuses to serve recommendations without a usable model.
	ErrArtifactMissing = errors.New("model artifact missing")
	ErrArtifactSchema  = errors.New("model artifact schema mismatch")

	// ErrRecipeNotFound is returned when a ranked id cannot be
	// rehydrated from the search engine.
	ErrRecipeNotFound = errors.New("recipe not found")
)
