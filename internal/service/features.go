package service

import (
	"fmt"
	"sort"

	"github.com/forkcast/backend/internal/model"
)

// FeatureColumns is the fixed input contract of the rating model: the
// columns selected from the catalog, in order, before the category is
// encoded and dropped.
var FeatureColumns = []string{
	"RecipeId", "AggregatedRating", "ReviewCount", "Calories", "FatContent",
	"SaturatedFatContent", "CholesterolContent", "SodiumContent",
	"CarbohydrateContent", "FiberContent", "SugarContent", "ProteinContent",
	"RecipeServings", "RecipeCategory",
}

// ImputedColumns are the numeric fields that receive mean imputation.
var ImputedColumns = []string{"AggregatedRating", "ReviewCount", "RecipeServings"}

// ModelFeatureColumns is FeatureColumns minus RecipeCategory: the
// category is label-encoded for validation but excluded from the final
// vector, because that is the feature set the persisted model was
// trained on. Do not "fix" this by appending the encoded value; it
// would silently change the model's input distribution.
var ModelFeatureColumns = FeatureColumns[:len(FeatureColumns)-1]

// CategoryEncoder maps category labels to integers. It is fit once
// over the full category vocabulary and frozen; encoding an unseen
// label is an error, never a silent default.
type CategoryEncoder struct {
	Classes []string
	index   map[string]int
}

// FitCategoryEncoder builds an encoder over the distinct categories in
// catalog. Classes are sorted so the label->integer mapping does not
// depend on catalog order.
func FitCategoryEncoder(catalog []*model.Recipe) *CategoryEncoder {
	seen := make(map[string]bool)
	for _, r := range catalog {
		seen[r.RecipeCategory] = true
	}
	classes := make([]string, 0, len(seen))
	for c := range seen {
		classes = append(classes, c)
	}
	sort.Strings(classes)
	return NewCategoryEncoder(classes)
}

func NewCategoryEncoder(classes []string) *CategoryEncoder {
	index := make(map[string]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}
	return &CategoryEncoder{Classes: classes, index: index}
}

func (e *CategoryEncoder) Encode(label string) (int, error) {
	idx, ok := e.index[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, label)
	}
	return idx, nil
}

// NumericImputer fills missing AggregatedRating, ReviewCount and
// RecipeServings values with column means computed once at fit time.
type NumericImputer struct {
	Means map[string]float64
}

// FitNumericImputer computes the frozen column means over the non-null
// values in catalog.
func FitNumericImputer(catalog []*model.Recipe) *NumericImputer {
	sums := make(map[string]float64, len(ImputedColumns))
	ns := make(map[string]float64, len(ImputedColumns))
	for _, r := range catalog {
		for _, col := range ImputedColumns {
			if v := imputedField(r, col); v != nil {
				sums[col] += *v
				ns[col]++
			}
		}
	}
	means := make(map[string]float64, len(ImputedColumns))
	for _, col := range ImputedColumns {
		if ns[col] > 0 {
			means[col] = sums[col] / ns[col]
		}
	}
	return &NumericImputer{Means: means}
}

func (im *NumericImputer) impute(r *model.Recipe, col string) float64 {
	if v := imputedField(r, col); v != nil {
		return *v
	}
	return im.Means[col]
}

func imputedField(r *model.Recipe, col string) *float64 {
	switch col {
	case "AggregatedRating":
		return r.AggregatedRating
	case "ReviewCount":
		return r.ReviewCount
	case "RecipeServings":
		return r.RecipeServings
	}
	return nil
}

// Preprocessor applies the frozen encoder and imputer to catalog rows.
// The same recipe always maps to the same vector for a given fitted
// pair.
type Preprocessor struct {
	Encoder *CategoryEncoder
	Imputer *NumericImputer
}

// FitPreprocessor fits both transforms over catalog in one pass. Used
// by the offline fitting command; the API loads the persisted result.
func FitPreprocessor(catalog []*model.Recipe) *Preprocessor {
	return &Preprocessor{
		Encoder: FitCategoryEncoder(catalog),
		Imputer: FitNumericImputer(catalog),
	}
}

// Transform produces one feature vector per catalog row, ordered like
// ModelFeatureColumns. Every row's category is still encoded, and an
// unknown category fails the whole transform, but the encoded value
// is dropped from the output (see ModelFeatureColumns).
func (p *Preprocessor) Transform(catalog []*model.Recipe) ([][]float64, error) {
	vectors := make([][]float64, len(catalog))
	for i, r := range catalog {
		if _, err := p.Encoder.Encode(r.RecipeCategory); err != nil {
			return nil, fmt.Errorf("recipe %d: %w", r.RecipeID, err)
		}
		vectors[i] = []float64{
			float64(r.RecipeID),
			p.Imputer.impute(r, "AggregatedRating"),
			p.Imputer.impute(r, "ReviewCount"),
			r.Calories,
			r.FatContent,
			r.SaturatedFatContent,
			r.CholesterolContent,
			r.SodiumContent,
			r.CarbohydrateContent,
			r.FiberContent,
			r.SugarContent,
			r.ProteinContent,
			p.Imputer.impute(r, "RecipeServings"),
		}
	}
	return vectors, nil
}
