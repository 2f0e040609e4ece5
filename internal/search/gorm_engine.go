package search

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/forkcast/backend/internal/model"
)

// queryableColumns guards MultiMatch against arbitrary column text.
var queryableColumns = map[string]bool{
	FieldName:         true,
	FieldDescription:  true,
	FieldInstructions: true,
}

// GormEngine implements Engine over the catalog table. On Postgres the
// hits are ordered by embedding distance to the query text; on other
// dialects (sqlite in tests) it falls back to plain keyword matching in
// primary-key order.
type GormEngine struct {
	db *gorm.DB
}

func NewGormEngine(db *gorm.DB) *GormEngine {
	return &GormEngine{db: db}
}

func (e *GormEngine) MultiMatch(ctx context.Context, fields []string, text string, limit int) ([]*model.Recipe, error) {
	var conds []string
	var args []interface{}
	like := "%" + strings.ToLower(text) + "%"
	for _, f := range fields {
		if !queryableColumns[f] {
			return nil, fmt.Errorf("field %q is not queryable", f)
		}
		conds = append(conds, "LOWER("+f+") LIKE ?")
		args = append(args, like)
	}
	if len(conds) == 0 {
		return nil, fmt.Errorf("no query fields given")
	}

	query := e.db.WithContext(ctx).Model(&model.Recipe{}).
		Where(strings.Join(conds, " OR "), args...)

	if e.db.Dialector.Name() == "postgres" {
		vec := Embed(text)
		query = query.Clauses(clause.OrderBy{
			Expression: clause.Expr{SQL: "embedding <-> ?", Vars: []interface{}{vec}},
		})
	} else {
		query = query.Order("recipe_id")
	}

	if limit > 0 {
		query = query.Limit(limit)
	}

	var recipes []model.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	result := make([]*model.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	return result, nil
}

func (e *GormEngine) TermLookup(ctx context.Context, field string, value any) (*model.Recipe, error) {
	if !queryableColumns[field] && field != FieldRecipeID {
		return nil, fmt.Errorf("field %q is not queryable", field)
	}
	var recipe model.Recipe
	err := e.db.WithContext(ctx).First(&recipe, field+" = ?", value).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &recipe, nil
}

func (e *GormEngine) TermsLookup(ctx context.Context, field string, values []int64) ([]*model.Recipe, error) {
	if field != FieldRecipeID {
		return nil, fmt.Errorf("field %q is not queryable by id batch", field)
	}
	if len(values) == 0 {
		return nil, nil
	}
	var recipes []model.Recipe
	if err := e.db.WithContext(ctx).Where(field+" IN ?", values).Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	// Return hits in the caller's id order, not the database's.
	byID := make(map[int64]*model.Recipe, len(recipes))
	for i := range recipes {
		byID[recipes[i].RecipeID] = &recipes[i]
	}
	result := make([]*model.Recipe, 0, len(recipes))
	for _, id := range values {
		if r, ok := byID[id]; ok {
			result = append(result, r)
		}
	}
	return result, nil
}
