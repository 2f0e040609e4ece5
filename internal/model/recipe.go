package model

import (
	pgvector "github.com/pgvector/pgvector-go"
)

// Recipe is one row of the recipe catalog. Records are written by the
// ingestion command and read-only afterwards. Images holds the raw
// stored encoding (possibly an R-style `c("u1","u2")` vector literal);
// use service.CleanImageRef before showing it to anyone.
type Recipe struct {
	RecipeID            int64           `gorm:"column:recipe_id;primaryKey" json:"recipe_id"`
	Name                string          `gorm:"size:255;not null" json:"name"`
	Description         string          `gorm:"type:text" json:"description"`
	Instructions        string          `gorm:"type:text" json:"instructions"`
	Images              *string         `gorm:"type:text" json:"images"`
	RecipeCategory      string          `gorm:"size:100;index" json:"recipe_category"`
	AggregatedRating    *float64        `json:"aggregated_rating"`
	ReviewCount         *float64        `json:"review_count"`
	Calories            float64         `json:"calories"`
	FatContent          float64         `json:"fat_content"`
	SaturatedFatContent float64         `json:"saturated_fat_content"`
	CholesterolContent  float64         `json:"cholesterol_content"`
	SodiumContent       float64         `json:"sodium_content"`
	CarbohydrateContent float64         `json:"carbohydrate_content"`
	FiberContent        float64         `json:"fiber_content"`
	SugarContent        float64         `json:"sugar_content"`
	ProteinContent      float64         `json:"protein_content"`
	RecipeServings      *float64        `json:"recipe_servings"`
	RecipeYield         int             `json:"recipe_yield"`
	Embedding           pgvector.Vector `gorm:"type:vector(3)" json:"-"`
}

func (Recipe) TableName() string {
	return "recipes"
}
