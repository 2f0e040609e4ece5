package model

import (
	"time"

	"github.com/google/uuid"
)

// RecipeFavorite links a user to a bookmarked recipe. The recommender
// reads these rows to build the held set it excludes from results.
type RecipeFavorite struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	RecipeID  int64     `gorm:"not null;index" json:"recipe_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
}

func (RecipeFavorite) TableName() string {
	return "recipe_favorites"
}
