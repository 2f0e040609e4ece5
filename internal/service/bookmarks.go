package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/forkcast/backend/internal/model"
)

// BookmarkService reads and writes the user/recipe bookmark relation.
// The pipeline only ever reads it (HeldRecipeIDs); the write side
// exists so the held set has a writer at all.
type BookmarkService struct {
	db *gorm.DB
}

func NewBookmarkService(db *gorm.DB) *BookmarkService {
	return &BookmarkService{db: db}
}

// HeldRecipeIDs returns the set of recipe ids the user has bookmarked.
func (s *BookmarkService) HeldRecipeIDs(ctx context.Context, userID uuid.UUID) (map[int64]struct{}, error) {
	var ids []int64
	err := s.db.WithContext(ctx).
		Model(&model.RecipeFavorite{}).
		Where("user_id = ?", userID).
		Pluck("recipe_id", &ids).Error
	if err != nil {
		return nil, err
	}
	held := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		held[id] = struct{}{}
	}
	return held, nil
}

func (s *BookmarkService) Add(ctx context.Context, userID uuid.UUID, recipeID int64) error {
	fav := model.RecipeFavorite{ID: uuid.New(), RecipeID: recipeID, UserID: userID}
	return s.db.WithContext(ctx).Create(&fav).Error
}

func (s *BookmarkService) Remove(ctx context.Context, userID uuid.UUID, recipeID int64) error {
	return s.db.WithContext(ctx).
		Where("recipe_id = ? AND user_id = ?", recipeID, userID).
		Delete(&model.RecipeFavorite{}).Error
}
