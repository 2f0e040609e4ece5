package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/forkcast/backend/internal/search"
	"github.com/forkcast/backend/internal/service"
)

// RecommendHandler serves personalized top-K recommendation lists for
// the authenticated user.
type RecommendHandler struct {
	recommender *service.Recommender
}

func NewRecommendHandler(recommender *service.Recommender) *RecommendHandler {
	return &RecommendHandler{recommender: recommender}
}

func (h *RecommendHandler) Recommend(c *gin.Context) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	topK := service.DefaultTopK
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			topK = n
		}
	}

	recommendations, err := h.recommender.Recommend(c.Request.Context(), userIDVal.(uuid.UUID), topK)
	if err != nil {
		switch {
		case errors.Is(err, search.ErrUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{"error": "search engine unavailable"})
		case errors.Is(err, service.ErrRecipeNotFound):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "recommended recipe no longer in catalog"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build recommendations"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recommendations": recommendations,
	})
}
