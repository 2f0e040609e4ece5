package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/forkcast/backend/internal/service"
)

// BookmarkHandler exposes the write side of the bookmark relation so
// the held set the recommender excludes has a writer.
type BookmarkHandler struct {
	bookmarks *service.BookmarkService
}

func NewBookmarkHandler(bookmarks *service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarks: bookmarks}
}

func (h *BookmarkHandler) Add(c *gin.Context) {
	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.bookmarks.Add(c.Request.Context(), userIDVal.(uuid.UUID), recipeID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to bookmark recipe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Recipe bookmarked successfully",
		"id":      recipeID,
	})
}

func (h *BookmarkHandler) Remove(c *gin.Context) {
	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.bookmarks.Remove(c.Request.Context(), userIDVal.(uuid.UUID), recipeID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove bookmark"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Bookmark removed successfully",
		"id":      recipeID,
	})
}
