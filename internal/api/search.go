package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/forkcast/backend/internal/search"
	"github.com/forkcast/backend/internal/service"
)

// SearchHandler serves the query pipeline: spelling correction, engine
// search with deduplication, then similarity image backfill.
type SearchHandler struct {
	searchService *service.SearchService
}

func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No query provided"})
		return
	}

	pageSize := service.DefaultPageSize
	if raw := c.Query("page_size"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			pageSize = n
		}
	}

	corrected, results, err := h.searchService.Search(c.Request.Context(), query, pageSize)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyQuery):
			c.JSON(http.StatusBadRequest, gin.H{"message": "No query provided"})
		case errors.Is(err, search.ErrUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{"error": "search engine unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		}
		return
	}

	if len(results) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No results found"})
		return
	}

	service.BackfillImages(results)

	c.JSON(http.StatusOK, gin.H{
		"corrected_query": corrected,
		"results":         results,
	})
}
