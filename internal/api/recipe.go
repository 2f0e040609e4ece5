package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/forkcast/backend/internal/search"
	"github.com/forkcast/backend/internal/service"
)

// RecipeHandler serves single-record lookups against the search
// engine.
type RecipeHandler struct {
	engine search.Engine
}

func NewRecipeHandler(engine search.Engine) *RecipeHandler {
	return &RecipeHandler{engine: engine}
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.engine.TermLookup(c.Request.Context(), search.FieldRecipeID, recipeID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "search engine unavailable"})
		return
	}
	if recipe == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	recipe.Images = service.CleanImageRef(recipe.Images)
	c.JSON(http.StatusOK, recipe)
}
