package router

import (
	"github.com/gin-gonic/gin"

	"github.com/forkcast/backend/internal/api"
	"github.com/forkcast/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	searchHandler *api.SearchHandler,
	recipeHandler *api.RecipeHandler,
	recommendHandler *api.RecommendHandler,
	bookmarkHandler *api.BookmarkHandler,
	validator middleware.TokenValidator,
	searchLimiter *middleware.RateLimiter,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS())

	router.GET("/health", api.HealthCheck)

	v1 := router.Group("/api/v1")

	searchRoutes := v1.Group("")
	if searchLimiter != nil {
		searchRoutes.Use(searchLimiter.RateLimitMiddleware())
	}
	searchRoutes.GET("/search", searchHandler.Search)

	v1.GET("/recipes/:id", recipeHandler.GetRecipe)

	// Routes that need to know who is asking.
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(validator))
	{
		protected.GET("/recommendations", recommendHandler.Recommend)
		protected.POST("/recipes/:id/bookmark", bookmarkHandler.Add)
		protected.DELETE("/recipes/:id/bookmark", bookmarkHandler.Remove)
	}

	return router
}
