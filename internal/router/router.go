package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/spicerack/recipe-api/internal/api"
	"github.com/spicerack/recipe-api/internal/middleware"
	"github.com/spicerack/recipe-api/internal/service"
)

// Setup configures the application routes.
func Setup(
	authHandler *api.AuthHandler,
	recipeHandler *api.RecipeHandler,
	authService *service.AuthService,
) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	root := router.Group("/api")

	// Public auth routes
	root.POST("/register", authHandler.Register)
	root.POST("/login", authHandler.Login)

	// Protected routes
	protected := root.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		protected.POST("/logout", authHandler.Logout)

		recipes := protected.Group("/recipes")
		{
			recipes.GET("", recipeHandler.ListRecipes)
			recipes.GET("/advanced-search", recipeHandler.AdvancedSearch)
			recipes.GET("/difficulty/:level", recipeHandler.FilterByDifficulty)
			recipes.GET("/:id", recipeHandler.GetRecipe)
			recipes.POST("", recipeHandler.CreateRecipe)
			recipes.PUT("/:id", recipeHandler.UpdateRecipe)
			recipes.PATCH("/:id", recipeHandler.UpdateRecipe)
			recipes.DELETE("/:id", recipeHandler.DeleteRecipe)
		}
	}

	return router
}
