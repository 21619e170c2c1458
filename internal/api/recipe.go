package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/spicerack/recipe-api/internal/service"
)

type RecipeHandler struct {
	recipes *service.RecipeService
}

func NewRecipeHandler(recipes *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.List(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoRecipes) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No recipes found"})
			return
		}
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Recipes retrieved successfully",
		"data":    recipes,
	})
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	fields, ok := bindFields(c)
	if !ok {
		return
	}

	recipe, err := h.recipes.Create(c.Request.Context(), fields)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"message": "Required fields are missing!",
				"errors":  ve.Fields,
			})
			return
		}
		internalError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Recipe created successfully!",
		"data":    recipe,
	})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	recipe, err := h.recipes.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Recipe not found"})
			return
		}
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}
	fields, ok := bindFields(c)
	if !ok {
		return
	}

	recipe, err := h.recipes.Update(c.Request.Context(), id, fields)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.Is(err, service.ErrRecipeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Recipe not found"})
		case errors.As(err, &ve):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"message": "Required fields are missing!",
				"errors":  ve.Fields,
			})
		default:
			internalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Recipe updated successfully",
		"data":    recipe,
	})
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	if err := h.recipes.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Recipe not found"})
			return
		}
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully"})
}

func (h *RecipeHandler) FilterByDifficulty(c *gin.Context) {
	recipes, err := h.recipes.FilterByDifficulty(c.Request.Context(), c.Param("level"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDifficulty):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid difficulty level. Choose from easy, medium, or hard."})
		case errors.Is(err, service.ErrNoRecipes):
			c.JSON(http.StatusNotFound, gin.H{"message": "No recipes found for this difficulty level."})
		default:
			internalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) AdvancedSearch(c *gin.Context) {
	recipes, err := h.recipes.AdvancedSearch(c.Request.Context(), c.Query("ingredients"), c.Query("time"))
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": ve.Fields})
		case errors.Is(err, service.ErrInvalidTimeRange):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid time range. Make sure the first value is smaller than the second."})
		case errors.Is(err, service.ErrNoRecipes):
			c.JSON(http.StatusNotFound, gin.H{"message": "No matching recipes found. Try adjusting your ingredients or time range."})
		default:
			internalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, recipes)
}

// recipeID parses the {id} path segment. A non-numeric id matches no
// row, so it is reported the same way as a missing one.
func recipeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Recipe not found"})
		return 0, false
	}
	return uint(id), true
}

// bindFields decodes the request body into raw field values for the
// validation layer.
func bindFields(c *gin.Context) (map[string]any, bool) {
	fields := map[string]any{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return nil, false
	}
	return fields, true
}

func internalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}
