package service

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/spicerack/recipe-api/internal/models"
	"github.com/spicerack/recipe-api/internal/validation"
)

var timeRangePattern = regexp.MustCompile(`^\d+-\d+$`)

// RecipeService implements the recipe operations against the store.
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance.
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// List returns all recipes in insertion order. An empty store is
// reported as ErrNoRecipes rather than an empty set.
func (s *RecipeService) List(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Order("id").Find(&recipes).Error; err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, ErrNoRecipes
	}
	return recipes, nil
}

// Create validates the payload strictly and inserts a new recipe.
func (s *RecipeService) Create(ctx context.Context, fields map[string]any) (*models.Recipe, error) {
	if errs := validation.CheckRecipe(fields, validation.Strict); !errs.Empty() {
		return nil, &ValidationError{Fields: errs}
	}

	recipe := models.Recipe{}
	applyFields(&recipe, fields)
	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Get retrieves a recipe by id.
func (s *RecipeService) Get(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// Update merges the supplied fields into an existing recipe. The
// lookup happens before validation, so a missing row is reported as
// not-found regardless of what the payload contains. Fields that were
// not supplied keep their prior value.
func (s *RecipeService) Update(ctx context.Context, id uint, fields map[string]any) (*models.Recipe, error) {
	recipe, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if errs := validation.CheckRecipe(fields, validation.Partial); !errs.Empty() {
		return nil, &ValidationError{Fields: errs}
	}

	updates := updateColumns(fields)
	if len(updates) == 0 {
		return recipe, nil
	}
	if err := s.db.WithContext(ctx).Model(recipe).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes a recipe permanently. The Recipe model has no
// soft-delete column, so the row is gone and its id is never reused.
func (s *RecipeService) Delete(ctx context.Context, id uint) error {
	recipe, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(recipe).Error
}

// FilterByDifficulty returns recipes with the given difficulty. The
// level is checked before any store access.
func (s *RecipeService) FilterByDifficulty(ctx context.Context, level string) ([]models.Recipe, error) {
	if !validation.ValidDifficulty(level) {
		return nil, ErrInvalidDifficulty
	}

	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Where("difficulty = ?", level).Order("id").Find(&recipes).Error; err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, ErrNoRecipes
	}
	return recipes, nil
}

// AdvancedSearch matches recipes whose stored ingredients contain any
// of the requested tokens as a case-insensitive substring, and whose
// combined prep and cook time falls within the inclusive range
// "min-max". Substring matching can over-match ("egg" also hits
// "eggplant"); that is the accepted search semantic.
func (s *RecipeService) AdvancedSearch(ctx context.Context, ingredientsCsv, timeRange string) ([]models.Recipe, error) {
	tokens := splitIngredients(ingredientsCsv)

	errs := validation.Errors{}
	if len(tokens) == 0 {
		errs["ingredients"] = []string{"Please provide at least one ingredient."}
	}
	switch {
	case timeRange == "":
		errs["time"] = []string{"Please specify a time range (e.g., 20-30)."}
	case !timeRangePattern.MatchString(timeRange):
		errs["time"] = []string{"Invalid time format. Use min-max format (e.g., 20-30)."}
	}
	if !errs.Empty() {
		return nil, &ValidationError{Fields: errs}
	}

	bounds := strings.SplitN(timeRange, "-", 2)
	min, _ := strconv.Atoi(bounds[0])
	max, _ := strconv.Atoi(bounds[1])
	if min > max {
		return nil, ErrInvalidTimeRange
	}

	ingredientMatch := s.db.Where("LOWER(ingredients) LIKE ?", "%"+tokens[0]+"%")
	for _, token := range tokens[1:] {
		ingredientMatch = ingredientMatch.Or("LOWER(ingredients) LIKE ?", "%"+token+"%")
	}

	var recipes []models.Recipe
	err := s.db.WithContext(ctx).
		Where(ingredientMatch).
		Where("(prep_time + cook_time) BETWEEN ? AND ?", min, max).
		Order("id").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, ErrNoRecipes
	}
	return recipes, nil
}

// splitIngredients lower-cases and splits a comma-separated ingredient
// list, trimming whitespace and discarding empty tokens.
func splitIngredients(csv string) []string {
	var tokens []string
	for _, part := range strings.Split(strings.ToLower(csv), ",") {
		if token := strings.TrimSpace(part); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

func applyFields(recipe *models.Recipe, fields map[string]any) {
	if v, ok := validation.StringField(fields, "name"); ok {
		recipe.Name = v
	}
	if v, ok := validation.StringField(fields, "ingredients"); ok {
		recipe.Ingredients = v
	}
	if v, ok := validation.IntField(fields, "prep_time"); ok {
		recipe.PrepTime = v
	}
	if v, ok := validation.IntField(fields, "cook_time"); ok {
		recipe.CookTime = v
	}
	if v, ok := validation.StringField(fields, "difficulty"); ok {
		recipe.Difficulty = v
	}
	if v, ok := validation.StringField(fields, "description"); ok {
		recipe.Description = v
	}
}

// updateColumns converts validated payload fields into a column map so
// zero values (e.g. prep_time 0) are written through GORM.
func updateColumns(fields map[string]any) map[string]any {
	updates := map[string]any{}
	for _, name := range []string{"name", "ingredients", "difficulty", "description"} {
		if v, ok := validation.StringField(fields, name); ok {
			updates[name] = v
		}
	}
	for _, name := range []string{"prep_time", "cook_time"} {
		if v, ok := validation.IntField(fields, name); ok {
			updates[name] = v
		}
	}
	return updates
}
