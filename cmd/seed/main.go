// Command seed bulk-loads recipes from a static JSON fixture. It is a
// one-time data-loading utility, not part of the request path.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/spicerack/recipe-api/config"
	"github.com/spicerack/recipe-api/internal/database"
	"github.com/spicerack/recipe-api/internal/models"
)

// seedRecipe mirrors the fixture format: ingredients may be either a
// flat comma-separated string or a JSON array of items.
type seedRecipe struct {
	Name        string          `json:"name"`
	Ingredients json.RawMessage `json:"ingredients"`
	PrepTime    int             `json:"prep_time"`
	CookTime    int             `json:"cook_time"`
	Difficulty  string          `json:"difficulty"`
	Description string          `json:"description"`
}

func main() {
	file := flag.String("file", "seeds/recipes.json", "path to the recipes fixture")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read fixture %s: %v", *file, err)
	}

	var seeds []seedRecipe
	if err := json.Unmarshal(data, &seeds); err != nil {
		log.Fatalf("Failed to parse fixture: %v", err)
	}

	inserted := 0
	for _, seed := range seeds {
		ingredients, err := flattenIngredients(seed.Ingredients)
		if err != nil {
			log.Printf("Skipping %q: %v", seed.Name, err)
			continue
		}

		recipe := models.Recipe{
			Name:        seed.Name,
			Ingredients: ingredients,
			PrepTime:    seed.PrepTime,
			CookTime:    seed.CookTime,
			Difficulty:  seed.Difficulty,
			Description: seed.Description,
		}
		if err := db.Create(&recipe).Error; err != nil {
			log.Printf("Failed to insert %q: %v", seed.Name, err)
			continue
		}
		inserted++
	}

	log.Printf("Seeded %d of %d recipes", inserted, len(seeds))
}

// flattenIngredients joins array-form ingredients into the stored
// comma-separated string.
func flattenIngredients(raw json.RawMessage) (string, error) {
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return asString, nil
	}

	var asList []string
	if err := json.Unmarshal(raw, &asList); err != nil {
		return "", err
	}
	return strings.Join(asList, ","), nil
}
