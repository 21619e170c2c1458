package service

import (
	"errors"

	"github.com/spicerack/recipe-api/internal/validation"
)

var (
	// ErrRecipeNotFound is returned when an id matches no row.
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrNoRecipes is returned when a listing or search matches nothing.
	ErrNoRecipes = errors.New("no recipes found")
	// ErrInvalidDifficulty is returned for a level outside easy/medium/hard.
	ErrInvalidDifficulty = errors.New("invalid difficulty level")
	// ErrInvalidTimeRange is returned when a search range has min > max.
	ErrInvalidTimeRange = errors.New("invalid time range")

	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrSessionExpired     = errors.New("session expired or revoked")
)

// ValidationError carries the per-field violations of a rejected payload.
type ValidationError struct {
	Fields validation.Errors
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
