// Package validation checks raw recipe payloads before any mutation.
//
// Values arrive as the output of a JSON decode into map[string]any,
// so text fields are string and numeric fields are float64. Errors
// are keyed by field name and contain only fields that actually
// failed; a clean payload yields an empty set.
package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/spicerack/recipe-api/internal/models"
)

// Mode selects between create and partial-update semantics.
type Mode int

const (
	// Strict requires every recognized field to be present and typed.
	Strict Mode = iota
	// Partial type-checks only the fields that were supplied.
	Partial
)

// Errors maps a field name to its violation messages.
type Errors map[string][]string

func (e Errors) add(field, message string) {
	e[field] = append(e[field], message)
}

// Empty reports whether no field failed.
func (e Errors) Empty() bool {
	return len(e) == 0
}

type rule int

const (
	text rule = iota
	integer
	difficulty
)

var recipeFields = []struct {
	name string
	rule rule
}{
	{"name", text},
	{"ingredients", text},
	{"prep_time", integer},
	{"cook_time", integer},
	{"difficulty", difficulty},
	{"description", text},
}

// CheckRecipe validates the supplied fields against the recipe schema.
// Unknown fields are ignored.
func CheckRecipe(fields map[string]any, mode Mode) Errors {
	errs := Errors{}

	for _, f := range recipeFields {
		value, present := fields[f.name]
		if !present || value == nil {
			if mode == Strict {
				errs.add(f.name, fmt.Sprintf("The %s field is required.", label(f.name)))
			}
			continue
		}

		switch f.rule {
		case text:
			s, ok := value.(string)
			if !ok {
				errs.add(f.name, fmt.Sprintf("The %s field must be a string.", label(f.name)))
				continue
			}
			if mode == Strict && strings.TrimSpace(s) == "" {
				errs.add(f.name, fmt.Sprintf("The %s field is required.", label(f.name)))
			}
		case integer:
			if _, ok := toInt(value); !ok {
				errs.add(f.name, fmt.Sprintf("The %s field must be an integer.", label(f.name)))
			}
		case difficulty:
			s, ok := value.(string)
			if !ok || !ValidDifficulty(s) {
				errs.add(f.name, "The selected difficulty is invalid.")
			}
		}
	}

	return errs
}

// ValidDifficulty reports whether level is one of easy, medium, hard.
func ValidDifficulty(level string) bool {
	switch level {
	case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
		return true
	}
	return false
}

// IntField extracts an already-validated integer field.
func IntField(fields map[string]any, name string) (int, bool) {
	value, present := fields[name]
	if !present {
		return 0, false
	}
	return toInt(value)
}

// StringField extracts an already-validated string field.
func StringField(fields map[string]any, name string) (string, bool) {
	value, present := fields[name]
	if !present {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}

func label(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}
