package model

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Version is the application version reported by --version and the web API.
const Version = "0.3.0"

const (
	ingredientsHeading  = "Ingredients"
	instructionsHeading = "Instructions"
	headingRule         = "---------------"
)

var (
	// ErrNegativeQuantity is returned when an ingredient quantity is below zero.
	ErrNegativeQuantity = errors.New("ingredient quantity must not be negative")
	// ErrInvalidRecipe is returned by Validate for malformed recipes.
	ErrInvalidRecipe = errors.New("invalid recipe")
)

// Recipe is a single recipe as stored in the recipe file.
// Quantities are baseline grams at a multiplier of 1.0.
type Recipe struct {
	Name         string             `json:"name" yaml:"name" toml:"name"`
	Portions     float64            `json:"portions" yaml:"portions" toml:"portions"`
	Ingredients  map[string]float64 `json:"ingredients" yaml:"ingredients" toml:"ingredients"`
	Instructions []string           `json:"instructions" yaml:"instructions" toml:"instructions"`
	Image        string             `json:"image" yaml:"image" toml:"image"`
}

// NewRecipe returns an empty recipe with the given name.
func NewRecipe(name string) Recipe {
	return Recipe{
		Name:        name,
		Ingredients: make(map[string]float64),
	}
}

// Scale applies a portion multiplier to a baseline quantity.
func Scale(qty, multiplier float64) float64 {
	return qty * multiplier
}

// FormatQuantity renders a quantity with the shortest decimal representation
// at single precision, so 500 prints as "500" and 1.1*500 as "550".
func FormatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 32)
}

// SetIngredient adds or replaces one ingredient.
func (r *Recipe) SetIngredient(name string, grams float64) error {
	if grams < 0 || math.IsNaN(grams) {
		return fmt.Errorf("%s: %w", name, ErrNegativeQuantity)
	}
	if r.Ingredients == nil {
		r.Ingredients = make(map[string]float64)
	}
	r.Ingredients[name] = grams
	return nil
}

// SortedIngredients returns the ingredient names in display order.
func (r Recipe) SortedIngredients() []string {
	names := make([]string, 0, len(r.Ingredients))
	for name := range r.Ingredients {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IngredientsText renders the ingredient list scaled by multiplier.
// Ingredients are listed alphabetically so the output is stable.
func (r Recipe) IngredientsText(multiplier float64) string {
	var b strings.Builder
	b.WriteString(ingredientsHeading + "\n" + headingRule + "\n")
	for _, name := range r.SortedIngredients() {
		qty := Scale(r.Ingredients[name], multiplier)
		fmt.Fprintf(&b, "%s: %s g\n", name, FormatQuantity(qty))
	}
	return b.String()
}

// PortionsText renders the scaled serving count.
func (r Recipe) PortionsText(multiplier float64) string {
	return "Portions: " + FormatQuantity(Scale(r.Portions, multiplier))
}

// InstructionsText renders the numbered instruction steps in stored order.
func (r Recipe) InstructionsText() string {
	var b strings.Builder
	b.WriteString(instructionsHeading + "\n" + headingRule + "\n")
	for i, step := range r.Instructions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	return b.String()
}

// Validate checks the invariants a loaded recipe must satisfy.
func (r Recipe) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidRecipe)
	}
	if r.Portions < 0 || math.IsNaN(r.Portions) {
		return fmt.Errorf("%w: %q has negative portions", ErrInvalidRecipe, r.Name)
	}
	for name, qty := range r.Ingredients {
		if qty < 0 || math.IsNaN(qty) {
			return fmt.Errorf("%w: %q ingredient %q: %w", ErrInvalidRecipe, r.Name, name, ErrNegativeQuantity)
		}
	}
	return nil
}
