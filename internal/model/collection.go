package model

import "errors"

// ErrEmptyCollection is returned when a recipe source decodes to zero recipes.
var ErrEmptyCollection = errors.New("recipe collection is empty")

// Collection is the ordered, read-only set of recipes loaded at startup.
type Collection struct {
	recipes []Recipe
	BaseDir string // Directory image references are resolved against
}

// NewCollection wraps recipes in load order. At least one recipe is required.
func NewCollection(recipes []Recipe) (*Collection, error) {
	if len(recipes) == 0 {
		return nil, ErrEmptyCollection
	}
	owned := make([]Recipe, len(recipes))
	copy(owned, recipes)
	return &Collection{recipes: owned}, nil
}

// Len returns the number of recipes.
func (c *Collection) Len() int {
	return len(c.recipes)
}

// At returns the recipe at index i. It panics when i is out of range.
func (c *Collection) At(i int) Recipe {
	return c.recipes[i]
}

// All returns a copy of the recipes in load order.
func (c *Collection) All() []Recipe {
	out := make([]Recipe, len(c.recipes))
	copy(out, c.recipes)
	return out
}
