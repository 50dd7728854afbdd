// Package search implements recipe lookup by name.
package search

import (
	"strings"

	"recipeview/internal/model"
)

// Match is a recipe found by a search, with its position in the collection.
type Match struct {
	Index  int
	Recipe model.Recipe
}

// ByName returns every recipe whose name contains query, in collection order.
// Matching is case-sensitive substring containment; an empty query matches
// every recipe.
func ByName(c *model.Collection, query string) []Match {
	var matches []Match
	for i := 0; i < c.Len(); i++ {
		r := c.At(i)
		if strings.Contains(r.Name, query) {
			matches = append(matches, Match{Index: i, Recipe: r})
		}
	}
	return matches
}

// Last returns the final match in scan order.
func Last(matches []Match) (Match, bool) {
	if len(matches) == 0 {
		return Match{}, false
	}
	return matches[len(matches)-1], true
}
