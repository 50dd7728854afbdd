// Package nav holds the page cursor that ties recipe navigation, search and
// portion scaling together.
package nav

import (
	"io"
	"log/slog"
	"math"
	"strconv"

	"recipeview/internal/model"
	"recipeview/internal/search"
)

// Default multiplier bounds, inclusive.
const (
	DefaultMinMultiplier = 0.5
	DefaultMaxMultiplier = 10.0
)

// State is the mutable part of the controller.
type State struct {
	Page       int
	Multiplier float64
	Query      string
}

// Snapshot is everything a view needs to render the current page.
type Snapshot struct {
	Page             int     `json:"page"`
	Total            int     `json:"total"`
	Name             string  `json:"name"`
	Image            string  `json:"image"`
	Multiplier       float64 `json:"multiplier"`
	Query            string  `json:"query"`
	PortionsText     string  `json:"portions_text"`
	IngredientsText  string  `json:"ingredients_text"`
	InstructionsText string  `json:"instructions_text"`
	PreviousLabel    string  `json:"previous_label"`
	NextLabel        string  `json:"next_label"`
	CanPrevious      bool    `json:"can_previous"`
	CanNext          bool    `json:"can_next"`
}

// Controller owns the navigation state for one collection.
// It is not safe for concurrent use.
type Controller struct {
	recipes *model.Collection
	state   State
	min     float64
	max     float64
	log     *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithBounds sets the inclusive multiplier range. A range that is empty or
// has a NaN end is ignored and the defaults stay in place.
func WithBounds(min, max float64) Option {
	return func(c *Controller) {
		if math.IsNaN(min) || math.IsNaN(max) || min > max {
			c.log.Warn("ignoring invalid multiplier bounds", "min", min, "max", max)
			return
		}
		c.min, c.max = min, max
	}
}

// WithLogger sets the logger used for search diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// New returns a controller on the first page with a multiplier of 1.0.
func New(recipes *model.Collection, opts ...Option) *Controller {
	c := &Controller{
		recipes: recipes,
		state:   State{Page: 0, Multiplier: 1.0},
		min:     DefaultMinMultiplier,
		max:     DefaultMaxMultiplier,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.state.Multiplier = c.clamp(c.state.Multiplier)
	return c
}

// Update applies one event and reports what changed.
func (c *Controller) Update(ev Event) Effect {
	switch ev := ev.(type) {
	case Previous:
		if c.state.Page > 0 {
			c.state.Page--
			return PageChanged
		}
	case Next:
		n := c.recipes.Len()
		if n > 1 && c.state.Page < n-1 {
			c.state.Page++
			return PageChanged
		}
	case SearchChanged:
		if c.state.Query != ev.Text {
			c.state.Query = ev.Text
			return QueryChanged
		}
	case Search:
		return c.runSearch()
	case PortionChanged:
		if math.IsNaN(ev.Value) {
			return NoChange
		}
		v := c.clamp(ev.Value)
		if v != c.state.Multiplier {
			c.state.Multiplier = v
			return MultiplierChanged
		}
	}
	return NoChange
}

func (c *Controller) runSearch() Effect {
	query := c.state.Query
	matches := search.ByName(c.recipes, query)
	c.state.Query = ""

	c.log.Info("search through recipes", "query", query, "matches", len(matches))

	last, ok := search.Last(matches)
	if !ok {
		return SearchNoMatch
	}
	c.state.Page = last.Index
	return SearchMatched
}

func (c *Controller) clamp(v float64) float64 {
	if v < c.min {
		return c.min
	}
	if v > c.max {
		return c.max
	}
	return v
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// Bounds returns the inclusive multiplier range.
func (c *Controller) Bounds() (min, max float64) {
	return c.min, c.max
}

// Len returns the number of pages.
func (c *Controller) Len() int {
	return c.recipes.Len()
}

// Current returns the recipe on the current page.
func (c *Controller) Current() model.Recipe {
	return c.recipes.At(c.state.Page)
}

// CanPrevious reports whether Previous would move.
func (c *Controller) CanPrevious() bool {
	return c.state.Page > 0
}

// CanNext reports whether Next would move.
func (c *Controller) CanNext() bool {
	return c.state.Page < c.recipes.Len()-1
}

// PreviousLabel is the page number shown next to the back control.
func (c *Controller) PreviousLabel() string {
	if c.state.Page > 0 {
		return strconv.Itoa(c.state.Page - 1)
	}
	return "0"
}

// NextLabel is the page number shown next to the forward control, empty on
// the last page.
func (c *Controller) NextLabel() string {
	if c.state.Page == c.recipes.Len()-1 {
		return ""
	}
	return strconv.Itoa(c.state.Page + 1)
}

// Snapshot renders the current page for a view.
func (c *Controller) Snapshot() Snapshot {
	r := c.Current()
	m := c.state.Multiplier
	return Snapshot{
		Page:             c.state.Page,
		Total:            c.recipes.Len(),
		Name:             r.Name,
		Image:            r.Image,
		Multiplier:       m,
		Query:            c.state.Query,
		PortionsText:     r.PortionsText(m),
		IngredientsText:  r.IngredientsText(m),
		InstructionsText: r.InstructionsText(),
		PreviousLabel:    c.PreviousLabel(),
		NextLabel:        c.NextLabel(),
		CanPrevious:      c.CanPrevious(),
		CanNext:          c.CanNext(),
	}
}

// Seek steps the controller to page using Next and Previous events, stopping
// at the collection bounds. It returns the page it ended on.
func Seek(c *Controller, page int) int {
	for c.state.Page < page && c.Update(Next{}) == PageChanged {
	}
	for c.state.Page > page && c.Update(Previous{}) == PageChanged {
	}
	return c.state.Page
}
