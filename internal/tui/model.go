package tui

import (
	"recipeview/internal/model"
	"recipeview/internal/nav"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel holds the TUI state. Navigation, search and portion state live in
// the controller; everything here is presentation.
type AppModel struct {
	// Data
	Path    string // Recipe source read by LoadCmd
	Recipes *model.Collection
	Nav     *nav.Controller
	NavOpts []nav.Option
	Step    float64 // Multiplier change per +/- press
	Err     error   // Load failure; the program quits once it is set

	// UI State
	WindowSize tea.WindowSizeMsg
	Status     string
	ShowHelp   bool
	Image      model.ImageInfo // Resolved once per page

	// Search State
	InputMode   bool
	InputBuffer textinput.Model

	// Components
	Instructions viewport.Model
	Keys         KeyMap
	Help         help.Model
}

// NewModel returns a model that loads path when the program starts. opts
// configure the controller built once the collection arrives.
func NewModel(path string, step float64, opts ...nav.Option) AppModel {
	ti := textinput.New()
	ti.Placeholder = "search"
	ti.CharLimit = 80
	ti.Width = 30

	return AppModel{
		Path:         path,
		NavOpts:      opts,
		Step:         step,
		InputBuffer:  ti,
		Instructions: viewport.New(40, 10),
		Keys:         DefaultKeyMap(),
		Help:         help.New(),
	}
}

// InitialModel returns the initial state for an already loaded collection.
func InitialModel(recipes *model.Collection, controller *nav.Controller, step float64) AppModel {
	m := NewModel("", step)
	m.Recipes = recipes
	m.Nav = controller
	m.syncPage()
	return m
}

// Loaded reports whether the collection is available.
func (m AppModel) Loaded() bool {
	return m.Nav != nil
}
