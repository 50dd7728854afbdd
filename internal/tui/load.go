package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"recipeview/internal/loader"
	"recipeview/internal/model"
)

type loadedMsg struct {
	recipes *model.Collection
}

type errMsg struct {
	err error
}

func (e errMsg) Error() string { return e.err.Error() }

// LoadCmd reads the recipe collection at path off the UI loop.
func LoadCmd(path string) tea.Cmd {
	return func() tea.Msg {
		recipes, err := loader.Load(path)
		if err != nil {
			return errMsg{err}
		}
		return loadedMsg{recipes}
	}
}
