package tui

import (
	"fmt"

	"recipeview/internal/model"
	"recipeview/internal/nav"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.Help.Width = msg.Width
		m.Instructions.Width = msg.Width/2 - 4
		m.Instructions.Height = msg.Height - 12 // minus nav bar, footer, borders
		if m.Instructions.Height < 3 {
			m.Instructions.Height = 3
		}
		return m, nil

	case loadedMsg:
		m.Recipes = msg.recipes
		m.Nav = nav.New(msg.recipes, m.NavOpts...)
		m.syncPage()
		return m, nil

	case errMsg:
		m.Err = msg.err
		return m, tea.Quit

	case tea.KeyMsg:
		if !m.Loaded() {
			if key.Matches(msg, m.Keys.Quit) {
				return m, tea.Quit
			}
			return m, nil
		}
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.InputBuffer.Blur()
				query := m.Nav.State().Query
				m.setStatus(m.Nav.Update(nav.Search{}), query)
				m.InputBuffer.SetValue("")
				m.syncPage()
				return m, nil
			case tea.KeyEsc:
				m.InputMode = false
				m.InputBuffer.Blur()
				m.InputBuffer.SetValue("")
				m.Nav.Update(nav.SearchChanged{Text: ""})
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			m.Nav.Update(nav.SearchChanged{Text: m.InputBuffer.Value()})
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.Keys.Previous):
			m.setStatus(m.Nav.Update(nav.Previous{}), "")
			m.syncPage()
		case key.Matches(msg, m.Keys.Next):
			m.setStatus(m.Nav.Update(nav.Next{}), "")
			m.syncPage()
		case key.Matches(msg, m.Keys.More):
			v := m.Nav.State().Multiplier + m.Step
			m.setStatus(m.Nav.Update(nav.PortionChanged{Value: v}), "")
		case key.Matches(msg, m.Keys.Less):
			v := m.Nav.State().Multiplier - m.Step
			m.setStatus(m.Nav.Update(nav.PortionChanged{Value: v}), "")
		case key.Matches(msg, m.Keys.Search):
			m.InputMode = true
			m.Status = ""
			m.InputBuffer.SetValue(m.Nav.State().Query)
			m.InputBuffer.Focus()
			return m, textinput.Blink
		case key.Matches(msg, m.Keys.Help):
			m.ShowHelp = !m.ShowHelp
			m.Help.ShowAll = m.ShowHelp
		case key.Matches(msg, m.Keys.ScrollUp, m.Keys.ScrollDn):
			m.Instructions, cmd = m.Instructions.Update(msg)
		}
	}

	return m, cmd
}

func (m *AppModel) setStatus(effect nav.Effect, query string) {
	switch effect {
	case nav.SearchNoMatch:
		m.Status = fmt.Sprintf("%s No recipe matches %q", model.IconSearch, query)
	case nav.SearchMatched:
		m.Status = fmt.Sprintf("%s Found %q", model.IconSearch, m.Nav.Current().Name)
	case nav.MultiplierChanged:
		min, max := m.Nav.Bounds()
		m.Status = fmt.Sprintf("Multiplier %s%s (%s–%s)", model.IconPortions,
			model.FormatQuantity(m.Nav.State().Multiplier),
			model.FormatQuantity(min), model.FormatQuantity(max))
	default:
		m.Status = ""
	}
}

// syncPage refreshes what depends on the current page: the instructions
// viewport and the resolved image.
func (m *AppModel) syncPage() {
	r := m.Nav.Current()
	m.Instructions.SetContent(r.InstructionsText())
	m.Instructions.GotoTop()
	m.Image = model.ResolveImage(m.Recipes.BaseDir, r.Image)
}
