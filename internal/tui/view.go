package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"recipeview/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	panelStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange

	missingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

func (m AppModel) View() string {
	if m.Err != nil {
		return missingStyle.Render(fmt.Sprintf("Error loading recipes: %v", m.Err)) + "\n"
	}
	if !m.Loaded() {
		return dimStyle.Render(fmt.Sprintf("Loading %s ...", m.Path)) + "\n"
	}
	snap := m.Nav.Snapshot()

	width := m.WindowSize.Width
	if width < 40 {
		width = 80
	}
	netWidth := width - 6
	leftWidth := netWidth / 2
	rightWidth := netWidth - leftWidth

	// NAV BAR: ← search →
	prev := dimStyle.Render(model.IconPrevious)
	if snap.CanPrevious {
		prev = activeStyle.Render(model.IconPrevious)
	}
	next := dimStyle.Render(model.IconNext)
	if snap.CanNext {
		next = activeStyle.Render(model.IconNext)
	}
	search := dimStyle.Render(fmt.Sprintf("%s press / to search", model.IconSearch))
	if m.InputMode {
		search = m.InputBuffer.View()
	}
	navBar := lipgloss.JoinHorizontal(lipgloss.Top, prev, "  ", search, "  ", next)

	// LEFT PANEL: portions + ingredients
	var left strings.Builder
	left.WriteString(titleStyle.Render(snap.Name))
	left.WriteString("\n\n")
	left.WriteString(snap.PortionsText)
	left.WriteString(dimStyle.Render(fmt.Sprintf("   (%s%s)", model.IconPortions, model.FormatQuantity(snap.Multiplier))))
	left.WriteString("\n\n")
	left.WriteString(snap.IngredientsText)
	left.WriteString("\n")
	left.WriteString(m.imageLine())

	leftPanel := panelStyle.Width(leftWidth).Render(strings.TrimSuffix(left.String(), "\n"))

	// RIGHT PANEL: instructions (scrollable)
	rightPanel := panelStyle.Width(rightWidth).Render(m.Instructions.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, rightPanel)

	// FOOTER: previous page | name | next page
	nameWidth := width - 2*8
	if nameWidth < 10 {
		nameWidth = 10
	}
	footer := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(8).Render(snap.PreviousLabel),
		lipgloss.NewStyle().Width(nameWidth).Align(lipgloss.Center).Render(
			fmt.Sprintf("%s  (%d/%d)", snap.Name, snap.Page+1, snap.Total)),
		lipgloss.NewStyle().Width(8).Align(lipgloss.Right).Render(snap.NextLabel),
	)

	status := ""
	if m.Status != "" {
		status = "\n" + statusStyle.Render(m.Status)
	}

	return navBar + "\n\n" + body + "\n" + footer + status + "\n\n" + m.Help.View(m.Keys)
}

func (m AppModel) imageLine() string {
	info := m.Image
	if info.Exists {
		return dimStyle.Render(fmt.Sprintf("%s %s", model.IconImage, info.Path))
	}
	if info.Ref == "" {
		return dimStyle.Render("(no image)")
	}
	return missingStyle.Render(fmt.Sprintf("%s %s (image missing)", model.IconImageMissing, info.Ref))
}

func (m AppModel) Init() tea.Cmd {
	if m.Loaded() {
		return nil
	}
	return LoadCmd(m.Path)
}
