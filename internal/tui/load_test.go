package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipeview/internal/model"
	"recipeview/internal/nav"
)

func writeRecipes(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipes.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func step(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(AppModel)
	require.True(t, ok, "Update returned %T", next)
	return out, cmd
}

func TestLoadCmd(t *testing.T) {
	path := writeRecipes(t, `[{"name": "Bread", "portions": 2}, {"name": "Soup", "portions": 4}]`)

	msg := LoadCmd(path)()
	loaded, ok := msg.(loadedMsg)
	require.True(t, ok, "LoadCmd returned %T", msg)
	assert.Equal(t, 2, loaded.recipes.Len())

	msg = LoadCmd(filepath.Join(t.TempDir(), "missing.json"))()
	failed, ok := msg.(errMsg)
	require.True(t, ok, "LoadCmd returned %T", msg)
	assert.ErrorIs(t, failed.err, os.ErrNotExist)
}

func TestNewModel_LoadsOnInit(t *testing.T) {
	path := writeRecipes(t, `[{"name": "Bread", "portions": 2, "instructions": ["Knead"]}]`)
	m := NewModel(path, 0.5, nav.WithBounds(1, 3))

	assert.False(t, m.Loaded())
	assert.Contains(t, m.View(), "Loading")

	cmd := m.Init()
	require.NotNil(t, cmd)
	m, cmd = step(t, m, cmd())
	assert.Nil(t, cmd)

	require.True(t, m.Loaded())
	assert.Equal(t, "Bread", m.Nav.Current().Name)
	assert.Contains(t, m.Instructions.View(), "Knead")
	min, max := m.Nav.Bounds()
	assert.Equal(t, 1.0, min)
	assert.Equal(t, 3.0, max)
	assert.Nil(t, m.Init())
}

func TestNewModel_LoadFailureQuits(t *testing.T) {
	m := NewModel(writeRecipes(t, `[]`), 0.5)

	m, cmd := step(t, m, m.Init()())
	require.Error(t, m.Err)
	assert.ErrorIs(t, m.Err, model.ErrEmptyCollection)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Contains(t, m.View(), "Error loading recipes")
}

func TestNewModel_KeysBeforeLoad(t *testing.T) {
	m := NewModel("recipes.json", 0.5)

	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Nil(t, cmd)
	assert.False(t, m.Loaded())

	_, cmd = step(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestImageResolvedPerPage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bread.jpg"), []byte("jpeg"), 0o644))

	recipes, err := model.NewCollection([]model.Recipe{
		{Name: "Bread", Portions: 1, Ingredients: map[string]float64{}, Image: "bread.jpg"},
		{Name: "Soup", Portions: 1, Ingredients: map[string]float64{}, Image: "soup.jpg"},
	})
	require.NoError(t, err)
	recipes.BaseDir = dir
	m := InitialModel(recipes, nav.New(recipes), 0.5)
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 400, Height: 40})

	assert.True(t, m.Image.Exists)
	assert.Equal(t, filepath.Join(dir, "bread.jpg"), m.Image.Path)

	// The view uses the cached result until the page changes.
	require.NoError(t, os.Remove(filepath.Join(dir, "bread.jpg")))
	assert.True(t, m.Image.Exists)
	assert.Contains(t, m.View(), filepath.Join(dir, "bread.jpg"))

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "soup.jpg", m.Image.Ref)
	assert.False(t, m.Image.Exists)
	assert.Contains(t, m.View(), "image missing")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "bread.jpg", m.Image.Ref)
	assert.False(t, m.Image.Exists)
}
