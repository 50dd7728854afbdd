package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipeview/internal/model"
	"recipeview/internal/nav"
)

func newTestServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bread.jpg"), []byte("jpeg-bytes"), 0o644))

	recipes, err := model.NewCollection([]model.Recipe{
		{Name: "Test123", Portions: 2, Ingredients: map[string]float64{"Flour": 500}, Image: "bread.jpg"},
		{Name: "Test222", Portions: 1, Ingredients: map[string]float64{}},
		{Name: "Test112", Portions: 4, Ingredients: map[string]float64{"Salt": 2}, Instructions: []string{"Stir"}},
	})
	require.NoError(t, err)
	recipes.BaseDir = dir

	srv := httptest.NewServer(NewServer(recipes, nil, nav.WithBounds(0.5, 10)).Handler())
	t.Cleanup(srv.Close)
	return srv, dir
}

func getJSON(t *testing.T, url string, v any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK && v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
	return resp
}

func TestHandleRecipes(t *testing.T) {
	srv, _ := newTestServer(t)

	var entries []RecipeEntry
	getJSON(t, srv.URL+"/api/recipes", &entries)
	assert.Equal(t, []RecipeEntry{{0, "Test123"}, {1, "Test222"}, {2, "Test112"}}, entries)
}

func TestHandleRecipe(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		name         string
		query        string
		wantPage     int
		wantPortions string
		wantNext     string
	}{
		{"default", "", 0, "Portions: 2", "1"},
		{"page", "?page=1", 1, "Portions: 1", "2"},
		{"page past end", "?page=9", 2, "Portions: 4", ""},
		{"multiplier", "?multiplier=2", 0, "Portions: 4", "1"},
		{"multiplier clamped", "?multiplier=50", 0, "Portions: 20", "1"},
		{"search last match", "?q=Test1", 2, "Portions: 4", ""},
		{"search no match keeps page", "?page=1&q=Skkrrrr", 1, "Portions: 1", "2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var snap nav.Snapshot
			resp := getJSON(t, srv.URL+"/api/recipe"+tt.query, &snap)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.wantPage, snap.Page)
			assert.Equal(t, tt.wantPortions, snap.PortionsText)
			assert.Equal(t, tt.wantNext, snap.NextLabel)
			assert.Equal(t, "", snap.Query)
		})
	}
}

func TestHandleRecipe_BadParams(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := getJSON(t, srv.URL+"/api/recipe?page=abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = getJSON(t, srv.URL+"/api/recipe?multiplier=lots", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleSearch(t *testing.T) {
	srv, _ := newTestServer(t)

	var entries []RecipeEntry
	getJSON(t, srv.URL+"/api/search?q=Test1", &entries)
	assert.Equal(t, []RecipeEntry{{0, "Test123"}, {2, "Test112"}}, entries)

	entries = nil
	getJSON(t, srv.URL+"/api/search", &entries)
	assert.Len(t, entries, 3)

	entries = nil
	getJSON(t, srv.URL+"/api/search?q=nothing", &entries)
	assert.Empty(t, entries)
}

func TestHandleImage(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/image?page=0")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/api/image?page=1")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/api/image?page=7")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleHelp(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/help")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), model.Version)
}
