package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"recipeview/internal/model"
	"recipeview/internal/nav"
	"recipeview/internal/search"
)

//go:embed static/*
var staticFS embed.FS

//go:embed help.md
var helpMD string

// Server exposes a read-only view of a recipe collection over HTTP.
// Every request gets its own controller, so requests never share page state.
type Server struct {
	recipes *model.Collection
	opts    []nav.Option
	log     *slog.Logger
}

// NewServer returns a server for recipes. opts are applied to each
// per-request controller.
func NewServer(recipes *model.Collection, logger *slog.Logger, opts ...nav.Option) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{recipes: recipes, opts: opts, log: logger}
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	subFS, _ := fs.Sub(staticFS, "static")
	mux.Handle("/", http.FileServer(http.FS(subFS)))

	// API Endpoints
	mux.HandleFunc("/api/recipes", s.handleRecipes)
	mux.HandleFunc("/api/recipe", s.handleRecipe)
	mux.HandleFunc("/api/search", s.handleSearch)
	mux.HandleFunc("/api/image", s.handleImage)
	mux.HandleFunc("/api/help", handleHelp)
	return mux
}

// StartServer serves the web viewer on addr until the listener fails.
func (s *Server) StartServer(addr string) error {
	fmt.Printf("Starting recipeview web server at http://%s\n", displayAddr(addr))
	s.log.Info("web server listening", "addr", addr, "recipes", s.recipes.Len())
	return http.ListenAndServe(addr, s.Handler())
}

func displayAddr(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "localhost" + addr
	}
	return addr
}

// RecipeEntry is one row of the recipe index.
type RecipeEntry struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

func (s *Server) handleRecipes(w http.ResponseWriter, r *http.Request) {
	entries := make([]RecipeEntry, 0, s.recipes.Len())
	for i, rec := range s.recipes.All() {
		entries = append(entries, RecipeEntry{Index: i, Name: rec.Name})
	}
	writeJSON(w, entries)
}

// handleRecipe renders one page. Query parameters are replayed as controller
// events: page (Next/Previous), multiplier (PortionChanged), q (Search).
func (s *Server) handleRecipe(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := append([]nav.Option{nav.WithLogger(s.log)}, s.opts...)
	c := nav.New(s.recipes, opts...)

	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "invalid page", http.StatusBadRequest)
			return
		}
		nav.Seek(c, page)
	}
	if v := q.Get("multiplier"); v != "" {
		mult, err := strconv.ParseFloat(v, 64)
		if err != nil {
			http.Error(w, "invalid multiplier", http.StatusBadRequest)
			return
		}
		c.Update(nav.PortionChanged{Value: mult})
	}
	if q.Has("q") {
		c.Update(nav.SearchChanged{Text: q.Get("q")})
		c.Update(nav.Search{})
	}

	writeJSON(w, c.Snapshot())
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	matches := search.ByName(s.recipes, r.URL.Query().Get("q"))
	entries := make([]RecipeEntry, 0, len(matches))
	for _, m := range matches {
		entries = append(entries, RecipeEntry{Index: m.Index, Name: m.Recipe.Name})
	}
	writeJSON(w, entries)
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 0 || page >= s.recipes.Len() {
		http.Error(w, "invalid page", http.StatusBadRequest)
		return
	}
	info := model.ResolveImage(s.recipes.BaseDir, s.recipes.At(page).Image)
	if !info.Exists {
		http.Error(w, info.ErrorMsg, http.StatusNotFound)
		return
	}
	http.ServeFile(w, r, info.Path)
}

func handleHelp(w http.ResponseWriter, r *http.Request) {
	// Use the embedded help content
	text := strings.ReplaceAll(helpMD, "{{VERSION}}", model.Version)

	w.Header().Set("Content-Type", "text/markdown")
	w.Write([]byte(text))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
