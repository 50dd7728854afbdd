package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"recipeview/internal/config"
	"recipeview/internal/loader"
	"recipeview/internal/model"
	"recipeview/internal/nav"
	"recipeview/internal/report"
	"recipeview/internal/tui"
	"recipeview/internal/web"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

// Release source for --update. Set at build time with
// -ldflags "-X main.updateOwner=... -X main.updateRepo=...".
var (
	updateOwner = "recipeview"
	updateRepo  = "recipeview"
)

func releaseTag() *latest.GithubTag {
	return &latest.GithubTag{
		Owner:      updateOwner,
		Repository: updateRepo,
	}
}

func releasesURL() string {
	return fmt.Sprintf("https://github.com/%s/%s/releases", updateOwner, updateRepo)
}

func checkUpdate(currentVer string) {
	res, err := latest.Check(releaseTag(), currentVer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not check %s for updates: %v\n", releasesURL(), err)
		return
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Printf("👉 Download it from %s\n", releasesURL())
	} else if pflag.Lookup("update").Changed {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: recipeview [options]\n\n")
		fmt.Fprintf(os.Stderr, "recipeview pages through a recipe collection and rescales ingredient\n")
		fmt.Fprintf(os.Stderr, "quantities for the number of portions you want to cook.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  recipeview                         # Start TUI with recipes.json\n")
		fmt.Fprintf(os.Stderr, "  recipeview -f book.toml --list     # Table of all recipes\n")
		fmt.Fprintf(os.Stderr, "  recipeview -r --search Bread -m 2  # Print a recipe for twice the portions\n")
		fmt.Fprintf(os.Stderr, "  recipeview --json -f book.yaml     # Convert a collection to JSON\n")
	}

	fileFlag := pflag.StringP("file", "f", "", "Recipe file (.json, .yaml, .toml, or - for stdin)")
	configFlag := pflag.String("config", "", "Config file (default .recipeview.yaml)")
	reportFlag := pflag.BoolP("report", "r", false, "Print one recipe page as text")
	pageFlag := pflag.IntP("page", "p", 0, "Page to print with --report")
	multiplierFlag := pflag.Float64P("multiplier", "m", 1.0, "Portion multiplier for --report")
	searchFlag := pflag.StringP("search", "s", "", "Jump to the last recipe whose name contains this text (--report)")
	outputFlag := pflag.StringP("output", "o", "", "Save report to the specified file (combined with --report)")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Include page and image details in the report")
	listFlag := pflag.BoolP("list", "l", false, "List all recipes as a table")
	jsonFlag := pflag.BoolP("json", "j", false, "Output the recipe collection as JSON")
	webFlag := pflag.BoolP("web", "w", false, "Start Web Mode (default http://localhost:8080)")
	logFlag := pflag.String("log", "", "Write diagnostic log lines to this file")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check GitHub releases ("+updateOwner+"/"+updateRepo+") for a newer version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("recipeview version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	if err := config.Init(*configFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *fileFlag != "" {
		cfg.RecipeFile = *fileFlag
	}
	if *logFlag != "" {
		cfg.LogFile = *logFlag
	}

	if !*webFlag && !*listFlag && !*jsonFlag && !*reportFlag {
		// Default: TUI, which loads the collection itself
		runTuiMode(cfg)
		return
	}

	recipes, err := loader.Load(cfg.RecipeFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading recipes: %v\n", err)
		os.Exit(1)
	}

	if *webFlag {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		srv := web.NewServer(recipes, logger, nav.WithBounds(cfg.MinMultiplier, cfg.MaxMultiplier))
		if err := srv.StartServer(cfg.WebAddr); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *listFlag {
		fmt.Println(report.List(recipes))
		return
	}

	if *jsonFlag {
		runJsonMode(recipes)
		return
	}

	if *reportFlag {
		opts := reportOptions{
			page:       *pageFlag,
			multiplier: *multiplierFlag,
			search:     *searchFlag,
			searchSet:  pflag.Lookup("search").Changed,
			output:     *outputFlag,
			verbose:    *verboseFlag,
		}
		runReportMode(recipes, cfg, opts)
	}
}

type reportOptions struct {
	page       int
	multiplier float64
	search     string
	searchSet  bool
	output     string
	verbose    bool
}

func runReportMode(recipes *model.Collection, cfg config.Config, opts reportOptions) {
	c := nav.New(recipes,
		nav.WithBounds(cfg.MinMultiplier, cfg.MaxMultiplier),
		nav.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))),
	)
	nav.Seek(c, opts.page)
	c.Update(nav.PortionChanged{Value: opts.multiplier})
	if opts.searchSet {
		c.Update(nav.SearchChanged{Text: opts.search})
		if c.Update(nav.Search{}) == nav.SearchNoMatch {
			fmt.Fprintf(os.Stderr, "No recipe matches %q, showing page %d\n", opts.search, c.State().Page)
		}
	}

	out := report.Generate(c, recipes.BaseDir, opts.verbose)

	if opts.output != "" {
		err := os.WriteFile(opts.output, []byte(out), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report to %s: %v\n", opts.output, err)
			os.Exit(1)
		}
		fmt.Printf("Report saved to %s\n", opts.output)
	} else {
		fmt.Print(out)
	}
}

func runJsonMode(recipes *model.Collection) {
	data, err := (&loader.JSONFormat{}).Encode(recipes.All())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding recipes: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(append(data, '\n'))
}

func runTuiMode(cfg config.Config) {
	closeLog, err := setupTuiLogging(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	m := tui.NewModel(cfg.RecipeFile, cfg.MultiplierStep,
		nav.WithBounds(cfg.MinMultiplier, cfg.MaxMultiplier),
		nav.WithLogger(slog.Default()),
	)
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	if fm, ok := final.(tui.AppModel); ok && fm.Err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error loading recipes: %v\n", fm.Err)
		os.Exit(1)
	}
}

// setupTuiLogging keeps log output off the alternate screen: it goes to the
// log file when one is configured and is discarded otherwise.
func setupTuiLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "recipeview")
	if err != nil {
		return nil, fmt.Errorf("log file %s: %w", path, err)
	}
	return func() { f.Close() }, nil
}
