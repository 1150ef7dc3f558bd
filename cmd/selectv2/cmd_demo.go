package main

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/ruminaider/selectv2/cmd/selectv2/tui"
	"github.com/ruminaider/selectv2/internal/config"
	"github.com/ruminaider/selectv2/internal/item"
	"github.com/ruminaider/selectv2/internal/source"
	"github.com/ruminaider/selectv2/internal/store"
)

var (
	demoFlags   widgetFlags
	demoLatency time.Duration
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive select",
	Long:  "Runs the searchable select in the terminal and prints the chosen items on exit.",
	RunE:  runDemo,
}

func init() {
	demoFlags.register(demoCmd)
	demoCmd.Flags().DurationVar(&demoLatency, "latency", 300*time.Millisecond, "Simulated backend latency for fetched sources and creation")
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := demoFlags.apply(cmd, &cfg); err != nil {
		return err
	}
	items, err := loadItems(demoFlags.items)
	if err != nil {
		return err
	}

	// TTY guard: print the unfiltered rows when stdin is not a terminal
	// (piping, CI, scripts, etc.)
	if !term.IsTerminal(os.Stdin.Fd()) {
		return runFilter(cmd.OutOrStdout(), cfg, items, "")
	}

	if !cmd.Flags().Changed("source") {
		kind, err := promptSource(cfg.Source)
		if err != nil {
			return err
		}
		cfg.Source = kind
	}

	logger, closeLog, err := demoLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	s, err := newDemoStore(cfg, items, demoLatency, logger)
	if err != nil {
		return err
	}

	title := "Pick a fruit"
	if cfg.Multiple {
		title = "Pick some fruit"
	}
	p := tea.NewProgram(tui.NewModel(s, title))
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	m := finalModel.(tui.Model)
	if m.Cancelled() {
		return nil
	}
	printSelection(cmd.OutOrStdout(), m.Selected())
	return nil
}

// promptSource asks which source shape to demo, defaulting to current.
func promptSource(current string) (string, error) {
	kind := current
	selectField := huh.NewSelect[string]().
		Title("Item source").
		Options(
			huh.NewOption("Static list", source.KindStatic.String()),
			huh.NewOption("Single fetch (server-side search)", source.KindSingleFetch.String()),
			huh.NewOption("Paginated fetch", source.KindPaginated.String()),
		).
		Value(&kind)

	if err := huh.NewForm(huh.NewGroup(selectField)).Run(); err != nil {
		return "", fmt.Errorf("prompt cancelled: %w", err)
	}
	return kind, nil
}

// demoLogger opens the debug log file when --debug is set. The TUI owns
// the terminal, so logs cannot go to stderr.
func demoLogger() (*log.Logger, func(), error) {
	if !debugFlag {
		return nil, func() {}, nil
	}
	f, err := openLogFile()
	if err != nil {
		return nil, nil, err
	}
	return newLogger(f), func() { f.Close() }, nil
}

// newDemoStore wires the configured source and the demo create handler into
// a store.
func newDemoStore(cfg config.Config, items []item.Item, latency time.Duration, logger *log.Logger) (*store.Store, error) {
	ds, err := newDemoSource(cfg.Kind(), items, cfg.PageSize, latency)
	if err != nil {
		return nil, err
	}
	opts := cfg.StoreOptions()
	opts.Source = ds.src
	opts.Logger = logger
	if cfg.CreationEnabled {
		opts.OnCreate = createItem(latency)
	}
	return store.New(opts)
}

// printSelection writes "title (value)" per chosen item.
func printSelection(w io.Writer, items []item.Item) {
	for _, it := range items {
		fmt.Fprintf(w, "%s (%s)\n", it.Title, item.Key(it.Value))
	}
}
