package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ruminaider/selectv2/internal/config"
	"github.com/ruminaider/selectv2/internal/filter"
	"github.com/ruminaider/selectv2/internal/item"
	"github.com/ruminaider/selectv2/internal/store"
)

// widgetFlags are the flags shared by demo and filter. Each overrides the
// config file value when set.
type widgetFlags struct {
	items    string
	source   string
	multiple bool
	create   bool
	pageSize int
}

func (f *widgetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.items, "items", "", "YAML items file (default: built-in fruit list)")
	cmd.Flags().StringVar(&f.source, "source", "", "Item source: static, fetch or paged")
	cmd.Flags().BoolVar(&f.multiple, "multiple", false, "Allow several selected items")
	cmd.Flags().BoolVar(&f.create, "create", false, "Allow creating items from the search text")
	cmd.Flags().IntVar(&f.pageSize, "page-size", 0, "Page size of the paged source")
}

// apply copies every flag the user set onto cfg.
func (f *widgetFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("source") {
		cfg.Source = f.source
	}
	if cmd.Flags().Changed("multiple") {
		cfg.Multiple = f.multiple
	}
	if cmd.Flags().Changed("create") {
		cfg.CreationEnabled = f.create
	}
	if cmd.Flags().Changed("page-size") {
		cfg.PageSize = f.pageSize
	}
	return cfg.Validate()
}

var (
	filterFlags  widgetFlags
	filterSearch string
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Print the rows shown for a search",
	Long:  "Loads the items the way the interactive select does and prints the filtered rows for --search without starting the UI.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := filterFlags.apply(cmd, &cfg); err != nil {
			return err
		}
		items, err := loadItems(filterFlags.items)
		if err != nil {
			return err
		}
		return runFilter(cmd.OutOrStdout(), cfg, items, filterSearch)
	},
}

func init() {
	filterFlags.register(filterCmd)
	filterCmd.Flags().StringVar(&filterSearch, "search", "", "Search text")
}

// runFilter computes the rows for search and prints them to w.
func runFilter(w io.Writer, cfg config.Config, items []item.Item, search string) error {
	ds, err := newDemoSource(cfg.Kind(), items, cfg.PageSize, 0)
	if err != nil {
		return err
	}

	opts := cfg.StoreOptions()
	// Creation needs the interactive UI; filter only lists.
	opts.CreationEnabled = false
	opts.Source = ds.src
	opts.Logger = newLogger(os.Stderr)
	s, err := store.New(opts)
	if err != nil {
		return err
	}

	if err := ds.preload(s, search); err != nil {
		return fmt.Errorf("loading items: %w", err)
	}
	s.SetSearch(search)
	printRows(w, s.Rows())
	return nil
}

// printRows writes one line per row: category dividers, "title (value)"
// for items and a marker when nothing matched.
func printRows(w io.Writer, rows []filter.Row) {
	for _, r := range rows {
		switch r.Kind {
		case filter.KindCategory:
			fmt.Fprintf(w, "── %s ──\n", r.Title)
		case filter.KindItem:
			fmt.Fprintf(w, "  %s (%s)\n", r.Item.Title, item.Key(r.Item.Value))
		case filter.KindNotFound:
			fmt.Fprintln(w, "  (no results)")
		}
	}
}
