package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ruminaider/selectv2/internal/config"
	"github.com/ruminaider/selectv2/internal/paths"
)

var version = "0.1.0"

var (
	debugFlag  bool
	configFlag string
)

var rootCmd = &cobra.Command{
	Use:   "selectv2",
	Short: "Searchable select for the terminal",
	Long:  "selectv2 runs a searchable single- or multi-select over a static, fetched or paginated item list, with optional creation of new items.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the demo
		return demoCmd.RunE(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "selectv2 %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Log store activity (to stderr, or to ~/.selectv2/debug.log for the demo)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Config file (default ~/.selectv2/config.yaml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(filterCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file named by --config, or the default one.
func loadConfig() (config.Config, error) {
	path := configFlag
	if path == "" {
		path = paths.ConfigFile()
	}
	return config.Load(path)
}

// newLogger returns a debug logger writing to w when --debug is set, and
// nil otherwise so the store stays quiet.
func newLogger(w io.Writer) *log.Logger {
	if !debugFlag {
		return nil
	}
	return log.NewWithOptions(w, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		Prefix:          "selectv2",
	})
}

// openLogFile opens the demo's debug log, creating ~/.selectv2 if needed.
func openLogFile() (*os.File, error) {
	if err := os.MkdirAll(paths.AppDir(), 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", paths.AppDir(), err)
	}
	return os.OpenFile(paths.LogFile(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
