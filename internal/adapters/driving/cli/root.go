// Package cli wires the cobra command surface for supergrep.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/supergrep-dev/supergrep/internal/adapters/driven/console"
	"github.com/supergrep-dev/supergrep/internal/classify"
	"github.com/supergrep-dev/supergrep/internal/config"
	"github.com/supergrep-dev/supergrep/internal/core/services"
	"github.com/supergrep-dev/supergrep/internal/extractors/odt"
	"github.com/supergrep-dev/supergrep/internal/extractors/pdf"
	"github.com/supergrep-dev/supergrep/internal/extractors/plaintext"
	"github.com/supergrep-dev/supergrep/internal/logger"
	"github.com/supergrep-dev/supergrep/internal/pathwalk"
)

// version is set at build time via -ldflags.
var version = "dev"

// Exit codes follow grep's convention; 2 covers configuration and usage
// errors.
const (
	exitMatched = 0
	exitNoMatch = 1
	exitUsage   = 2
)

var (
	flagAll       bool
	flagRecursive bool
	flagWorkers   int
	flagJSON      bool
	flagVerbose   bool
	flagNoColor   bool
)

// exitCode is set by runSearch; cobra's own error path only covers usage
// and configuration failures.
var exitCode = exitMatched

var rootCmd = &cobra.Command{
	Use:   "supergrep PATTERN [PATHS...]",
	Short: "Grep inside plain text, PDF and OpenDocument files",
	Long: `supergrep searches plain text files, PDFs and OpenDocument Text
files for a literal pattern, in parallel, and reports each match with its
line number, page number or document section.

Results appear in the order the paths were listed, regardless of which
file finished first.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSearch,
}

func init() {
	rootCmd.Flags().BoolVarP(&flagAll, "all", "a", false, "search ALL files including spreadsheets (reserved, not yet implemented)")
	rootCmd.Flags().BoolVarP(&flagRecursive, "recursive", "r", false, "search directories recursively")
	rootCmd.Flags().IntVarP(&flagWorkers, "workers", "w", 0, "number of search workers (default: CPUs minus one)")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "output results as JSON, one object per matched file")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "disable coloured output")
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "supergrep: %v\n", err)
		return exitUsage
	}
	return exitCode
}

func runSearch(cmd *cobra.Command, args []string) error {
	exitCode = exitMatched
	logger.SetVerbose(flagVerbose)

	pattern := args[0]
	rawPaths := args[1:]
	logger.Info("pattern %q, %d paths, all=%v, recursive=%v", pattern, len(rawPaths), flagAll, flagRecursive)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	pdfExtractor := pdf.NewWithTool(cfg.PDFToText)
	// A missing converter is a configuration error: abort before any
	// search rather than failing file by file.
	if err := pdfExtractor.CheckAvailable(); err != nil {
		return err
	}

	presenter := console.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), flagJSON, colourEnabled(cfg))

	classifier := classify.New()
	registry := services.NewExtractorRegistry(
		plaintext.New(classifier),
		pdfExtractor,
		odt.New(),
	)

	paths := pathwalk.Expand(rawPaths, flagRecursive, func(path string, err error) {
		presenter.PresentError(path, err)
	})

	workers := flagWorkers
	if workers == 0 {
		workers = cfg.Workers
	}

	engine := services.NewEngine(classifier, registry, presenter, workers)
	stats := engine.Run(cmd.Context(), pattern, paths)
	logger.Info("searched %d files: %d matched, %d failed", stats.Searched, stats.Matched, stats.Failed)

	if stats.Matched == 0 {
		exitCode = exitNoMatch
	}
	return nil
}

// loadConfig reads ~/.supergrep/config.toml if present.
func loadConfig() (config.Config, error) {
	path, err := config.DefaultPath()
	if err != nil {
		// No home directory; run on defaults.
		return config.Config{}, nil
	}
	return config.Load(path)
}

// colourEnabled resolves the colour setting: the --no-color flag wins,
// then the config file, then TTY detection and NO_COLOR.
func colourEnabled(cfg config.Config) bool {
	if flagNoColor {
		return false
	}
	if cfg.Color != nil {
		return *cfg.Color
	}
	return os.Getenv("NO_COLOR") == "" && term.IsTerminal(int(os.Stdout.Fd()))
}
