package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/doppel/internal/catalog"
	"github.com/dbsmedya/doppel/internal/config"
	"github.com/dbsmedya/doppel/internal/digest"
	"github.com/dbsmedya/doppel/internal/grouper"
	"github.com/dbsmedya/doppel/internal/logger"
	"github.com/dbsmedya/doppel/internal/report"
	"github.com/dbsmedya/doppel/internal/resolver"
	"github.com/dbsmedya/doppel/internal/types"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile        string
	logLevel       string
	logFormat      string
	compareContent bool
	dryRun         bool
	autoMode       bool
	verbose        bool
)

// Exit codes honored by the process.
const (
	exitAborted    = 1
	exitPermission = 2
	exitFilesystem = 3
)

var rootCmd = &cobra.Command{
	Use:   "doppel [directory]",
	Short: "Find and eliminate duplicate filenames in a directory tree",
	Long: `doppel scans a directory tree for files sharing the same name and
interactively removes the copies you select. Nothing is ever deleted
without an explicit confirmation, and at least one copy of every
duplicate always survives.

Examples:
  doppel                    # Search current directory
  doppel /path/to/folder    # Search specific directory
  doppel --content ~/docs   # Compare file content too
  doppel --dry-run .        # Preview without deletion
  doppel --auto ~/downloads # Keep newest copy from each set`,
	Version:       Version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// exitError carries a process exit code alongside the cause.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "doppel.yaml",
		"Path to configuration file")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Run behavior
	rootCmd.Flags().BoolVar(&compareContent, "content", false,
		"Compare file content, not just names (slower but more accurate)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"Show duplicates without interactive removal")
	rootCmd.Flags().BoolVar(&autoMode, "auto", false,
		"Automatically keep newest file from each duplicate set")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"Show detailed progress information")
}

func runRoot(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	// A config file is only required when the operator named one.
	cfg, err := config.Load(cfgFile, cmd.Flags().Changed("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ApplyOverrides(logLevel, logFormat, verbose)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	runID := uuid.NewString()
	log = log.WithRun(runID)

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return &exitError{code: exitFilesystem, err: err}
	}

	mode := "name"
	if compareContent {
		mode = "content"
	}
	log.Infow("starting scan",
		"version", Version,
		"root", absRoot,
		"mode", mode,
		"dry_run", dryRun,
		"auto", autoMode,
	)

	osFs := afero.NewOsFs()
	renderer := newConsoleRenderer(os.Stdout, compareContent)

	if verbose {
		renderer.Notice(fmt.Sprintf("doppel %s - duplicate file eliminator", Version))
		renderer.Notice(fmt.Sprintf("scanning mode: %s comparison", mode))
	}

	walker := catalog.NewWalker(osFs, cfg, log)
	groups := grouper.New(cfg.Scan.CaseSensitive)

	renderer.Notice(fmt.Sprintf("Scanning directory: %s", absRoot))
	if err := walker.Walk(absRoot, func(rec types.FileRecord) error {
		groups.Add(rec)
		return nil
	}); err != nil {
		return rootPathExit(err)
	}
	renderer.Notice(fmt.Sprintf("Scan complete. Found %d files.", walker.Scanned()))

	duplicates := groups.Groups()

	var classifier *grouper.Classifier
	if compareContent {
		dig := digest.New(osFs, cfg.Hash.Algorithm, cfg.Hash.ChunkSize)
		classifier = grouper.NewClassifier(dig, log)
	}

	var provider resolver.DecisionProvider
	interactive := !dryRun && len(duplicates) > 0
	if interactive {
		term, err := newTerminalProvider()
		if err != nil {
			return fmt.Errorf("failed to open terminal input: %w", err)
		}
		defer term.Close()

		prompt := "Proceed with interactive removal?"
		if autoMode {
			renderer.Notice("Auto mode: will keep the newest file from each duplicate set.")
			prompt = "Proceed with automatic removal?"
		}
		ok, err := term.Confirm(prompt)
		if err != nil || !ok {
			renderer.Notice("Cancelled.")
			return nil
		}
		provider = term
	}

	agg := report.New(runID, dryRun)
	engine := resolver.NewEngine(osFs, classifier, provider, renderer, agg, log,
		resolver.Options{DryRun: dryRun, Auto: autoMode, Content: compareContent})

	rep := engine.Run(duplicates)
	log.Infow("run finished",
		"groups", rep.GroupsFound,
		"processed", rep.GroupsProcessed,
		"removed", rep.FilesRemoved,
		"failed", rep.FilesFailed,
		"bytes_freed", rep.BytesFreed,
		"aborted", rep.Aborted,
	)

	if rep.Aborted {
		return &exitError{code: exitAborted, err: errors.New("aborted by operator")}
	}
	return nil
}

// rootPathExit maps a fatal root error to the documented exit codes:
// permission problems exit 2, other filesystem errors exit 3, and a
// missing or non-directory root is a generic failure.
func rootPathExit(err error) error {
	var pathErr *types.PathError
	if !errors.As(err, &pathErr) {
		return &exitError{code: exitFilesystem, err: err}
	}
	switch {
	case errors.Is(pathErr.Err, fs.ErrPermission):
		return &exitError{code: exitPermission, err: err}
	case errors.Is(pathErr.Err, fs.ErrNotExist), errors.Is(pathErr.Err, catalog.ErrNotDirectory):
		return &exitError{code: exitAborted, err: err}
	default:
		return &exitError{code: exitFilesystem, err: err}
	}
}
