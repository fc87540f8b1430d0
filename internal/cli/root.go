// Package cli holds the cobra commands of the coursecatalog binary.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gostonefire/coursecatalog"
	"github.com/gostonefire/coursecatalog/internal/config"
	"github.com/gostonefire/coursecatalog/internal/display"
	"github.com/gostonefire/coursecatalog/internal/logging"
	"github.com/gostonefire/coursecatalog/internal/menu"
	"github.com/gostonefire/coursecatalog/internal/tui"
	"github.com/spf13/cobra"
)

// NewRootCommand returns the root command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	cfg := config.MustDefault()

	rootCmd := &cobra.Command{
		Use:   "coursecatalog [file]",
		Short: "Look up courses and their prerequisites",
		Long: `coursecatalog validates a comma delimited course file, then lets you load it,
print every course in course number order or look up a single course.

Each row holds a course number, a title and zero or more prerequisite course numbers.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && cmd.Name() != "find" {
				cfg.Catalog.File = args[0]
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("config validation: %w", err)
			}
			logging.Setup(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, cfg)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfg.Catalog.File, "file", "f", cfg.Catalog.File, "course file to validate and load")
	flags.Int64Var(&cfg.Catalog.TableSize, "table-size", cfg.Catalog.TableSize, "number of buckets, 0 uses the validated row count")
	flags.StringVar(&cfg.Catalog.Hash, "hash", cfg.Catalog.Hash, "bucket selection algorithm: polynomial or crc32")
	flags.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "log level: debug, info, warn or error")
	flags.StringVar(&cfg.Logging.Format, "log-format", cfg.Logging.Format, "log format: text or json")
	flags.StringVar(&cfg.Display.AccentColor, "accent", cfg.Display.AccentColor, "accent color for titles and menus")
	rootCmd.Flags().BoolVar(&cfg.Display.Plain, "plain", cfg.Display.Plain, "use the line driven menu instead of the interactive form")

	rootCmd.AddCommand(
		newValidateCommand(cfg),
		newListCommand(cfg),
		newFindCommand(cfg),
		newStatCommand(cfg),
	)

	return rootCmd
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// runMenu validates the course file, creates a table sized to it and hands control to the menu.
// Courses are only loaded when the user picks Load Courses.
func runMenu(cmd *cobra.Command, cfg *config.Config) error {
	path := cfg.Catalog.File

	rows, err := coursecatalog.Validate(path)
	if err != nil {
		return fmt.Errorf("could not validate data in file %s: %w", path, err)
	}

	catalog, info, err := coursecatalog.NewCatalog(coursecatalog.TableSizeFor(rows, cfg.Catalog.TableSize), cfg.Catalog.HashAlgorithm())
	if err != nil {
		return err
	}
	slog.Info("catalog ready", "path", path, "rows", rows, "buckets", info.NumberOfBuckets)

	out := cmd.OutOrStdout()
	if cfg.Display.Plain || !isTerminal(cmd) {
		return menu.Run(catalog, path, display.NewRenderer(out, cfg.Display.AccentColor), cmd.InOrStdin(), out)
	}

	return tui.Run(catalog, path, cfg.Display.AccentColor, out)
}

// isTerminal reports whether the command reads from an interactive terminal
func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		return false
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return stat.Mode()&os.ModeCharDevice != 0
}

// openCatalog validates and loads the configured course file
func openCatalog(cfg *config.Config) (*coursecatalog.Catalog, coursecatalog.CatalogInfo, error) {
	catalog, info, err := coursecatalog.Open(cfg.Catalog.File, cfg.Catalog.TableSize, cfg.Catalog.HashAlgorithm())
	if err != nil {
		return nil, info, fmt.Errorf("could not open catalog %s: %w", cfg.Catalog.File, err)
	}
	return catalog, info, nil
}
