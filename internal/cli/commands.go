package cli

import (
	"fmt"
	"strings"

	"github.com/gostonefire/coursecatalog"
	"github.com/gostonefire/coursecatalog/errs"
	"github.com/gostonefire/coursecatalog/internal/config"
	"github.com/gostonefire/coursecatalog/internal/display"
	"github.com/spf13/cobra"
)

func newValidateCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a course file for malformed rows and unknown prerequisites",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := coursecatalog.Validate(cfg.Catalog.File)
			if err != nil {
				return fmt.Errorf("could not validate data in file %s: %w", cfg.Catalog.File, err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d courses\n", cfg.Catalog.File, rows)
			return err
		},
	}
}

func newListCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list [file]",
		Short: "Print every course in course number order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, _, err := openCatalog(cfg)
			if err != nil {
				return err
			}

			r := display.NewRenderer(cmd.OutOrStdout(), cfg.Display.AccentColor)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), r.CourseList(catalog.ListSorted()))
			return err
		},
	}
}

func newFindCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "find <number>...",
		Short: "Print one or more courses by course number",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, _, err := openCatalog(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			r := display.NewRenderer(out, cfg.Display.AccentColor)
			var missing []string
			for _, number := range args {
				course, found := catalog.Find(number)
				if !found {
					missing = append(missing, number)
					fmt.Fprintln(out, r.NotFound(number))
					continue
				}
				fmt.Fprintln(out, r.Course(course))
			}

			if len(missing) > 0 {
				return fmt.Errorf("%s: %w", strings.Join(missing, ", "), errs.NoRecordFound{})
			}
			return nil
		},
	}
}

func newStatCommand(cfg *config.Config) *cobra.Command {
	var distribution bool

	cmd := &cobra.Command{
		Use:   "stat [file]",
		Short: "Show how courses are spread over the table buckets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, info, err := openCatalog(cfg)
			if err != nil {
				return err
			}

			stat, err := catalog.Stat(distribution)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			r := display.NewRenderer(out, cfg.Display.AccentColor)
			fmt.Fprintln(out, r.Stat(info, stat))
			if distribution {
				for i, n := range stat.BucketDistribution {
					if n > 0 {
						fmt.Fprintf(out, "%6d: %d\n", i, n)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&distribution, "distribution", false, "also print the number of courses in every used bucket")

	return cmd
}
