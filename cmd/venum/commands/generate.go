package commands

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/syssam/venum/compiler"
	"github.com/syssam/venum/compiler/gen"
)

func newGenerateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "generate path...",
		Aliases: []string{"gen"},
		Short:   "Generate enum files from declarations",
		Long: `Generate one file per declared enum. A path is a declaration file or a Go
package; packages need at least one --type.

Files whose content did not change are left untouched.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.opts.Config(a.log)
			if err != nil {
				return err
			}
			for _, path := range args {
				if err := compiler.GenerateContext(cmd.Context(), path, cfg); err != nil {
					return errors.Wrapf(err, "generate %s", path)
				}
			}
			return nil
		},
	}
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check path...",
		Short: "Check if generated enum files are up to date",
		Long: `Check renders the enum files in memory and compares them with the files on
disk, without writing anything.

Exit codes:
  0 - Files are up to date
  1 - Files are out of date, or an error occurred`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.opts.Config(a.log, gen.WithCheck(true))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			var stale []string
			for _, path := range args {
				err := compiler.GenerateContext(cmd.Context(), path, cfg)
				var valErr *gen.ValidationError
				switch {
				case errors.As(err, &valErr):
					for _, f := range valErr.Files {
						stale = append(stale, path+": "+f)
					}
				case err != nil:
					return errors.Wrapf(err, "check %s", path)
				}
			}
			if len(stale) == 0 {
				fmt.Fprintln(out, "✓ Enums are up to date")
				return nil
			}
			fmt.Fprintln(out, "✗ Enums are out of date:")
			for _, f := range stale {
				fmt.Fprintf(out, "  - %s\n", f)
			}
			return errors.WithHint(
				errors.Newf("%d generated files are out of date", len(stale)),
				"run venum generate to update them",
			)
		},
	}
}
