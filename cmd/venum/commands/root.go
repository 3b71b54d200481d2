// Package commands implements the venum command line.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// app holds the state shared by the subcommands of one invocation.
type app struct {
	opts *Options
	log  *slog.Logger
}

// NewRootCmd returns the venum command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "venum",
		Short: "Generate typed enumerations with runtime reflection",
		Long: `venum generates strongly typed enumerations from a list of named integral
constants. Every generated type knows its names, values and range, and can be
looked up by name or value, validated and iterated.

Declarations are read from a .yaml, .yml, .toml or .json file, or extracted
from the constants of a Go package (--type Source[=Target]).

Configuration is read from ./venum.yaml, VENUM_* environment variables and
flags, in increasing order of precedence.

Examples:
  venum generate ./color/colors.yaml           # Generate color/color_enum.go
  venum generate --features text,sql ./color/colors.yaml
  venum generate --type level=Level ./internal/log
  venum check ./color/colors.yaml              # Fail if files are out of date
  venum inspect ./color/colors.yaml            # Print evaluated constants
  venum watch ./color/colors.yaml              # Regenerate on change`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			v, err := newViper(cmd.Flags())
			if err != nil {
				return err
			}
			if a.opts, err = loadOptions(v); err != nil {
				return err
			}
			a.log, err = a.opts.Logger(cmd.ErrOrStderr())
			return err
		},
	}
	addFlags(root.PersistentFlags())
	root.AddCommand(
		newGenerateCmd(a),
		newCheckCmd(a),
		newInspectCmd(a),
		newWatchCmd(a),
		newVersionCmd(),
	)
	return root
}
