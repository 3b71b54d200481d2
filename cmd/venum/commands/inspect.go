package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/syssam/venum/compiler"
	"github.com/syssam/venum/compiler/gen"
)

// inspectEnum is the JSON form of an evaluated enum.
type inspectEnum struct {
	Name      string            `json:"name"`
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	File      string            `json:"file"`
	Constants []inspectConstant `json:"constants"`
	Range     gen.Range         `json:"range"`
}

type inspectConstant struct {
	Name  string `json:"name"`
	Ident string `json:"ident"`
	Value string `json:"value"`
}

func newInspectCmd(a *app) *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:   "inspect path",
		Short: "Print the evaluated constants and range of each enum",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.opts.Config(a.log)
			if err != nil {
				return err
			}
			graph, err := compiler.LoadGraph(args[0], cfg)
			if err != nil {
				return errors.Wrapf(err, "inspect %s", args[0])
			}
			enums := make([]inspectEnum, len(graph.Nodes))
			for i, t := range graph.Nodes {
				enums[i] = inspectEnum{Name: t.Name, ID: t.ID, Type: t.Underlying, File: t.FileName(), Range: t.Range}
				for _, c := range t.Constants {
					enums[i].Constants = append(enums[i].Constants, inspectConstant{Name: c.Name, Ident: c.Ident, Value: c.Value})
				}
			}
			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(enums)
			}
			for _, e := range enums {
				if err := printEnum(cmd.OutOrStdout(), e); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	return cmd
}

// printEnum writes the enum as a header line and a table of its constants.
func printEnum(w io.Writer, e inspectEnum) error {
	fmt.Fprintf(w, "%s (%s) %s -> %s\n", pterm.Bold.Sprint(e.Name), e.Type, e.ID, e.File)
	fmt.Fprintf(w, "size %d, span %d, min %s, max %s, first %s, last %s\n",
		e.Range.Size, e.Range.Span, e.Range.Min, e.Range.Max, e.Range.First, e.Range.Last)
	data := pterm.TableData{{"#", "Name", "Value", "Identifier"}}
	for i, c := range e.Constants {
		data = append(data, []string{strconv.Itoa(i), c.Name, c.Value, c.Ident})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "render table")
	}
	_, err = fmt.Fprintln(w, table)
	return err
}
