// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pitheorem/dimension"
)

func (a *app) presetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the preset quantities usable with --preset and in problem files",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tSYMBOL\tM\tL\tT\tDESCRIPTION")
			for _, p := range dimension.Presets() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", p.Key, p.Symbol,
					p.Dims.At(dimension.Mass).RatString(),
					p.Dims.At(dimension.Length).RatString(),
					p.Dims.At(dimension.Time).RatString(),
					p.Description)
			}

			return tw.Flush()
		},
	}
}
