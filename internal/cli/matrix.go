// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pitheorem/buckingham"
	"github.com/katalvlaran/pitheorem/dimension"
	"github.com/katalvlaran/pitheorem/matrix"
)

var matrixLong = heredoc.Doc(`
	Print the dimensional matrix of a problem (rows M, L, T; one column per
	variable), its reduced row-echelon form, the rank and the number of Pi
	terms the theorem predicts.
`)

func (a *app) matrixCommand() *cobra.Command {
	inline := &variableList{}
	cmd := &cobra.Command{
		Use:   "matrix [FILE]",
		Short: "Show the dimensional matrix and its reduced row-echelon form",
		Long:  matrixLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			srcs, err := a.sources(args, inline)
			if err != nil {
				return err
			}
			p, err := srcs[0].load()
			if err != nil {
				return err
			}
			set, err := p.Set()
			if err != nil {
				return err
			}
			names, m, err := buckingham.BuildMatrix(set)
			if err != nil {
				return err
			}

			return writeMatrix(a.out, names, m)
		},
	}
	addVariableFlags(cmd.Flags(), inline)

	return cmd
}

func writeMatrix(w io.Writer, names []string, m *matrix.Dense) error {
	reduced, pivots, err := matrix.RREF(m)
	if err != nil {
		return err
	}
	rank := len(pivots)

	var sb strings.Builder
	for i, b := range dimension.Bases() {
		row, err := m.Row(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(&sb, "%s %s\n", b, row)
	}

	_, err = fmt.Fprintf(w, "columns: %s\nmatrix:\n%srref:\n%spivots: %v\nrank: %d\npi terms: %d\n",
		strings.Join(names, ", "), sb.String(), reduced, pivots, rank, m.Cols()-rank)

	return err
}
