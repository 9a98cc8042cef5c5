// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pitheorem/buckingham"
	"github.com/katalvlaran/pitheorem/matrix"
)

type solveOptions struct {
	inline variableList
}

var (
	solveLong = heredoc.Doc(`
		Solve one or more problems and print their dimensionless Pi terms.

		Problems are YAML documents (see examples/tip_clearance.yaml) given
		as FILE arguments, read from standard input when no FILE is given or
		FILE is "-", or built inline from repeated --var and --preset flags.
		Files are solved concurrently; results are printed in argument order.
		A problem that fails prints nothing and makes the exit status non-zero.
	`)

	solveExample = heredoc.Doc(`
		# Reynolds number from inline variables
		pitheorem solve --preset density --preset velocity --var D=0,1,0 --preset viscosity

		# The Chen et al. (1990) tip-clearance problem, as LaTeX
		pitheorem solve examples/tip_clearance.yaml -o latex

		# Several files, two at a time, machine-readable
		pitheorem solve -j 2 -o json a.yaml b.yaml
	`)
)

func (a *app) solveCommand() *cobra.Command {
	opts := &solveOptions{}
	cmd := &cobra.Command{
		Use:     "solve [FILE...]",
		Short:   "Compute the Pi terms of one or more problems",
		Long:    solveLong,
		Example: solveExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd.Context(), opts, args)
		},
	}

	fs := cmd.Flags()
	addVariableFlags(fs, &opts.inline)
	fs.IntP(keyJobs, "j", DefaultJobs, "number of problems solved concurrently")
	fs.Bool(keyIntegerBasis, matrix.DefaultIntegerBasis, "scale every Pi term to the smallest integer exponents")
	fs.Bool(keyVerify, DefaultVerify, "re-check that every Pi term is dimensionless")

	return cmd
}

func (a *app) runSolve(ctx context.Context, opts *solveOptions, args []string) error {
	srcs, err := a.sources(args, &opts.inline)
	if err != nil {
		return err
	}

	results := make([]*solved, len(srcs))
	errs := make([]error, len(srcs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Jobs)
	for i, src := range srcs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i], errs[i] = a.solveOne(src)

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return err
	}

	ok := make([]*solved, 0, len(results))
	failed := 0
	for i, s := range results {
		if errs[i] != nil {
			failed++
			a.log.WithField("problem", srcs[i].name).WithError(errs[i]).Error("solve failed")
			continue
		}
		ok = append(ok, s)
	}
	if err = writeResults(a.out, a.cfg.Output, ok); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d problems failed", failed, len(srcs))
	}

	return nil
}

// solveOne loads, validates, computes and optionally verifies one problem.
func (a *app) solveOne(src source) (*solved, error) {
	p, err := src.load()
	if err != nil {
		return nil, err
	}
	set, err := p.Set()
	if err != nil {
		return nil, err
	}
	res, err := buckingham.Compute(set, a.cfg.options()...)
	if err != nil {
		return nil, err
	}
	if a.cfg.Verify {
		if err = res.Verify(); err != nil {
			return nil, err
		}
	}
	a.log.WithFields(logrus.Fields{
		"problem":   src.name,
		"variables": set.Len(),
		"rank":      res.Rank,
		"terms":     len(res.Terms),
	}).Debug("solved")

	return &solved{source: src.name, title: p.Title, result: res}, nil
}
