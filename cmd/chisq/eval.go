// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/aclements/go-tailmath/stats"
)

func (a *app) cdfCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cdf [--] [x...]",
		Short: "Print Pr[X <= x], or Pr[X > x] with --tail upper",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), args, func(d stats.ChiSquared[float64], x float64, tail stats.Tail) (float64, error) {
				return stats.Eval(d, x, tail)
			})
		},
	}
}

func (a *app) quantileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quantile [--] [p...]",
		Short: "Print the x at which the selected tail is p",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), args, func(d stats.ChiSquared[float64], p float64, tail stats.Tail) (float64, error) {
				return stats.Inverse(d, p, tail)
			})
		},
	}
}

func (a *app) tableCmd() *cobra.Command {
	var from, to, step float64
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print x, Pr[X <= x] and Pr[X > x] over a range of x",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.summarize()
			if !(step > 0) || !(to >= from) {
				return fmt.Errorf("need --step > 0 and --to >= --from")
			}
			d := a.dist()
			tol := a.policy.Tolerance()
			w := bufio.NewWriter(a.stdout)
			defer w.Flush()
			failed := 0
			for i := 0; ; i++ {
				x := from + float64(i)*step
				if x > to {
					break
				}
				p, err1 := d.CDF(x)
				q, err2 := stats.Complement(d, x).CDF()
				for _, err := range []error{err1, err2} {
					if err != nil {
						a.logger.Error("evaluation failed", "x", x, "error", err)
						failed++
					}
				}
				if err1 == nil && err2 == nil && !tol.Close(1, p+q) {
					a.logger.Warn("tails do not sum to 1", "x", x, "lower", p, "upper", q)
				}
				fmt.Fprintf(w, "%.17g\t%.17g\t%.17g\n", x, p, q)
			}
			if failed > 0 {
				return errFailed(failed)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&from, "from", 0, "first x")
	cmd.Flags().Float64Var(&to, "to", 10, "last x")
	cmd.Flags().Float64Var(&step, "step", 1, "x increment")
	return cmd
}

func (a *app) dist() stats.ChiSquared[float64] {
	return stats.ChiSquared[float64]{K: a.dof, Policy: a.policy}
}

type evalFunc func(d stats.ChiSquared[float64], v float64, tail stats.Tail) (float64, error)

// run applies f to every input value, at most cfg.Jobs at a time, and
// prints the results in input order.
func (a *app) run(ctx context.Context, args []string, f evalFunc) error {
	defer a.summarize()
	var inputs []string
	if len(args) > 0 {
		inputs = args
	} else {
		var err error
		if inputs, err = readInput(a.stdin); err != nil {
			return err
		}
	}
	values := make([]float64, len(inputs))
	for i, in := range inputs {
		v, err := strconv.ParseFloat(in, 64)
		if err != nil {
			return err
		}
		values[i] = v
	}

	d, tail := a.dist(), a.tail
	results := make([]float64, len(values))
	errs := make([]error, len(values))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Jobs)
	for i, v := range values {
		i, v := i, v
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i], errs[i] = f(d, v, tail)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w := bufio.NewWriter(a.stdout)
	defer w.Flush()
	failed := 0
	for i, v := range values {
		if errs[i] != nil {
			a.logger.Error("evaluation failed", "input", v, "error", errs[i])
			failed++
		}
		fmt.Fprintf(w, "%s\t%.17g\n", inputs[i], results[i])
	}
	if failed > 0 {
		return errFailed(failed)
	}
	return nil
}

// readInput returns the non-blank lines of r.
func readInput(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		lines = append(lines, l)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
