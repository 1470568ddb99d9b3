// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// chisq evaluates the chi-squared distribution from either tail.
//
// Values are taken from the command line or, if there are none, as
// newline-separated numbers on stdin. Each result is printed as
//
//	input<TAB>result
//
// For example, the 1e-9 critical value for 4 degrees of freedom is
//
//	chisq quantile --dof 4 --complement 1e-9
//
// Negative values must follow "--" so they are not read as flags:
//
//	chisq cdf --dof 2 -- -1 1
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/aclements/go-tailmath/internal/config"
	"github.com/aclements/go-tailmath/policy"
	"github.com/aclements/go-tailmath/policy/promreport"
	"github.com/aclements/go-tailmath/stats"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "chisq:", err)
		os.Exit(1)
	}
}

// app holds the flags and the state shared by all subcommands.
type app struct {
	configPath string
	nan        bool
	logLevel   string
	jobs       int

	dof        float64
	complement bool
	tailName   string
	tail       stats.Tail

	stdin          io.Reader
	stdout, stderr io.Writer

	cfg    config.Config
	logger *slog.Logger
	policy *policy.Policy
	reg    *prometheus.Registry
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	root := &cobra.Command{
		Use:           "chisq",
		Short:         "Evaluate the chi-squared distribution from either tail",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration `file`")
	pf.BoolVar(&a.nan, "nan", false, "print NaN for failed evaluations instead of failing")
	pf.StringVar(&a.logLevel, "log-level", "", "log `level` (debug, info, warn, error)")
	pf.IntVar(&a.jobs, "jobs", 0, "maximum concurrent evaluations")
	pf.Float64Var(&a.dof, "dof", 1, "degrees of freedom")
	pf.BoolVar(&a.complement, "complement", false, "use the upper tail (same as --tail upper)")
	pf.StringVar(&a.tailName, "tail", "lower", "`tail` of the distribution (lower or upper)")

	root.AddCommand(a.cdfCmd(), a.quantileCmd(), a.tableCmd())
	return root
}

// setup resolves the configuration file and flag overrides and builds
// the logger and numeric policy.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("nan") {
		cfg.ErrorMode = policy.ModeError.String()
		if a.nan {
			cfg.ErrorMode = policy.ModeNaN.String()
		}
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("jobs") {
		cfg.Jobs = a.jobs
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.tail, err = stats.ParseTail(a.tailName); err != nil {
		return err
	}
	if a.complement {
		if flags.Changed("tail") && a.tail != stats.Upper {
			return fmt.Errorf("--complement conflicts with --tail %s", a.tail)
		}
		a.tail = stats.Upper
	}

	level, _ := cfg.Level()
	noColor := true
	if f, ok := a.stderr.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	a.logger = slog.New(tint.NewHandler(a.stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor,
	}))

	a.reg = prometheus.NewRegistry()
	reporter, err := promreport.New(a.reg)
	if err != nil {
		return err
	}
	a.policy, err = cfg.Policy(a.logger, reporter)
	if err != nil {
		return err
	}
	a.logger.Debug("configured", "mode", a.policy.Mode(), "jobs", cfg.Jobs, "config", a.configPath)
	return nil
}

// summarize logs the number of failures counted during the run. It
// runs whether or not the subcommand succeeded.
func (a *app) summarize() {
	if a.reg == nil {
		return
	}
	n, err := failures(a.reg)
	if err != nil {
		a.logger.Error("gathering metrics", "error", err)
		return
	}
	if n > 0 {
		a.logger.Warn("evaluation finished", "failures", n)
	} else {
		a.logger.Info("evaluation finished", "failures", n)
	}
}

// failures sums tailmath_failures_total over all label values.
func failures(g prometheus.Gatherer) (int, error) {
	mfs, err := g.Gather()
	if err != nil {
		return 0, err
	}
	var total float64
	for _, mf := range mfs {
		if mf.GetName() != "tailmath_failures_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	return int(total), nil
}

// errFailed is returned when any evaluation failed in error mode. The
// individual failures have already been logged.
type errFailed int

func (e errFailed) Error() string {
	return fmt.Sprintf("%d evaluations failed", int(e))
}
