// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package policy selects how numeric failures are surfaced.
//
// A domain error or convergence failure in a special function or
// distribution is passed through Result, which either returns it to
// the caller (ModeError) or replaces the result with a quiet NaN and
// drops the error (ModeNaN). The choice is made once per Policy, and
// a process-wide default Policy is used wherever none is given.
package policy // import "github.com/aclements/go-tailmath/policy"

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/aclements/go-tailmath/mathx"
)

// Mode is the action taken on a numeric failure.
type Mode int

const (
	// ModeError returns a descriptive error along with a NaN
	// result.
	ModeError Mode = iota

	// ModeNaN returns a quiet NaN and a nil error. Callers must
	// test the result with math.IsNaN.
	ModeNaN
)

func (m Mode) String() string {
	switch m {
	case ModeError:
		return "error"
	case ModeNaN:
		return "nan"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses the String form of a Mode. "raise" is accepted as
// a synonym for "error".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error", "raise":
		return ModeError, nil
	case "nan":
		return ModeNaN, nil
	}
	return 0, fmt.Errorf("unknown error mode %q", s)
}

// A Reporter observes every failure handled by a Policy, regardless
// of its Mode.
type Reporter interface {
	Report(err error)
}

// ReporterFunc adapts an ordinary function to a Reporter.
type ReporterFunc func(err error)

func (f ReporterFunc) Report(err error) { f(err) }

// A Policy is an immutable error-handling configuration. The zero
// value is not usable; construct one with New.
type Policy struct {
	mode      Mode
	logger    *slog.Logger
	reporter  Reporter
	tolerance Tolerance
}

// An Option configures a Policy in New.
type Option func(*Policy)

// WithMode sets the failure mode. The default is ModeError.
func WithMode(m Mode) Option {
	return func(p *Policy) { p.mode = m }
}

// WithLogger logs each failure to l.
func WithLogger(l *slog.Logger) Option {
	return func(p *Policy) { p.logger = l }
}

// WithReporter passes each failure to r.
func WithReporter(r Reporter) Option {
	return func(p *Policy) { p.reporter = r }
}

// WithTolerance overrides the comparison tolerance returned by
// Policy.Tolerance.
func WithTolerance(t Tolerance) Option {
	return func(p *Policy) { p.tolerance = t }
}

// New returns a Policy configured by opts.
func New(opts ...Option) *Policy {
	p := &Policy{tolerance: ToleranceFor[float64]()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Mode returns p's failure mode.
func (p *Policy) Mode() Mode { return p.mode }

// Tolerance returns the tolerance callers should use to compare
// results computed under p. The special functions never consult it.
func (p *Policy) Tolerance() Tolerance { return p.tolerance }

var defaultPolicy atomic.Pointer[Policy]

func init() {
	defaultPolicy.Store(New())
}

// Default returns the process-wide default Policy.
func Default() *Policy {
	return defaultPolicy.Load()
}

// SetDefault atomically replaces the process-wide default Policy and
// returns the previous one. A nil p restores a ModeError policy.
//
// The default should be established before concurrent evaluations
// begin; evaluations already in flight may observe either policy.
func SetDefault(p *Policy) *Policy {
	if p == nil {
		p = New()
	}
	return defaultPolicy.Swap(p)
}

// Resolve returns p, or the default Policy if p is nil.
func Resolve(p *Policy) *Policy {
	if p == nil {
		return Default()
	}
	return p
}

// Result filters the outcome of a numeric evaluation through p (or
// the default Policy if p is nil). If err is nil, it returns v, nil.
// Otherwise it reports err and returns NaN together with err under
// ModeError, or NaN and a nil error under ModeNaN.
func Result[T mathx.Float](p *Policy, v T, err error) (T, error) {
	if err == nil {
		return v, nil
	}
	p = Resolve(p)
	p.handle(err)
	if p.mode == ModeNaN {
		return mathx.NaN[T](), nil
	}
	return mathx.NaN[T](), err
}

func (p *Policy) handle(err error) {
	if p.reporter != nil {
		p.reporter.Report(err)
	}
	if p.logger == nil {
		return
	}
	// A NaN result hides the failure from the caller, so make it
	// visible in the log.
	level := slog.LevelDebug
	if p.mode == ModeNaN {
		level = slog.LevelWarn
	}
	p.logger.LogAttrs(context.Background(), level, "numeric failure",
		slog.String("kind", Kind(err)),
		slog.String("mode", p.mode.String()),
		slog.Any("error", err))
}

// Kind classifies err as "domain", "convergence" or "other".
func Kind(err error) string {
	switch {
	case errors.Is(err, mathx.ErrDomain):
		return "domain"
	case errors.Is(err, mathx.ErrConvergence):
		return "convergence"
	}
	return "other"
}
