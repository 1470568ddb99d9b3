// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package policy

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/aclements/go-tailmath/mathx"
)

var errDomain = &mathx.DomainError{Func: "ChiSquared.CDF", Param: "x", Value: -2, Constraint: ">= 0 and finite"}

func TestResultModes(t *testing.T) {
	var reported []error
	rep := ReporterFunc(func(err error) { reported = append(reported, err) })

	raise := New(WithMode(ModeError), WithReporter(rep))
	v, err := Result(raise, 0.5, errDomain)
	if !math.IsNaN(v) || err != errDomain {
		t.Errorf("ModeError: want NaN, %v; got %v, %v", errDomain, v, err)
	}

	quiet := New(WithMode(ModeNaN), WithReporter(rep))
	v32, err := Result(quiet, float32(0.5), error(errDomain))
	if !math.IsNaN(float64(v32)) || err != nil {
		t.Errorf("ModeNaN: want NaN, nil; got %v, %v", v32, err)
	}

	if len(reported) != 2 {
		t.Errorf("want 2 reports, got %d", len(reported))
	}

	// Success passes through untouched in both modes.
	for _, p := range []*Policy{raise, quiet} {
		if v, err := Result(p, 0.25, nil); v != 0.25 || err != nil {
			t.Errorf("%v: want 0.25, nil; got %v, %v", p.Mode(), v, err)
		}
	}
	if len(reported) != 2 {
		t.Errorf("success was reported")
	}
}

func TestResultLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	Result(New(WithMode(ModeError), WithLogger(logger)), 1.0, error(errDomain))
	if buf.Len() != 0 {
		t.Errorf("ModeError logged above debug: %s", buf.String())
	}

	Result(New(WithMode(ModeNaN), WithLogger(logger)), 1.0, error(errDomain))
	out := buf.String()
	for _, want := range []string{"level=WARN", "kind=domain", "mode=nan", "x argument is -2"} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q missing %q", out, want)
		}
	}
}

func TestDefault(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	if orig.Mode() != ModeError {
		t.Errorf("default mode: want error, got %v", orig.Mode())
	}

	quiet := New(WithMode(ModeNaN))
	if prev := SetDefault(quiet); prev != orig {
		t.Errorf("SetDefault returned %p, want %p", prev, orig)
	}
	if v, err := Result(nil, 1.0, error(errDomain)); !math.IsNaN(v) || err != nil {
		t.Errorf("nil policy after SetDefault(nan): got %v, %v", v, err)
	}
	if Resolve(nil) != quiet {
		t.Errorf("Resolve(nil) did not return the default")
	}

	SetDefault(nil)
	if Default().Mode() != ModeError {
		t.Errorf("SetDefault(nil) did not restore ModeError")
	}
}

func TestFloat64WrappersBypassPolicy(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	reports := 0
	SetDefault(New(WithReporter(ReporterFunc(func(error) { reports++ }))))
	if v := mathx.GammaInc(-1, 1); !math.IsNaN(v) {
		t.Errorf("GammaInc(-1, 1): want NaN, got %v", v)
	}
	if v := mathx.GammaIncComp(1, -1); !math.IsNaN(v) {
		t.Errorf("GammaIncComp(1, -1): want NaN, got %v", v)
	}
	if reports != 0 {
		t.Errorf("float64 wrappers reported %d failures to the default policy", reports)
	}
}

func TestDefaultConcurrent(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	policies := []*Policy{New(WithMode(ModeNaN)), New(WithMode(ModeError))}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if i%2 == 0 {
					SetDefault(policies[j%2])
					continue
				}
				v, err := Result(nil, 1.0, error(errDomain))
				if !math.IsNaN(v) {
					t.Errorf("failure returned %v", v)
					return
				}
				if err != nil && !errors.Is(err, mathx.ErrDomain) {
					t.Errorf("unexpected error %v", err)
					return
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{
		"error": ModeError,
		"raise": ModeError,
		" NaN ": ModeNaN,
	} {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q): want %v, got %v, %v", in, want, got, err)
		}
		if got.String() != strings.ToLower(strings.TrimSpace(in)) && in != "raise" {
			t.Errorf("%v.String() = %q", got, got.String())
		}
	}
	if _, err := ParseMode("throw"); err == nil {
		t.Errorf("ParseMode(throw): want error")
	}
	if got := Mode(7).String(); got != "Mode(7)" {
		t.Errorf("Mode(7).String() = %q", got)
	}
}

func TestKind(t *testing.T) {
	for _, test := range []struct {
		err  error
		want string
	}{
		{errDomain, "domain"},
		{&mathx.ConvergenceError{Func: "f", Iterations: 1}, "convergence"},
		{errors.New("boom"), "other"},
	} {
		if got := Kind(test.err); got != test.want {
			t.Errorf("Kind(%v): want %s, got %s", test.err, test.want, got)
		}
	}
}
