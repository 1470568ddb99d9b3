// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestLgamma1p(t *testing.T) {
	for _, a := range []float64{-0.15, -1e-3, 1e-3, 0.05, 0.19, 0.25, 0.8} {
		if got, want := lgamma1p(a), lgamma(1+a); !scalar.EqualWithinRel(want, got, 1e-12) {
			t.Errorf("lgamma1p(%v): want %v, got %v", a, want, got)
		}
	}
	// log Γ(1+a) ≈ -γa for tiny a, where 1+a would round to 1.
	if got, want := lgamma1p(1e-20), -eulerGamma*1e-20; !scalar.EqualWithinRel(want, got, 1e-15) {
		t.Errorf("lgamma1p(1e-20): want %v, got %v", want, got)
	}
}

func TestLog1pmx(t *testing.T) {
	for _, d := range []float64{-0.9, -0.5, -0.1, 0.3, 0.5, 2, 100} {
		want := math.Log1p(d) - d
		if got := log1pmx(d); !scalar.EqualWithinRel(want, got, 1e-9) {
			t.Errorf("log1pmx(%v): want %v, got %v", d, want, got)
		}
	}
	// -d²/2 dominates for small d.
	if got := log1pmx(1e-10); !scalar.EqualWithinRel(-0.5e-20, got, 1e-9) {
		t.Errorf("log1pmx(1e-10): got %v", got)
	}
}

func TestLogGammaPrefix(t *testing.T) {
	direct := func(a, x float64) float64 {
		return a*math.Log(x) - x - lgamma(a)
	}
	for _, a := range []float64{20, 35, 100} {
		for _, x := range []float64{a / 2, a, 2 * a} {
			want, got := math.Exp(direct(a, x)), math.Exp(logGammaPrefix(a, x))
			if !scalar.EqualWithinRel(want, got, 1e-12) {
				t.Errorf("prefix(%v, %v): want %v, got %v", a, x, want, got)
			}
		}
	}
}
