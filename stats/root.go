// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/aclements/go-tailmath/mathx"
)

// quantileIterations bounds the Newton/bisection loop of
// gammaQuantile. Newton usually converges in well under 60 steps.
const quantileIterations = 300

// gammaQuantile returns x such that P(a, x) = t, or Q(a, x) = t if
// upper is set. a must be > 0 and t must be in [0, 1].
//
// Roots below the smallest normal value of T are flushed to 0.
func gammaQuantile[T mathx.Float](a, t T, upper bool) (T, error) {
	switch {
	case t == 0 && !upper, t == 1 && upper:
		return 0, nil
	case t == 1 && !upper, t == 0 && upper:
		return mathx.Inf[T](1), nil
	}

	r := gammaRoot[T]{a: a, t: t, upper: upper, logMode: t < 0.1}
	r.logT = math.Log(float64(t))

	x := gammaQuantileSeed(a, t, upper)
	if !(x > 0) || !mathx.IsFinite(x) {
		x = mathx.Tiny[T]()
	}

	// Bracket the root in (lo, hi].
	lo, hi := T(0), x
	for n := 0; ; n++ {
		g, _, err := r.eval(hi)
		if err != nil {
			return mathx.NaN[T](), err
		}
		if g >= 0 {
			break
		}
		lo, hi = hi, 2*hi
		if !mathx.IsFinite(hi) {
			return mathx.NaN[T](), &mathx.ConvergenceError{Func: "gamma quantile bracket", Iterations: n + 1}
		}
	}
	if lo == 0 && hi == mathx.Tiny[T]() {
		return 0, nil
	}

	tol := 4 * mathx.Epsilon[T]()
	if !(lo < x && x < hi) {
		x = lo + (hi-lo)/2
	}
	for i := 0; i < quantileIterations; i++ {
		g, dg, err := r.eval(x)
		if err != nil {
			return mathx.NaN[T](), err
		}
		if g == 0 {
			return x, nil
		}
		if g < 0 {
			lo = x
		} else {
			hi = x
		}
		xn := mathx.NaN[T]()
		if dg > 0 && mathx.IsFinite(g) {
			xn = x - g/dg
		}
		if !(lo < xn && xn < hi) {
			xn = lo + (hi-lo)/2
		}
		if abs(xn-x) <= tol*abs(xn) || hi-lo <= tol*hi {
			return xn, nil
		}
		x = xn
	}
	return mathx.NaN[T](), &mathx.ConvergenceError{Func: "gamma quantile", Iterations: quantileIterations}
}

// gammaRoot is the residual function whose zero gammaQuantile finds.
//
// Far in a tail the residual is taken between logarithms, which keeps
// Newton steps well scaled when the target is many orders of
// magnitude below 1.
type gammaRoot[T mathx.Float] struct {
	a, t    T
	logT    float64
	upper   bool
	logMode bool
}

// eval returns the residual at x, which is increasing in x, and its
// derivative with respect to x.
func (r *gammaRoot[T]) eval(x T) (g, dg T, err error) {
	p, q, err := mathx.GammaIncReg(r.a, x)
	if err != nil {
		return 0, 0, err
	}
	d := mathx.GammaIncDeriv(r.a, x)
	if !r.logMode {
		if r.upper {
			return r.t - q, d, nil
		}
		return p - r.t, d, nil
	}

	v := p
	if r.upper {
		v = q
	}
	if v == 0 {
		if r.upper {
			return mathx.Inf[T](1), 0, nil
		}
		return mathx.Inf[T](-1), 0, nil
	}
	lv := math.Log(float64(v))
	dg = T(float64(d) / float64(v))
	if r.upper {
		return T(r.logT - lv), dg, nil
	}
	return T(lv - r.logT), dg, nil
}

// gammaQuantileSeed returns a starting point for gammaQuantile from the
// Wilson-Hilferty approximation of the gamma distribution, falling back
// to the leading term of the lower tail series where that
// approximation breaks down.
func gammaQuantileSeed[T mathx.Float](a, t T, upper bool) T {
	af, tf := float64(a), float64(t)
	p, z := tf, distuv.UnitNormal.Quantile(tf)
	if upper {
		p, z = 1-tf, -z
	}
	c := 1 - 1/(9*af) + z/(3*math.Sqrt(af))
	x := af * c * c * c
	if c <= 0 || x <= 0 || (!upper && tf < 0.05 && af < 1) {
		lg, _ := math.Lgamma(af + 1)
		x = math.Exp((math.Log(p) + lg) / af)
	}
	if x > float64(mathx.MaxValue[T]()) {
		return mathx.Inf[T](1)
	}
	return T(x)
}

func abs[T mathx.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
