// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/aclements/go-tailmath/mathx"
	"github.com/aclements/go-tailmath/policy"
)

// PoissonDist is a Poisson distribution.
//
// Its tails are incomplete gamma functions of the mean:
//
//	Pr[X <= k] = Q(k+1, λ)
//	Pr[X > k]  = P(k+1, λ)
type PoissonDist[T mathx.Float] struct {
	// Lambda is the mean number of events. Lambda > 0.
	Lambda T

	// Policy decides how failures are reported. If nil,
	// policy.Default() is used.
	Policy *policy.Policy
}

var _ DiscreteDist[float64] = PoissonDist[float64]{}

func (d PoissonDist[T]) check(fn string, k T) error {
	if err := mathx.CheckPositive(fn, "mean", d.Lambda); err != nil {
		return err
	}
	if math.IsNaN(float64(k)) {
		return &mathx.DomainError{Func: fn, Param: "k", Value: float64(k), Constraint: "a number"}
	}
	return nil
}

// PMF is the probability of exactly int(k) events.
func (d PoissonDist[T]) PMF(k T) (T, error) {
	const fn = "PoissonDist.PMF"
	if err := d.check(fn, k); err != nil {
		return policy.Result(d.Policy, mathx.NaN[T](), err)
	}
	k = T(math.Floor(float64(k)))
	if k < 0 || !mathx.IsFinite(k) {
		return 0, nil
	}
	// λᵏe^-λ/k! is the x-derivative of P(k+1, λ).
	return mathx.GammaIncDeriv(k+1, d.Lambda), nil
}

// CDF is the probability of int(k) or fewer events.
func (d PoissonDist[T]) CDF(k T) (T, error) {
	v, err := d.cdf("PoissonDist.CDF", k, false)
	return policy.Result(d.Policy, v, err)
}

// CDFComplement is the probability of more than int(k) events.
func (d PoissonDist[T]) CDFComplement(k T) (T, error) {
	v, err := d.cdf("PoissonDist.CDFComplement", k, true)
	return policy.Result(d.Policy, v, err)
}

func (d PoissonDist[T]) cdf(fn string, k T, upper bool) (T, error) {
	if err := d.check(fn, k); err != nil {
		return mathx.NaN[T](), err
	}
	k = T(math.Floor(float64(k)))
	switch {
	case k < 0:
		if upper {
			return 1, nil
		}
		return 0, nil
	case !mathx.IsFinite(k):
		if upper {
			return 0, nil
		}
		return 1, nil
	}
	p, q, err := mathx.GammaIncReg(k+1, d.Lambda)
	if err != nil {
		return mathx.NaN[T](), fmt.Errorf("%s: %w", fn, err)
	}
	if upper {
		return p, nil
	}
	return q, nil
}

// InvCDF returns the smallest k for which CDF(k) >= p.
func (d PoissonDist[T]) InvCDF(p T) (T, error) {
	v, err := d.invCDF("PoissonDist.InvCDF", p, false)
	return policy.Result(d.Policy, v, err)
}

// InvCDFComplement returns the smallest k for which
// CDFComplement(k) <= q.
func (d PoissonDist[T]) InvCDFComplement(q T) (T, error) {
	v, err := d.invCDF("PoissonDist.InvCDFComplement", q, true)
	return policy.Result(d.Policy, v, err)
}

func (d PoissonDist[T]) invCDF(fn string, t T, upper bool) (T, error) {
	if err := mathx.CheckPositive(fn, "mean", d.Lambda); err != nil {
		return mathx.NaN[T](), err
	}
	if err := mathx.CheckProbability(fn, "probability", t); err != nil {
		return mathx.NaN[T](), err
	}
	switch {
	case t == 0 && !upper, t == 1 && upper:
		return 0, nil
	case t == 1 && !upper, t == 0 && upper:
		return mathx.Inf[T](1), nil
	}

	var evalErr error
	done := func(k float64) bool {
		if evalErr != nil {
			return true
		}
		p, q, err := mathx.GammaIncReg(T(k+1), d.Lambda)
		if err != nil {
			evalErr = fmt.Errorf("%s: %w", fn, err)
			return true
		}
		if upper {
			return p <= t
		}
		return q >= t
	}

	// Start from the normal approximation, gallop to bracket the
	// answer in (lo, hi], then bisect.
	z := distuv.UnitNormal.Quantile(float64(t))
	if upper {
		z = -z
	}
	lam := float64(d.Lambda)
	k0 := math.Max(0, math.Floor(lam+z*math.Sqrt(lam)))
	lo, hi := k0-1, k0
	if done(k0) {
		for step := 1.0; lo >= 0 && done(lo); step *= 2 {
			hi = lo
			lo = math.Max(-1, hi-step)
		}
	} else {
		for step := 1.0; !done(hi); step *= 2 {
			lo = hi
			hi += step
		}
	}
	for hi-lo > 1 {
		mid := math.Floor(lo + (hi-lo)/2)
		if done(mid) {
			hi = mid
		} else {
			lo = mid
		}
	}
	if evalErr != nil {
		return mathx.NaN[T](), evalErr
	}
	return T(hi), nil
}

func (d PoissonDist[T]) Bounds() (T, T) {
	sd := T(math.Sqrt(float64(d.Lambda)))
	lo := d.Lambda - 6*sd
	if lo < 0 {
		lo = 0
	}
	return T(math.Floor(float64(lo))), T(math.Ceil(float64(d.Lambda + 6*sd)))
}

func (d PoissonDist[T]) Step() T {
	return 1
}

func (d PoissonDist[T]) Mean() T {
	return d.Lambda
}

func (d PoissonDist[T]) Variance() T {
	return d.Lambda
}

// NormalApprox returns a normal distribution approximation of
// Poisson distribution d.
//
// As with any continuous approximation of a discrete distribution,
// the caller must apply a continuity correction:
//
//	p.PMF(k) => n.CDF(k+0.5) - n.CDF(k-0.5)
//	p.CDF(k) => n.CDF(k+0.5)
func (d PoissonDist[T]) NormalApprox() distuv.Normal {
	return distuv.Normal{Mu: float64(d.Mean()), Sigma: math.Sqrt(float64(d.Variance()))}
}
