// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"github.com/aclements/go-tailmath/mathx"
	"github.com/aclements/go-tailmath/policy"
)

// GammaDist is a gamma distribution with shape K and scale Theta.
type GammaDist[T mathx.Float] struct {
	// K is the shape parameter. K > 0.
	K T

	// Theta is the scale parameter. Theta > 0.
	Theta T

	// Policy decides how failures are reported. If nil,
	// policy.Default() is used.
	Policy *policy.Policy
}

var _ Dist[float32] = GammaDist[float32]{}

func (d GammaDist[T]) params(fn string) (k, theta T, err error) {
	if err := mathx.CheckPositive(fn, "shape", d.K); err != nil {
		return 0, 0, err
	}
	if err := mathx.CheckPositive(fn, "scale", d.Theta); err != nil {
		return 0, 0, err
	}
	return d.K, d.Theta, nil
}

func (d GammaDist[T]) PDF(x T) (T, error) {
	v, err := gammaPDF(d.params, "GammaDist.PDF", x)
	return policy.Result(d.Policy, v, err)
}

func (d GammaDist[T]) CDF(x T) (T, error) {
	v, err := gammaCDF(d.params, "GammaDist.CDF", x, false)
	return policy.Result(d.Policy, v, err)
}

func (d GammaDist[T]) CDFComplement(x T) (T, error) {
	v, err := gammaCDF(d.params, "GammaDist.CDFComplement", x, true)
	return policy.Result(d.Policy, v, err)
}

func (d GammaDist[T]) InvCDF(p T) (T, error) {
	v, err := gammaInvCDF(d.params, "GammaDist.InvCDF", p, false)
	return policy.Result(d.Policy, v, err)
}

func (d GammaDist[T]) InvCDFComplement(q T) (T, error) {
	v, err := gammaInvCDF(d.params, "GammaDist.InvCDFComplement", q, true)
	return policy.Result(d.Policy, v, err)
}

func (d GammaDist[T]) Bounds() (T, T) {
	return gammaBounds(d.K, d.Theta)
}

func (d GammaDist[T]) Mean() T {
	return d.K * d.Theta
}

func (d GammaDist[T]) Variance() T {
	return d.K * d.Theta * d.Theta
}

// Mode returns the mode of d, which is 0 if K < 1.
func (d GammaDist[T]) Mode() T {
	if d.K < 1 {
		return 0
	}
	return (d.K - 1) * d.Theta
}

// gammaParams validates a gamma-family distribution on behalf of fn
// and returns its shape and scale.
type gammaParams[T mathx.Float] func(fn string) (k, theta T, err error)

func gammaPDF[T mathx.Float](params gammaParams[T], fn string, x T) (T, error) {
	k, theta, err := params(fn)
	if err != nil {
		return mathx.NaN[T](), err
	}
	if err := mathx.CheckNonNegative(fn, "x", x); err != nil {
		return mathx.NaN[T](), err
	}
	z := x / theta
	if !mathx.IsFinite(z) {
		return 0, nil
	}
	return mathx.GammaIncDeriv(k, z) / theta, nil
}

// gammaCDF returns the lower or upper tail of a gamma-family
// distribution at x. The upper tail comes straight from Q(k, x/θ).
func gammaCDF[T mathx.Float](params gammaParams[T], fn string, x T, upper bool) (T, error) {
	k, theta, err := params(fn)
	if err != nil {
		return mathx.NaN[T](), err
	}
	if err := mathx.CheckNonNegative(fn, "x", x); err != nil {
		return mathx.NaN[T](), err
	}
	z := x / theta
	if !mathx.IsFinite(z) {
		// x/θ overflowed; all of the mass is below x.
		if upper {
			return 0, nil
		}
		return 1, nil
	}
	p, q, err := mathx.GammaIncReg(k, z)
	if err != nil {
		return mathx.NaN[T](), fmt.Errorf("%s: %w", fn, err)
	}
	if upper {
		return q, nil
	}
	return p, nil
}

func gammaInvCDF[T mathx.Float](params gammaParams[T], fn string, t T, upper bool) (T, error) {
	k, theta, err := params(fn)
	if err != nil {
		return mathx.NaN[T](), err
	}
	if err := mathx.CheckProbability(fn, "probability", t); err != nil {
		return mathx.NaN[T](), err
	}
	z, err := gammaQuantile(k, t, upper)
	if err != nil {
		return mathx.NaN[T](), fmt.Errorf("%s: %w", fn, err)
	}
	return z * theta, nil
}

// gammaBounds returns [0, x] where the upper tail beyond x has
// probability 1e-6.
func gammaBounds[T mathx.Float](k, theta T) (T, T) {
	z, err := gammaQuantile(k, 1e-6, true)
	if err != nil || !mathx.IsFinite(z) {
		// Six standard deviations above the mean.
		z = k + 6*T(math.Sqrt(float64(k)))
	}
	return 0, z * theta
}
