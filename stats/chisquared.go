// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"github.com/aclements/go-tailmath/mathx"
	"github.com/aclements/go-tailmath/policy"
)

// ChiSquared is a chi-squared distribution with K degrees of freedom.
//
// It is a gamma distribution with shape K/2 and scale 2, so
//
//	CDF(x)           = P(K/2, x/2)
//	CDFComplement(x) = Q(K/2, x/2)
//
// where P and Q are the regularized incomplete gamma functions.
type ChiSquared[T mathx.Float] struct {
	// K is the degrees of freedom. K > 0.
	K T

	// Policy decides how failures are reported. If nil,
	// policy.Default() is used.
	Policy *policy.Policy
}

var _ Dist[float64] = ChiSquared[float64]{}

func (d ChiSquared[T]) params(fn string) (k, theta T, err error) {
	if err := mathx.CheckPositive(fn, "degrees of freedom", d.K); err != nil {
		return 0, 0, err
	}
	return d.K / 2, 2, nil
}

// PDF returns the density of d at x.
func (d ChiSquared[T]) PDF(x T) (T, error) {
	v, err := gammaPDF(d.params, "ChiSquared.PDF", x)
	return policy.Result(d.Policy, v, err)
}

// CDF returns Pr[X <= x].
func (d ChiSquared[T]) CDF(x T) (T, error) {
	v, err := gammaCDF(d.params, "ChiSquared.CDF", x, false)
	return policy.Result(d.Policy, v, err)
}

// CDFComplement returns Pr[X > x]. It keeps full relative precision
// when the result is tiny.
func (d ChiSquared[T]) CDFComplement(x T) (T, error) {
	v, err := gammaCDF(d.params, "ChiSquared.CDFComplement", x, true)
	return policy.Result(d.Policy, v, err)
}

// InvCDF returns the x for which Pr[X <= x] = p. InvCDF(0) is 0 and
// InvCDF(1) is +Inf.
func (d ChiSquared[T]) InvCDF(p T) (T, error) {
	v, err := gammaInvCDF(d.params, "ChiSquared.InvCDF", p, false)
	return policy.Result(d.Policy, v, err)
}

// InvCDFComplement returns the x for which Pr[X > x] = q. This
// resolves critical values for tiny significance levels that InvCDF
// cannot distinguish from 1.
func (d ChiSquared[T]) InvCDFComplement(q T) (T, error) {
	v, err := gammaInvCDF(d.params, "ChiSquared.InvCDFComplement", q, true)
	return policy.Result(d.Policy, v, err)
}

func (d ChiSquared[T]) Bounds() (T, T) {
	return gammaBounds(d.K/2, 2)
}

func (d ChiSquared[T]) Mean() T {
	return d.K
}

func (d ChiSquared[T]) Variance() T {
	return 2 * d.K
}

// Mode returns max(K-2, 0).
func (d ChiSquared[T]) Mode() T {
	if d.K < 2 {
		return 0
	}
	return d.K - 2
}

// Gamma returns the gamma distribution equivalent to d.
func (d ChiSquared[T]) Gamma() GammaDist[T] {
	return GammaDist[T]{K: d.K / 2, Theta: 2, Policy: d.Policy}
}
