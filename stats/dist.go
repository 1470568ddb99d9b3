// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "github.com/aclements/go-tailmath/mathx"

// Tailed is the part of a distribution that can be evaluated and
// inverted from either tail.
//
// Every method returns a NaN and possibly an error if an argument or
// parameter is out of range; whether the error is returned is decided
// by the distribution's policy.
type Tailed[T mathx.Float] interface {
	// CDF returns the value of the cumulative distribution
	// function for this distribution at x. This is the integral
	// of the PDF from the lower bound of the support to x.
	CDF(x T) (T, error)

	// CDFComplement returns 1 - CDF(x), computed without
	// subtracting from 1. Callers usually reach it through
	// Complement(d, x).CDF().
	CDFComplement(x T) (T, error)

	// InvCDF returns the inverse of the CDF for p. That is,
	// InvCDF(CDF(x)) = x. The value of p must be in [0, 1].
	InvCDF(p T) (T, error)

	// InvCDFComplement returns x such that CDFComplement(x) = q.
	// The value of q must be in [0, 1].
	InvCDFComplement(q T) (T, error)
}

// A Dist is a continuous statistical distribution over values of type
// T.
type Dist[T mathx.Float] interface {
	Tailed[T]

	// PDF returns the value of the probability density function
	// of this distribution at x.
	PDF(x T) (T, error)

	// Bounds returns reasonable bounds for this distribution's
	// PDF and CDF. The total weight outside of these bounds
	// should be approximately 0.
	Bounds() (T, T)
}

// A DiscreteDist is a discrete statistical distribution over values of
// type T.
//
// The probability mass function rounds down to the nearest defined
// point.
//
// Its CDF is a step function, so InvCDF(p) returns the smallest
// defined point x with CDF(x) >= p.
type DiscreteDist[T mathx.Float] interface {
	Tailed[T]

	// PMF returns the value of the probability mass function
	// Pr[X = x'], where x' is x rounded down to the nearest
	// defined point on the distribution.
	PMF(x T) (T, error)

	// Step returns s, where the distribution is defined for sℕ.
	Step() T

	// Bounds returns reasonable bounds for this distribution's
	// PMF and CDF.
	Bounds() (T, T)
}
