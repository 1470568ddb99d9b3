// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package policy

import (
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/aclements/go-tailmath/mathx"
)

// Tolerance is an approximate-equality criterion for comparing
// computed probabilities against reference values.
type Tolerance struct {
	// Rel is the maximum relative difference.
	Rel float64

	// ULPs is the maximum distance in units in the last place.
	// Values within either bound are considered equal.
	ULPs uint
}

// ToleranceFor returns a tolerance of machine epsilon for T scaled by
// two bits.
func ToleranceFor[T mathx.Float]() Tolerance {
	return Tolerance{Rel: 4 * float64(mathx.Epsilon[T]()), ULPs: 4}
}

// Scale returns t with both bounds multiplied by k.
func (t Tolerance) Scale(k uint) Tolerance {
	return Tolerance{Rel: t.Rel * float64(k), ULPs: t.ULPs * k}
}

// Close reports whether a and b are equal within t.
func (t Tolerance) Close(a, b float64) bool {
	return scalar.EqualWithinULP(a, b, t.ULPs) || scalar.EqualWithinRel(a, b, t.Rel)
}
