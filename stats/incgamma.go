// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"github.com/aclements/go-tailmath/mathx"
	"github.com/aclements/go-tailmath/policy"
)

// RegularizedGamma is the regularized incomplete gamma function as a
// function of its shape a and argument x. Eval returns P(a, x) and
// EvalComplement returns Q(a, x), so
//
//	Complement2(RegularizedGamma[float64]{}, a, x).Eval()
//
// is the upper tail.
type RegularizedGamma[T mathx.Float] struct {
	// Policy decides how failures are reported. If nil,
	// policy.Default() is used.
	Policy *policy.Policy
}

var _ Complementer2[float64, float64, float64] = RegularizedGamma[float64]{}

func (g RegularizedGamma[T]) Eval(a, x T) (T, error) {
	v, err := mathx.GammaIncP(a, x)
	return policy.Result(g.Policy, v, err)
}

func (g RegularizedGamma[T]) EvalComplement(a, x T) (T, error) {
	v, err := mathx.GammaIncQ(a, x)
	return policy.Result(g.Policy, v, err)
}
