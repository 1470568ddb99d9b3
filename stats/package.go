// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats evaluates continuous and discrete probability
// distributions whose cumulative distribution functions reduce to the
// regularized incomplete gamma function.
//
// Every distribution can be evaluated in either tail. The upper tail
// is requested by wrapping the distribution and its argument with
// Complement:
//
//	chi := stats.ChiSquared[float64]{K: 5}
//	p, err := chi.CDF(11.07)                      // Pr[X <= 11.07]
//	q, err := stats.Complement(chi, 11.07).CDF()  // Pr[X > 11.07]
//
// The complemented form is computed directly rather than as 1-p, so it
// keeps full relative precision when p is close to 1.
//
// Failures are reported according to each distribution's Policy, or
// policy.Default() if none is set.
package stats // import "github.com/aclements/go-tailmath/stats"
