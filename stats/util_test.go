// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// testFunc checks f against a table of expected values.
func testFunc(t *testing.T, name string, f func(float64) (float64, error), vals map[float64]float64, tol float64) {
	t.Helper()
	for in, want := range vals {
		got, err := f(in)
		if err != nil {
			t.Errorf("%s(%v): %v", name, in, err)
			continue
		}
		if !scalar.EqualWithinRel(want, got, tol) {
			t.Errorf("%s(%v) = %v; want %v", name, in, got, want)
		}
	}
}
