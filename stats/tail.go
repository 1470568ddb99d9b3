// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"strings"

	"github.com/aclements/go-tailmath/mathx"
)

// Tail selects which side of a distribution a probability refers to.
type Tail int

const (
	// Lower is Pr[X <= x].
	Lower Tail = iota

	// Upper is Pr[X > x].
	Upper
)

func (t Tail) String() string {
	switch t {
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	}
	return fmt.Sprintf("Tail(%d)", int(t))
}

// ParseTail parses "lower" or "upper".
func ParseTail(s string) (Tail, error) {
	switch strings.ToLower(s) {
	case "lower":
		return Lower, nil
	case "upper":
		return Upper, nil
	}
	return 0, fmt.Errorf("unknown tail %q", s)
}

// Eval returns the probability in the given tail of d at x.
func Eval[T mathx.Float, D Tailed[T]](d D, x T, tail Tail) (T, error) {
	if tail == Upper {
		return Complement(d, x).CDF()
	}
	return d.CDF(x)
}

// Inverse returns the x at which the given tail of d has probability
// p.
func Inverse[T mathx.Float, D Tailed[T]](d D, p T, tail Tail) (T, error) {
	if tail == Upper {
		return Complement(d, p).InvCDF()
	}
	return d.InvCDF(p)
}
