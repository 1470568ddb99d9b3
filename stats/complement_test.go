// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/aclements/go-tailmath/mathx"
	"github.com/aclements/go-tailmath/policy"
)

func TestComplementDefersValidation(t *testing.T) {
	// Building the request must not validate anything.
	c := Complement(ChiSquared[float64]{K: -1, Policy: policy.New()}, -5.0)
	if c.X != -5 || c.Dist.K != -1 {
		t.Fatalf("Complement captured %+v", c)
	}
	v, err := c.CDF()
	if !math.IsNaN(v) || !errors.Is(err, mathx.ErrDomain) {
		t.Errorf("%+v.CDF() = %v, %v; want NaN and a domain error", c, v, err)
	}
}

func TestRegularizedGamma(t *testing.T) {
	g := RegularizedGamma[float64]{}
	for _, test := range []struct{ a, x float64 }{
		{0.5, 5}, {2, 2}, {50, 2.5}, {150, 200}, {0.01, 1},
	} {
		p, err := g.Eval(test.a, test.x)
		if err != nil {
			t.Fatal(err)
		}
		q, err := Complement2(g, test.a, test.x).Eval()
		if err != nil {
			t.Fatal(err)
		}
		wantP, wantQ, _ := mathx.GammaIncReg(test.a, test.x)
		if p != wantP || q != wantQ {
			t.Errorf("P, Q(%v, %v) = %v, %v; want %v, %v", test.a, test.x, p, q, wantP, wantQ)
		}
	}

	g.Policy = policy.New(policy.WithMode(policy.ModeNaN))
	if q, err := Complement2(g, -1.0, 1.0).Eval(); !math.IsNaN(q) || err != nil {
		t.Errorf("Q(-1, 1) in NaN mode = %v, %v; want NaN, nil", q, err)
	}
}

// tagged records which of Eval or EvalComplement was called and with
// what arguments.
type tagged struct{}

func (tagged) Eval(args ...int) (string, error) {
	return tagString("lower", args), nil
}

func (tagged) EvalComplement(args ...int) (string, error) {
	return tagString("upper", args), nil
}

func tagString(tail string, args []int) string {
	s := tail
	for _, a := range args {
		s += " " + string(rune('0'+a))
	}
	return s
}

type tagged2 struct{ tagged }

func (f tagged2) Eval(a1, a2 int) (string, error) { return f.tagged.Eval(a1, a2) }
func (f tagged2) EvalComplement(a1, a2 int) (string, error) {
	return f.tagged.EvalComplement(a1, a2)
}

type tagged3 struct{ tagged }

func (f tagged3) Eval(a1, a2, a3 int) (string, error) { return f.tagged.Eval(a1, a2, a3) }
func (f tagged3) EvalComplement(a1, a2, a3 int) (string, error) {
	return f.tagged.EvalComplement(a1, a2, a3)
}

type tagged4 struct{ tagged }

func (f tagged4) Eval(a1, a2, a3, a4 int) (string, error) { return f.tagged.Eval(a1, a2, a3, a4) }
func (f tagged4) EvalComplement(a1, a2, a3, a4 int) (string, error) {
	return f.tagged.EvalComplement(a1, a2, a3, a4)
}

type tagged5 struct{ tagged }

func (f tagged5) Eval(a1, a2, a3, a4, a5 int) (string, error) {
	return f.tagged.Eval(a1, a2, a3, a4, a5)
}
func (f tagged5) EvalComplement(a1, a2, a3, a4, a5 int) (string, error) {
	return f.tagged.EvalComplement(a1, a2, a3, a4, a5)
}

type tagged6 struct{ tagged }

func (f tagged6) Eval(a1, a2, a3, a4, a5, a6 int) (string, error) {
	return f.tagged.Eval(a1, a2, a3, a4, a5, a6)
}
func (f tagged6) EvalComplement(a1, a2, a3, a4, a5, a6 int) (string, error) {
	return f.tagged.EvalComplement(a1, a2, a3, a4, a5, a6)
}

func TestComplementArity(t *testing.T) {
	check := func(got string, err error, want string) {
		t.Helper()
		if err != nil || got != want {
			t.Errorf("got %q, %v; want %q", got, err, want)
		}
	}
	s, err := Complement2(tagged2{}, 1, 2).Eval()
	check(s, err, "upper 1 2")
	s, err = Complement3(tagged3{}, 1, 2, 3).Eval()
	check(s, err, "upper 1 2 3")
	s, err = Complement4(tagged4{}, 1, 2, 3, 4).Eval()
	check(s, err, "upper 1 2 3 4")
	s, err = Complement5(tagged5{}, 1, 2, 3, 4, 5).Eval()
	check(s, err, "upper 1 2 3 4 5")
	s, err = Complement6(tagged6{}, 1, 2, 3, 4, 5, 6).Eval()
	check(s, err, "upper 1 2 3 4 5 6")

	// The arguments are captured in order.
	c := Complement6(tagged6{}, 6, 5, 4, 3, 2, 1)
	if c.Arg1 != 6 || c.Arg6 != 1 {
		t.Errorf("Complement6 captured %+v", c)
	}
}
