// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mathext"
)

func TestGammaDist(t *testing.T) {
	d := GammaDist[float64]{K: 2.5, Theta: 3}
	testFunc(t, fmt.Sprintf("%+v.CDF", d), d.CDF,
		map[float64]float64{
			0:  0,
			1:  1.52521209814909710e-02,
			5:  3.51257641332406612e-01,
			10: 7.53365847813947775e-01,
		}, 1e-13)
	testFunc(t, fmt.Sprintf("%+v.CDFComplement", d), d.CDFComplement,
		map[float64]float64{
			0:  1,
			1:  9.84747879018509020e-01,
			5:  6.48742358667593333e-01,
			10: 2.46634152186052169e-01,
		}, 1e-13)

	for _, x := range []float64{0.5, 2, 7.5, 20} {
		pdf, _ := d.PDF(x)
		want := math.Pow(x, d.K-1) * math.Exp(-x/d.Theta) / (math.Gamma(d.K) * math.Pow(d.Theta, d.K))
		if !scalar.EqualWithinRel(want, pdf, 1e-13) {
			t.Errorf("%+v.PDF(%v) = %v; want %v", d, x, pdf, want)
		}
		p, _ := d.CDF(x)
		if ref := mathext.GammaIncReg(d.K, x/d.Theta); !scalar.EqualWithinRel(ref, p, 1e-12) {
			t.Errorf("%+v.CDF(%v) = %v; gonum says %v", d, x, p, ref)
		}
		if inv, _ := d.InvCDF(p); !scalar.EqualWithinRel(x, inv, 1e-10) {
			t.Errorf("%+v.InvCDF(%v) = %v; want %v", d, p, inv, x)
		}
	}

	if m := d.Mean(); m != 7.5 {
		t.Errorf("%+v.Mean() = %v; want 7.5", d, m)
	}
	if v := d.Variance(); v != 22.5 {
		t.Errorf("%+v.Variance() = %v; want 22.5", d, v)
	}
	if m := d.Mode(); m != 4.5 {
		t.Errorf("%+v.Mode() = %v; want 4.5", d, m)
	}
}

func TestGammaDistOverflow(t *testing.T) {
	// x/Theta overflows to +Inf.
	d := GammaDist[float64]{K: 2, Theta: 1e-300}
	if p, err := d.CDF(1e300); p != 1 || err != nil {
		t.Errorf("%+v.CDF(1e300) = %v, %v; want 1, nil", d, p, err)
	}
	if q, err := d.CDFComplement(1e300); q != 0 || err != nil {
		t.Errorf("%+v.CDFComplement(1e300) = %v, %v; want 0, nil", d, q, err)
	}
	if pdf, err := d.PDF(1e300); pdf != 0 || err != nil {
		t.Errorf("%+v.PDF(1e300) = %v, %v; want 0, nil", d, pdf, err)
	}
}

func TestGammaDistDomain(t *testing.T) {
	for _, test := range []struct {
		d    GammaDist[float64]
		want string
	}{
		{GammaDist[float64]{K: 0, Theta: 1}, "GammaDist.CDF: shape argument is 0"},
		{GammaDist[float64]{K: 1, Theta: -2}, "GammaDist.CDF: scale argument is -2"},
		{GammaDist[float64]{K: 1, Theta: math.Inf(1)}, "GammaDist.CDF: scale argument is +Inf"},
	} {
		_, err := test.d.CDF(1)
		if err == nil || !strings.HasPrefix(err.Error(), test.want) {
			t.Errorf("%+v.CDF(1): got error %v; want %q", test.d, err, test.want)
		}
	}
}

func TestGammaDistBounds(t *testing.T) {
	d := GammaDist[float64]{K: 3, Theta: 0.5}
	lo, hi := d.Bounds()
	q, _ := d.CDFComplement(hi)
	if lo != 0 || !scalar.EqualWithinRel(1e-6, q, 1e-6) {
		t.Errorf("%+v.Bounds() = %v, %v with upper tail %v", d, lo, hi, q)
	}
}
