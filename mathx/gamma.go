// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

const eulerGamma = 0.57721566490153286060651209008240243

// zeta2 holds ζ(2) through ζ(25).
var zeta2 = [...]float64{
	1.6449340668482264, 1.2020569031595942, 1.0823232337111381,
	1.03692775514337, 1.0173430619844492, 1.0083492773819229,
	1.0040773561979444, 1.0020083928260821, 1.000994575127818,
	1.0004941886041194, 1.000246086553308, 1.0001227133475785,
	1.0000612481350588, 1.000030588236307, 1.0000152822594086,
	1.0000076371976379, 1.000003817293265, 1.0000019082127165,
	1.0000009539620338, 1.0000004769329869, 1.0000002384505027,
	1.0000001192199259, 1.0000000596081891, 1.0000000298035034,
}

func lgamma(x float64) float64 {
	y, _ := math.Lgamma(x)
	return y
}

// lgamma1p returns log Γ(1+a) without forming 1+a for small a.
func lgamma1p(a float64) float64 {
	if math.Abs(a) >= 0.2 {
		return lgamma(1 + a)
	}
	// log Γ(1+a) = -γa + Σ_{k≥2} (-1)^k ζ(k) a^k / k
	sum, pow := 0.0, a*a
	for i, z := range zeta2 {
		k := float64(i + 2)
		if i%2 == 0 {
			sum += z * pow / k
		} else {
			sum -= z * pow / k
		}
		pow *= a
	}
	return sum - eulerGamma*a
}

// stirlerr returns log Γ(a) - ((a-½)log a - a + ½log 2π) for a >= 20.
func stirlerr(a float64) float64 {
	a2 := a * a
	return (1.0/12 - (1.0/360-(1.0/1260-(1.0/1680-(1.0/1188-691.0/360360/a2)/a2)/a2)/a2)/a2) / a
}

// log1pmx returns log(1+d) - d.
func log1pmx(d float64) float64 {
	if math.Abs(d) > 0.5 {
		return math.Log1p(d) - d
	}
	const eps = 0x1p-53
	sum, pow := 0.0, d*d
	for k := 2; k < 200; k++ {
		term := pow / float64(k)
		if k%2 == 0 {
			term = -term
		}
		sum += term
		if math.Abs(term) < math.Abs(sum)*eps {
			break
		}
		pow *= d
	}
	return sum
}

// logGammaPrefix returns log(x**a * exp(-x) / Γ(a)), the common
// factor of both tails of the regularized incomplete gamma function.
func logGammaPrefix(a, x float64) float64 {
	if a < 20 {
		return a*math.Log(x) - x - lgamma(a)
	}
	// Use Stirling's series for log Γ(a) so the large terms of
	// a*log(x), x and log Γ(a) cancel analytically.
	var s float64
	if d := (x - a) / a; math.Abs(d) <= 0.5 {
		s = a * log1pmx(d)
	} else {
		r := math.Log(x / a)
		if x/a < tiny64 {
			r = math.Log(x) - math.Log(a)
		}
		s = a*r + (a - x)
	}
	return s + 0.5*math.Log(a/(2*math.Pi)) - stirlerr(a)
}
