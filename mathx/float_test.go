// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"
	"testing"
)

type celsius float32

func TestPrecision(t *testing.T) {
	if got := Epsilon[float64](); got != math.Nextafter(1, 2)-1 {
		t.Errorf("Epsilon[float64]: got %v", got)
	}
	if got := Epsilon[float32](); got != math.Nextafter32(1, 2)-1 {
		t.Errorf("Epsilon[float32]: got %v", got)
	}
	if got := Epsilon[celsius](); float32(got) != math.Nextafter32(1, 2)-1 {
		t.Errorf("Epsilon[celsius]: got %v", got)
	}
	if Digits[float32]() != 24 || Digits[float64]() != 53 {
		t.Errorf("Digits: got %d, %d", Digits[float32](), Digits[float64]())
	}
	if got := Tiny[float64](); got != 0x1p-1022 {
		t.Errorf("Tiny[float64]: got %v", got)
	}
	if got := MaxValue[float32](); got != math.MaxFloat32 {
		t.Errorf("MaxValue[float32]: got %v", got)
	}
	if !IsFinite(1.0) || IsFinite(math.Inf(-1)) || IsFinite(NaN[float32]()) {
		t.Errorf("IsFinite misclassified")
	}
}
