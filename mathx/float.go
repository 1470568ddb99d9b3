// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"
	"unsafe"
)

// Float is the set of scalar types the special functions in this
// package can be instantiated with.
type Float interface {
	~float32 | ~float64
}

func is32[T Float]() bool {
	var z T
	return unsafe.Sizeof(z) == 4
}

// Digits returns the number of binary digits in the significand of T.
func Digits[T Float]() int {
	if is32[T]() {
		return 24
	}
	return 53
}

// Epsilon returns the difference between 1 and the next
// representable value of T.
func Epsilon[T Float]() T {
	if is32[T]() {
		return T(0x1p-23)
	}
	return T(0x1p-52)
}

var (
	tiny64 float64 = 0x1p-1022
	max64  float64 = math.MaxFloat64
)

// Tiny returns the smallest positive normal value of T.
func Tiny[T Float]() T {
	if is32[T]() {
		return T(0x1p-126)
	}
	return T(tiny64)
}

// MaxValue returns the largest finite value of T.
func MaxValue[T Float]() T {
	if is32[T]() {
		return T(math.MaxFloat32)
	}
	return T(max64)
}

// NaN returns a quiet NaN of type T.
func NaN[T Float]() T {
	return T(math.NaN())
}

// Inf returns positive infinity if sign >= 0, negative infinity if
// sign < 0.
func Inf[T Float](sign int) T {
	return T(math.Inf(sign))
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite[T Float](x T) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
