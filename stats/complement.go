// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "github.com/aclements/go-tailmath/mathx"

// Complemented1 is a request to evaluate the upper tail of Dist at X.
// It is built by Complement and does no work until CDF or InvCDF is
// called, so invalid parameters are reported then.
type Complemented1[T mathx.Float, D Tailed[T]] struct {
	Dist D
	X    T
}

// Complement returns a request for the upper tail of d at x:
//
//	Complement(d, x).CDF()    == d.CDFComplement(x)
//	Complement(d, q).InvCDF() == d.InvCDFComplement(q)
func Complement[T mathx.Float, D Tailed[T]](d D, x T) Complemented1[T, D] {
	return Complemented1[T, D]{d, x}
}

// CDF returns Pr[X > c.X].
func (c Complemented1[T, D]) CDF() (T, error) {
	return c.Dist.CDFComplement(c.X)
}

// InvCDF returns the x for which Pr[X > x] = c.X.
func (c Complemented1[T, D]) InvCDF() (T, error) {
	return c.Dist.InvCDFComplement(c.X)
}

// The ComplementerN interfaces describe functions of N arguments that
// can compute the complement of their value directly. EvalComplement
// must not be implemented as 1-Eval.

type Complementer2[A1, A2, R any] interface {
	Eval(a1 A1, a2 A2) (R, error)
	EvalComplement(a1 A1, a2 A2) (R, error)
}

type Complementer3[A1, A2, A3, R any] interface {
	Eval(a1 A1, a2 A2, a3 A3) (R, error)
	EvalComplement(a1 A1, a2 A2, a3 A3) (R, error)
}

type Complementer4[A1, A2, A3, A4, R any] interface {
	Eval(a1 A1, a2 A2, a3 A3, a4 A4) (R, error)
	EvalComplement(a1 A1, a2 A2, a3 A3, a4 A4) (R, error)
}

type Complementer5[A1, A2, A3, A4, A5, R any] interface {
	Eval(a1 A1, a2 A2, a3 A3, a4 A4, a5 A5) (R, error)
	EvalComplement(a1 A1, a2 A2, a3 A3, a4 A4, a5 A5) (R, error)
}

type Complementer6[A1, A2, A3, A4, A5, A6, R any] interface {
	Eval(a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6) (R, error)
	EvalComplement(a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6) (R, error)
}

// Complemented2 is a request for the complement of Func at (Arg1, Arg2).
type Complemented2[F Complementer2[A1, A2, R], A1, A2, R any] struct {
	Func F
	Arg1 A1
	Arg2 A2
}

// Complement2 returns a request for the complement of f(a1, a2).
func Complement2[F Complementer2[A1, A2, R], A1, A2, R any](f F, a1 A1, a2 A2) Complemented2[F, A1, A2, R] {
	return Complemented2[F, A1, A2, R]{f, a1, a2}
}

// Eval returns f.EvalComplement(a1, a2).
func (c Complemented2[F, A1, A2, R]) Eval() (R, error) {
	return c.Func.EvalComplement(c.Arg1, c.Arg2)
}

// Complemented3 is a request for the complement of Func at (Arg1, ..., Arg3).
type Complemented3[F Complementer3[A1, A2, A3, R], A1, A2, A3, R any] struct {
	Func F
	Arg1 A1
	Arg2 A2
	Arg3 A3
}

func Complement3[F Complementer3[A1, A2, A3, R], A1, A2, A3, R any](f F, a1 A1, a2 A2, a3 A3) Complemented3[F, A1, A2, A3, R] {
	return Complemented3[F, A1, A2, A3, R]{f, a1, a2, a3}
}

func (c Complemented3[F, A1, A2, A3, R]) Eval() (R, error) {
	return c.Func.EvalComplement(c.Arg1, c.Arg2, c.Arg3)
}

// Complemented4 is a request for the complement of Func at (Arg1, ..., Arg4).
type Complemented4[F Complementer4[A1, A2, A3, A4, R], A1, A2, A3, A4, R any] struct {
	Func F
	Arg1 A1
	Arg2 A2
	Arg3 A3
	Arg4 A4
}

func Complement4[F Complementer4[A1, A2, A3, A4, R], A1, A2, A3, A4, R any](f F, a1 A1, a2 A2, a3 A3, a4 A4) Complemented4[F, A1, A2, A3, A4, R] {
	return Complemented4[F, A1, A2, A3, A4, R]{f, a1, a2, a3, a4}
}

func (c Complemented4[F, A1, A2, A3, A4, R]) Eval() (R, error) {
	return c.Func.EvalComplement(c.Arg1, c.Arg2, c.Arg3, c.Arg4)
}

// Complemented5 is a request for the complement of Func at (Arg1, ..., Arg5).
type Complemented5[F Complementer5[A1, A2, A3, A4, A5, R], A1, A2, A3, A4, A5, R any] struct {
	Func F
	Arg1 A1
	Arg2 A2
	Arg3 A3
	Arg4 A4
	Arg5 A5
}

func Complement5[F Complementer5[A1, A2, A3, A4, A5, R], A1, A2, A3, A4, A5, R any](f F, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5) Complemented5[F, A1, A2, A3, A4, A5, R] {
	return Complemented5[F, A1, A2, A3, A4, A5, R]{f, a1, a2, a3, a4, a5}
}

func (c Complemented5[F, A1, A2, A3, A4, A5, R]) Eval() (R, error) {
	return c.Func.EvalComplement(c.Arg1, c.Arg2, c.Arg3, c.Arg4, c.Arg5)
}

// Complemented6 is a request for the complement of Func at (Arg1, ..., Arg6).
type Complemented6[F Complementer6[A1, A2, A3, A4, A5, A6, R], A1, A2, A3, A4, A5, A6, R any] struct {
	Func F
	Arg1 A1
	Arg2 A2
	Arg3 A3
	Arg4 A4
	Arg5 A5
	Arg6 A6
}

func Complement6[F Complementer6[A1, A2, A3, A4, A5, A6, R], A1, A2, A3, A4, A5, A6, R any](f F, a1 A1, a2 A2, a3 A3, a4 A4, a5 A5, a6 A6) Complemented6[F, A1, A2, A3, A4, A5, A6, R] {
	return Complemented6[F, A1, A2, A3, A4, A5, A6, R]{f, a1, a2, a3, a4, a5, a6}
}

func (c Complemented6[F, A1, A2, A3, A4, A5, A6, R]) Eval() (R, error) {
	return c.Func.EvalComplement(c.Arg1, c.Arg2, c.Arg3, c.Arg4, c.Arg5, c.Arg6)
}
