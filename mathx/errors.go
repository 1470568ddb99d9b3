// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDomain is matched by every *DomainError.
	ErrDomain = errors.New("domain error")

	// ErrConvergence is matched by every *ConvergenceError.
	ErrConvergence = errors.New("failed to converge")
)

// A DomainError reports an argument that violates the mathematical
// precondition of a function.
type DomainError struct {
	// Func is the name of the function that rejected the argument,
	// for example "ChiSquared.CDF".
	Func string

	// Param names the offending parameter.
	Param string

	// Value is the rejected value.
	Value float64

	// Constraint describes the valid range, for example "> 0".
	Constraint string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s argument is %v, but must be %s", e.Func, e.Param, e.Value, e.Constraint)
}

func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

// A ConvergenceError reports that a series or continued fraction did
// not reach its precision target within its iteration budget.
type ConvergenceError struct {
	Func       string
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s: failed to converge after %d iterations", e.Func, e.Iterations)
}

func (e *ConvergenceError) Is(target error) bool {
	return target == ErrConvergence
}

// CheckFinite returns a *DomainError if v is NaN or infinite.
func CheckFinite[T Float](fn, param string, v T) error {
	if !IsFinite(v) {
		return &DomainError{fn, param, float64(v), "finite"}
	}
	return nil
}

// CheckPositive returns a *DomainError unless v is finite and > 0.
func CheckPositive[T Float](fn, param string, v T) error {
	if !(v > 0) || math.IsInf(float64(v), 0) {
		return &DomainError{fn, param, float64(v), "> 0 and finite"}
	}
	return nil
}

// CheckNonNegative returns a *DomainError unless v is finite and >= 0.
func CheckNonNegative[T Float](fn, param string, v T) error {
	if !(v >= 0) || math.IsInf(float64(v), 0) {
		return &DomainError{fn, param, float64(v), ">= 0 and finite"}
	}
	return nil
}

// CheckProbability returns a *DomainError unless v is in [0, 1].
func CheckProbability[T Float](fn, param string, v T) error {
	if !(v >= 0 && v <= 1) {
		return &DomainError{fn, param, float64(v), "in [0, 1]"}
	}
	return nil
}
