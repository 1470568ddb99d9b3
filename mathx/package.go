// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements special functions not provided by the
// standard math package.
//
// The functions in this package are generic over the floating-point
// type they operate in. Iterative expansions are run to the relative
// precision of that type and report a *ConvergenceError rather than
// returning a truncated result.
package mathx // import "github.com/aclements/go-tailmath/mathx"
