// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package promreport counts numeric failures in Prometheus.
package promreport // import "github.com/aclements/go-tailmath/policy/promreport"

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aclements/go-tailmath/mathx"
	"github.com/aclements/go-tailmath/policy"
)

// Reporter is a policy.Reporter that increments
// tailmath_failures_total{func, kind} for every failure.
type Reporter struct {
	failures *prometheus.CounterVec
}

var _ policy.Reporter = (*Reporter)(nil)

// New creates a Reporter and registers its collector with reg.
func New(reg prometheus.Registerer) (*Reporter, error) {
	r := &Reporter{
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tailmath_failures_total",
			Help: "Numeric failures by reporting function and kind (domain, convergence, other).",
		}, []string{"func", "kind"}),
	}
	if err := reg.Register(r.failures); err != nil {
		return nil, err
	}
	return r, nil
}

// Report implements policy.Reporter.
func (r *Reporter) Report(err error) {
	r.failures.WithLabelValues(funcName(err), policy.Kind(err)).Inc()
}

func funcName(err error) string {
	var de *mathx.DomainError
	if errors.As(err, &de) {
		return de.Func
	}
	var ce *mathx.ConvergenceError
	if errors.As(err, &ce) {
		return ce.Func
	}
	return "unknown"
}
