// Copyright (c) 2026 Multiple Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package obsmetrics holds the Prometheus collectors exposed by the
// server's /metrics endpoint: a count of verify requests by outcome and
// a histogram of verification latency.
package obsmetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "p256verify"

// Metrics bundles the collectors registered against a single Registerer.
type Metrics struct {
	VerifyTotal    *prometheus.CounterVec
	VerifyDuration prometheus.Histogram
	DispatchTotal  *prometheus.CounterVec
}

// New creates and registers the collectors against reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		VerifyTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "verify",
			Name:      "total",
			Help:      "Count of signature verification requests by result.",
		}, []string{"result"}),
		VerifyDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "verify",
			Name:      "duration_seconds",
			Help:      "Latency of a single signature verification call.",
			Buckets:   prometheus.DefBuckets,
		}),
		DispatchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dispatch",
			Name:      "total",
			Help:      "Count of fixed-width precompile dispatch calls by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(m.VerifyTotal, m.VerifyDuration, m.DispatchTotal)
	return m
}

// ObserveVerify records the outcome and duration of one Verify call.
func (m *Metrics) ObserveVerify(ok bool, elapsed time.Duration) {
	m.VerifyTotal.WithLabelValues(resultLabel(ok)).Inc()
	m.VerifyDuration.Observe(elapsed.Seconds())
}

// ObserveDispatch records the outcome of one precompile Dispatch call.
func (m *Metrics) ObserveDispatch(ok bool) {
	m.DispatchTotal.WithLabelValues(resultLabel(ok)).Inc()
}

func resultLabel(ok bool) string {
	if ok {
		return "valid"
	}
	return "invalid"
}
