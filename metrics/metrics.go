// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package metrics counts what the navigation coordinator does.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels.
const (
	Accepted   = "accepted"
	Debounced  = "debounced"
	Resumed    = "resumed"
	NotFound   = "not_found"
	Corrupted  = "corrupted"
	Completed  = "completed"
	NoConsumer = "no_consumer"
)

// Navigation holds the coordinator collectors.
type Navigation struct {
	Requests  *prometheus.CounterVec
	Pending   *prometheus.CounterVec
	Execution *prometheus.CounterVec
}

// New creates the collectors and registers them with reg. A nil reg leaves
// them unregistered, which is what tests want.
func New(reg prometheus.Registerer) *Navigation {
	m := &Navigation{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "goway",
			Subsystem: "navigation",
			Name:      "requests_total",
			Help:      "Navigation requests by kind and outcome.",
		}, []string{"kind", "outcome"}),
		Pending: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "goway",
			Subsystem: "navigation",
			Name:      "pending_checks_total",
			Help:      "Persisted requests found at foreground activation, by kind and outcome.",
		}, []string{"kind", "outcome"}),
		Execution: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "goway",
			Subsystem: "navigation",
			Name:      "executions_total",
			Help:      "Navigation executions by kind and outcome.",
		}, []string{"kind", "outcome"}),
	}
	if reg != nil {
		reg.MustRegister(m.Requests, m.Pending, m.Execution)
	}
	return m
}
