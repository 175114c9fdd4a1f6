// SPDX-License-Identifier: MIT

// Package metrics exports basket split outcomes as Prometheus collectors.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/basketsplit/basket"
	"github.com/katalvlaran/basketsplit/setcover"
)

// Outcome labels of basketsplit_splits_total.
const (
	OutcomeOK             = "ok"
	OutcomeUnknownProduct = "unknown_product"
	OutcomeNoGroup        = "no_delivery_group"
	OutcomeBudget         = "budget_exceeded"
	OutcomeError          = "error"
)

// Recorder implements basket.Recorder on top of Prometheus collectors.
type Recorder struct {
	splits   *prometheus.CounterVec
	nodes    prometheus.Histogram
	duration prometheus.Histogram
	groups   prometheus.Histogram
}

// NewRecorder registers the collectors with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		splits: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "basketsplit_splits_total",
				Help: "Total number of basket splits by outcome",
			},
			[]string{"outcome"},
		),
		nodes: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "basketsplit_search_nodes",
				Help:    "Set cover search nodes visited per split",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
		duration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "basketsplit_split_duration_seconds",
				Help:    "Basket split latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		groups: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "basketsplit_delivery_groups",
				Help:    "Delivery groups per successful split",
				Buckets: prometheus.LinearBuckets(1, 1, 8),
			},
		),
	}
}

// RecordSplit implements basket.Recorder.
func (r *Recorder) RecordSplit(s basket.Stats) {
	r.splits.WithLabelValues(outcome(s.Err)).Inc()
	r.nodes.Observe(float64(s.Nodes))
	r.duration.Observe(s.Elapsed.Seconds())
	if s.Err == nil {
		r.groups.Observe(float64(s.Groups))
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, basket.ErrUnknownProduct):
		return OutcomeUnknownProduct
	case errors.Is(err, basket.ErrNoDeliveryGroup):
		return OutcomeNoGroup
	case errors.Is(err, setcover.ErrBudgetExceeded):
		return OutcomeBudget
	default:
		return OutcomeError
	}
}
