// SPDX-License-Identifier: MIT

package session

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	entries  *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lvtensor_contractions_total",
			Help: "Total contractions by method and outcome",
		}, []string{"method", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lvtensor_contraction_duration_seconds",
			Help:    "Contraction duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}, []string{"method"}),
		entries: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lvtensor_contraction_output_entries",
			Help:    "Number of entries in contraction results",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"method"}),
	}
	if reg == nil {
		return m, nil
	}

	var err error
	if m.total, err = register(reg, m.total); err != nil {
		return nil, err
	}
	if m.duration, err = register(reg, m.duration); err != nil {
		return nil, err
	}
	if m.entries, err = register(reg, m.entries); err != nil {
		return nil, err
	}

	return m, nil
}

// register adds c to reg, reusing an identical collector registered earlier
// (several Runners may share one registry).
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(T); ok {
			return existing, nil
		}
	}

	return c, fmt.Errorf("session: register metrics: %w", err)
}
