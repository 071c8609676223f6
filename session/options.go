// SPDX-License-Identifier: MIT

package session

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Option configures a Runner.
type Option func(*config)

type config struct {
	logger     *slog.Logger
	registerer prometheus.Registerer
	tracer     trace.TracerProvider
	now        func() time.Time
}

func defaultConfig() config {
	return config{
		logger: slog.Default(),
		tracer: otel.GetTracerProvider(),
		now:    time.Now,
	}
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("session: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithRegisterer registers the runner's metrics on reg. Without it the
// metrics are collected but not exported.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *config) {
		c.registerer = reg
	}
}

// WithTracerProvider overrides the global OpenTelemetry tracer provider. Panics on nil.
func WithTracerProvider(tp trace.TracerProvider) Option {
	if tp == nil {
		panic("session: WithTracerProvider(nil)")
	}
	return func(c *config) {
		c.tracer = tp
	}
}

// WithClock replaces time.Now for elapsed-time measurement. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("session: WithClock(nil)")
	}
	return func(c *config) {
		c.now = now
	}
}
