// SPDX-License-Identifier: MIT

package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvtensor/contract"
	"github.com/katalvlaran/lvtensor/tensor"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/katalvlaran/lvtensor/session"

// Runner executes contractions. Safe for concurrent use.
type Runner struct {
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *metrics
	now     func() time.Time
}

// New builds a Runner. It fails only when metric registration fails.
func New(opts ...Option) (*Runner, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	m, err := newMetrics(cfg.registerer)
	if err != nil {
		return nil, err
	}

	return &Runner{
		logger:  cfg.logger.With(slog.String("component", "session")),
		tracer:  cfg.tracer.Tracer(instrumentationName),
		metrics: m,
		now:     cfg.now,
	}, nil
}

// Multiply contracts a and b with method m.
//
// Description:
//
//	Checks ctx, then runs contract.MultiplyStats inside a "contract.Multiply"
//	span. Elapsed time covers dispatch and the kernel only. Every call, failed
//	or not, increments lvtensor_contractions_total once.
//
// Errors:
//   - ctx.Err() when the context is already done.
//   - anything contract.Multiply returns, wrapped with the run ID.
func (r *Runner) Multiply(ctx context.Context, a, b *tensor.Sparse, m contract.Method) (*Report, error) {
	label := methodLabel(m)
	runID := uuid.New()
	if err := ctx.Err(); err != nil {
		r.metrics.total.WithLabelValues(label, "canceled").Inc()

		return nil, err
	}

	_, span := r.tracer.Start(ctx, "contract.Multiply",
		trace.WithAttributes(
			attribute.String("run_id", runID.String()),
			attribute.String("method", label),
			attribute.Int("rank_a", rankOf(a)),
			attribute.Int("rank_b", rankOf(b)),
			attribute.Int("entries_a", lenOf(a)),
			attribute.Int("entries_b", lenOf(b)),
		),
	)
	defer span.End()

	start := r.now()
	out, stats, err := contract.MultiplyStats(a, b, m)
	elapsed := r.now().Sub(start)

	if err != nil {
		outcome := outcomeOf(err)
		r.metrics.total.WithLabelValues(label, outcome).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		r.logger.Warn("contraction_failed",
			slog.String("run_id", runID.String()),
			slog.String("method", label),
			slog.Int("rank_a", rankOf(a)),
			slog.Int("rank_b", rankOf(b)),
			slog.String("error", err.Error()),
		)

		return nil, fmt.Errorf("run %s: %w", runID, err)
	}

	r.metrics.total.WithLabelValues(label, "ok").Inc()
	r.metrics.duration.WithLabelValues(label).Observe(elapsed.Seconds())
	r.metrics.entries.WithLabelValues(label).Observe(float64(stats.Entries))
	span.SetAttributes(
		attribute.Int("matches", stats.Matches),
		attribute.Int("collisions", stats.Collisions),
		attribute.Int("entries_out", stats.Entries),
	)
	span.SetStatus(codes.Ok, "contraction complete")

	rep := &Report{
		RunID:   runID,
		Method:  m,
		RankA:   a.Rank(),
		RankB:   b.Rank(),
		ShapeA:  a.Shape(),
		ShapeB:  b.Shape(),
		Result:  out,
		Shape:   out.Shape(),
		Stats:   stats,
		Started: start,
		Elapsed: elapsed,
	}
	r.logger.Info("contraction_done",
		slog.String("run_id", runID.String()),
		slog.String("method", label),
		slog.Int("rank_out", out.Rank()),
		slog.Int("matches", stats.Matches),
		slog.Int("entries", stats.Entries),
		slog.Duration("elapsed", elapsed),
	)

	return rep, nil
}

// methodLabel bounds the metric label set to the five methods plus "invalid".
func methodLabel(m contract.Method) string {
	if !m.Valid() {
		return "invalid"
	}

	return m.String()
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, contract.ErrUnsupportedRankPairing):
		return "unsupported_ranks"
	case errors.Is(err, contract.ErrUnknownMethod):
		return "unknown_method"
	case errors.Is(err, contract.ErrNilTensor):
		return "nil_tensor"
	default:
		return "error"
	}
}

func rankOf(t *tensor.Sparse) int {
	if t == nil {
		return 0
	}

	return t.Rank()
}

func lenOf(t *tensor.Sparse) int {
	if t == nil {
		return 0
	}

	return t.Len()
}
