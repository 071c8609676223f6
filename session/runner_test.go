package session_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/lvtensor/contract"
	"github.com/katalvlaran/lvtensor/session"
	"github.com/katalvlaran/lvtensor/tensor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// stepClock advances by step on every call.
func stepClock(step time.Duration) func() time.Time {
	t := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	return func() time.Time {
		t = t.Add(step)

		return t
	}
}

type fixture struct {
	runner *session.Runner
	reg    *prometheus.Registry
	spans  *tracetest.SpanRecorder
	logs   *bytes.Buffer
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	reg := prometheus.NewRegistry()
	sr := tracetest.NewSpanRecorder()
	var logs bytes.Buffer
	r, err := session.New(
		session.WithRegisterer(reg),
		session.WithTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))),
		session.WithLogger(slog.New(slog.NewJSONHandler(&logs, nil))),
		session.WithClock(stepClock(1500*time.Microsecond)),
	)
	require.NoError(t, err)

	return fixture{runner: r, reg: reg, spans: sr, logs: &logs}
}

func operands(t *testing.T) (*tensor.Sparse, *tensor.Sparse) {
	t.Helper()
	a := tensor.MustNew(3)
	require.NoError(t, a.Set([]int{0, 0, 0}, 1))
	require.NoError(t, a.Set([]int{0, 0, 1}, 2))
	b := tensor.MustNew(3)
	require.NoError(t, b.Set([]int{0, 0, 0}, 3))
	require.NoError(t, b.Set([]int{1, 0, 0}, 4))

	return a, b
}

func TestMultiplyReport(t *testing.T) {
	f := newFixture(t)
	a, b := operands(t)

	rep, err := f.runner.Multiply(context.Background(), a, b, contract.Cayley2)
	require.NoError(t, err)
	require.Equal(t, contract.Cayley2, rep.Method)
	require.Equal(t, 3, rep.RankA)
	require.Equal(t, []int{1, 1, 2}, rep.ShapeA)
	require.Equal(t, []int{2, 1, 1}, rep.ShapeB)
	require.Equal(t, []int{1, 1}, rep.Shape)
	require.Equal(t, 1500*time.Microsecond, rep.Elapsed)
	require.Equal(t, contract.Stats{Matches: 1, Entries: 1}, rep.Stats)
	require.NotEqual(t, [16]byte{}, [16]byte(rep.RunID))

	want := "=== CONTRACTION RESULTS ===\n\n" +
		"Method: 1 - (0,2)-convolved product, Cayley indices\n" +
		"Elapsed: 0.001500 s\n" +
		"Result shape: 1x1\n\n" +
		"Result:\n" +
		"[[3.00]]"
	require.Equal(t, want, rep.String())

	spans := f.spans.Ended()
	require.Len(t, spans, 1)
	require.Equal(t, "contract.Multiply", spans[0].Name())
	require.Equal(t, codes.Ok, spans[0].Status().Code)
	require.Contains(t, f.logs.String(), `"msg":"contraction_done"`)
	require.Contains(t, f.logs.String(), rep.RunID.String())
}

func TestMultiplyMetrics(t *testing.T) {
	f := newFixture(t)
	a, b := operands(t)
	ctx := context.Background()

	_, err := f.runner.Multiply(ctx, a, b, contract.Cayley2)
	require.NoError(t, err)
	_, err = f.runner.Multiply(ctx, a, b, contract.Scott2)
	require.NoError(t, err)
	_, err = f.runner.Multiply(ctx, a, tensor.MustNew(5), contract.Cayley2)
	require.ErrorIs(t, err, contract.ErrUnsupportedRankPairing)
	_, err = f.runner.Multiply(ctx, a, b, contract.Method(7))
	require.ErrorIs(t, err, contract.ErrUnknownMethod)
	_, err = f.runner.Multiply(ctx, nil, b, contract.Mixed)
	require.ErrorIs(t, err, contract.ErrNilTensor)

	expected := `
# HELP lvtensor_contractions_total Total contractions by method and outcome
# TYPE lvtensor_contractions_total counter
lvtensor_contractions_total{method="cayley2",outcome="ok"} 1
lvtensor_contractions_total{method="cayley2",outcome="unsupported_ranks"} 1
lvtensor_contractions_total{method="invalid",outcome="unknown_method"} 1
lvtensor_contractions_total{method="mixed",outcome="nil_tensor"} 1
lvtensor_contractions_total{method="scott2",outcome="ok"} 1
`
	require.NoError(t, testutil.GatherAndCompare(f.reg, strings.NewReader(expected), "lvtensor_contractions_total"))

	n, err := testutil.GatherAndCount(f.reg, "lvtensor_contraction_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	var failed int
	for _, s := range f.spans.Ended() {
		if s.Status().Code == codes.Error {
			failed++
		}
	}
	require.Equal(t, 3, failed)
}

func TestMultiplyCanceled(t *testing.T) {
	f := newFixture(t)
	a, b := operands(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep, err := f.runner.Multiply(ctx, a, b, contract.Cayley2)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, rep)
	require.Empty(t, f.spans.Ended())
}

func TestSharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	r1, err := session.New(session.WithRegisterer(reg))
	require.NoError(t, err)
	r2, err := session.New(session.WithRegisterer(reg))
	require.NoError(t, err)

	a, b := operands(t)
	_, err = r1.Multiply(context.Background(), a, b, contract.Mixed)
	require.NoError(t, err)
	_, err = r2.Multiply(context.Background(), a, b, contract.Mixed)
	require.NoError(t, err)

	expected := `
# HELP lvtensor_contractions_total Total contractions by method and outcome
# TYPE lvtensor_contractions_total counter
lvtensor_contractions_total{method="mixed",outcome="ok"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "lvtensor_contractions_total"))
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { session.WithLogger(nil) })
	require.Panics(t, func() { session.WithTracerProvider(nil) })
	require.Panics(t, func() { session.WithClock(nil) })
}
