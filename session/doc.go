// SPDX-License-Identifier: MIT

// Package session runs contractions with the operational trimmings around
// the pure engine: a run ID, wall-clock timing, structured logs, Prometheus
// metrics and an OpenTelemetry span per call, and a printable Report.
//
// Metrics (registered on the Registerer given to New):
//
//	lvtensor_contractions_total{method,outcome}
//	lvtensor_contraction_duration_seconds{method}
//	lvtensor_contraction_output_entries{method}
//
// outcome is one of "ok", "unsupported_ranks", "unknown_method",
// "nil_tensor", "canceled" or "error".
package session
