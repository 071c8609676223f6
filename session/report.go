// SPDX-License-Identifier: MIT

package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvtensor/builder"
	"github.com/katalvlaran/lvtensor/contract"
	"github.com/katalvlaran/lvtensor/notation"
	"github.com/katalvlaran/lvtensor/tensor"
)

// Report describes one successful contraction.
type Report struct {
	RunID          uuid.UUID
	Method         contract.Method
	RankA, RankB   int
	ShapeA, ShapeB []int
	Result         *tensor.Sparse
	Shape          []int // derived shape of Result, nil when empty
	Stats          contract.Stats
	Started        time.Time
	Elapsed        time.Duration
}

// String renders the results panel:
//
//	=== CONTRACTION RESULTS ===
//
//	Method: 1 - (0,2)-convolved product, Cayley indices
//	Elapsed: 0.000012 s
//	Result shape: 2x2
//
//	Result:
//	[[3.00, 0.00]; [0.00, 0.00]]
func (r *Report) String() string {
	var sb strings.Builder
	sb.WriteString("=== CONTRACTION RESULTS ===\n\n")
	fmt.Fprintf(&sb, "Method: %d - %s\n", int(r.Method), r.Method.Describe())
	fmt.Fprintf(&sb, "Elapsed: %.6f s\n", r.Elapsed.Seconds())
	fmt.Fprintf(&sb, "Result shape: %s\n\n", builder.FormatShape(r.Shape))
	sb.WriteString("Result:\n")
	sb.WriteString(notation.Format(r.Result))

	return sb.String()
}
