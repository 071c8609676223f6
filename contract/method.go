// SPDX-License-Identifier: MIT

// Package contract - methods and their parameter table.
//
// The table below is the single source of truth for all twenty kernels:
// a method is fully described by its list of matched index pairs and, for each
// pair, whether it is eliminated (Cayley) or retained (Scott).

package contract

import (
	"fmt"
	"strconv"
	"strings"
)

// Method identifies one of the five convolved products. Values are the
// numeric identifiers users select (1..5).
type Method int

const (
	// Cayley2 is the (0,2)-convolved product: two Cayley indices, summed.
	Cayley2 Method = iota + 1
	// Cayley1 is the (0,1)-convolved product: one Cayley index, summed.
	Cayley1
	// Scott2 is the (2,0)-convolved product: two Scott indices, joined.
	Scott2
	// Scott1 is the (1,0)-convolved product: one Scott index, joined.
	Scott1
	// Mixed is the (1,1)-convolved product: one Cayley and one Scott index, summed.
	Mixed
)

// Aggregation is how a kernel writes a product into the output.
type Aggregation int

const (
	// Sum adds products into the output coordinate (some index was eliminated).
	Sum Aggregation = iota
	// Assign stores the product; output coordinates are unique by construction.
	Assign
)

// String returns "sum" or "assign".
func (a Aggregation) String() string {
	if a == Assign {
		return "assign"
	}

	return "sum"
}

// match pairs position len(a)-fromEnd of A with position b of B.
type match struct {
	fromEnd int
	b       int
	retain  bool
}

// rule is one row of the method table.
type rule struct {
	name    string
	label   string
	matches []match
}

// rules is indexed by Method-1.
var rules = [...]rule{
	{
		name:    "cayley2",
		label:   "(0,2)-convolved product, Cayley indices",
		matches: []match{{fromEnd: 2, b: 0}, {fromEnd: 1, b: 1}},
	},
	{
		name:    "cayley1",
		label:   "(0,1)-convolved product, Cayley index",
		matches: []match{{fromEnd: 1, b: 0}},
	},
	{
		name:    "scott2",
		label:   "(2,0)-convolved product, Scott indices",
		matches: []match{{fromEnd: 2, b: 0, retain: true}, {fromEnd: 1, b: 1, retain: true}},
	},
	{
		name:    "scott1",
		label:   "(1,0)-convolved product, Scott index",
		matches: []match{{fromEnd: 1, b: 0, retain: true}},
	},
	{
		name:    "mixed",
		label:   "(1,1)-convolved product, mixed indices",
		matches: []match{{fromEnd: 1, b: 0}, {fromEnd: 2, b: 1, retain: true}},
	},
}

// Methods returns every method in identifier order.
func Methods() []Method {
	out := make([]Method, len(rules))
	for i := range rules {
		out[i] = Method(i + 1)
	}

	return out
}

// Valid reports whether m is one of 1..5.
func (m Method) Valid() bool {
	return m >= Cayley2 && m <= Mixed
}

func (m Method) rule() *rule {
	return &rules[m-1]
}

// String returns the short name ("cayley2", ...) or "method(N)" when invalid.
func (m Method) String() string {
	if !m.Valid() {
		return "method(" + strconv.Itoa(int(m)) + ")"
	}

	return m.rule().name
}

// Describe returns the long human label shown next to the method number.
func (m Method) Describe() string {
	if !m.Valid() {
		return m.String()
	}

	return m.rule().label
}

// Signature returns (λ, μ): the number of retained (Scott) and eliminated
// (Cayley) index pairs.
func (m Method) Signature() (scott, cayley int) {
	if !m.Valid() {
		return 0, 0
	}
	for _, mt := range m.rule().matches {
		if mt.retain {
			scott++
		} else {
			cayley++
		}
	}

	return scott, cayley
}

// Aggregation returns Sum when any matched pair is eliminated, else Assign.
func (m Method) Aggregation() Aggregation {
	if _, cayley := m.Signature(); cayley > 0 {
		return Sum
	}

	return Assign
}

// rankDelta is rA+rB minus the output rank: every match drops B's position,
// every eliminated match also drops A's.
func (m Method) rankDelta() int {
	scott, cayley := m.Signature()

	return scott + 2*cayley
}

// ParseMethod accepts a numeric identifier ("1".."5"), a short name
// ("cayley2", case-insensitive) or a signature ("(0,2)").
func ParseMethod(s string) (Method, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if m := Method(n); m.Valid() {
			return m, nil
		}

		return 0, fmt.Errorf("ParseMethod(%q): %w", s, ErrUnknownMethod)
	}
	compact := strings.ReplaceAll(strings.ToLower(s), " ", "")
	for _, m := range Methods() {
		scott, cayley := m.Signature()
		if compact == m.String() || compact == fmt.Sprintf("(%d,%d)", scott, cayley) {
			return m, nil
		}
	}

	return 0, fmt.Errorf("ParseMethod(%q): %w", s, ErrUnknownMethod)
}
