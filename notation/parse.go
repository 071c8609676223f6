// SPDX-License-Identifier: MIT
// Package: lvtensor/notation
//
// parse.go - recursive-descent reader.
//
// Grammar:
//
//	value := list | number
//	list  := "[" [ value { ("," | ";") value } ] "]"
//
// Whitespace and "#" comments may appear between any two tokens.

package notation

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/katalvlaran/lvtensor/tensor"
)

// maxDepth bounds list nesting in ParseNested.
const maxDepth = 64

var decimalComma = regexp.MustCompile(`(\d),(\d)`)

// Parse reads a tensor. The rank is the nesting depth of the text; every cell
// is stored (see tensor.FromDense).
//
// Errors:
//   - ErrSyntax, ErrNotList from reading the text.
//   - tensor.ErrMalformedDense for jagged or empty input, tensor.ErrBadRank when
//     nesting exceeds tensor.MaxRank, tensor.ErrNaNInf under the default policy.
func Parse(text string, opts ...Option) (*tensor.Sparse, error) {
	cfg := gatherOptions(opts)
	v, err := parseNested(text, cfg)
	if err != nil {
		return nil, err
	}

	return tensor.FromDense(v, cfg.tensorOpts...)
}

// ParseNested reads the text into nested []any with float64 leaves.
func ParseNested(text string, opts ...Option) (any, error) {
	return parseNested(text, gatherOptions(opts))
}

func parseNested(text string, cfg parseConfig) (any, error) {
	if cfg.decimalComma {
		text = decimalComma.ReplaceAllString(text, "$1.$2")
	}
	p := &parser{src: text}
	p.skip()
	if p.eof() {
		return nil, syntaxErrorf(p.pos, "empty input")
	}
	v, err := p.value(0)
	if err != nil {
		return nil, err
	}
	p.skip()
	if !p.eof() {
		return nil, syntaxErrorf(p.pos, "unexpected %q after value", p.src[p.pos])
	}
	if _, ok := v.([]any); !ok {
		return nil, fmt.Errorf("found scalar %v: %w", v, ErrNotList)
	}

	return v, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

// skip advances over whitespace and comments.
func (p *parser) skip() {
	for !p.eof() {
		switch c := p.src[p.pos]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			p.pos++
		case c == '#':
			for !p.eof() && p.src[p.pos] != '\n' {
				p.pos++
			}
		default:
			return
		}
	}
}

func (p *parser) value(depth int) (any, error) {
	if p.src[p.pos] == '[' {
		return p.list(depth + 1)
	}

	return p.number()
}

func (p *parser) list(depth int) (any, error) {
	if depth > maxDepth {
		return nil, syntaxErrorf(p.pos, "nesting deeper than %d", maxDepth)
	}
	open := p.pos
	p.pos++ // '['
	out := []any{}
	p.skip()
	if !p.eof() && p.src[p.pos] == ']' {
		p.pos++

		return out, nil
	}
	for {
		p.skip()
		if p.eof() {
			return nil, syntaxErrorf(open, "unclosed '['")
		}
		if c := p.src[p.pos]; c == ',' || c == ';' || c == ']' {
			return nil, syntaxErrorf(p.pos, "missing element before %q", c)
		}
		v, err := p.value(depth)
		if err != nil {
			return nil, err
		}
		out = append(out, v)

		p.skip()
		if p.eof() {
			return nil, syntaxErrorf(open, "unclosed '['")
		}
		switch c := p.src[p.pos]; c {
		case ',', ';':
			p.pos++
		case ']':
			p.pos++

			return out, nil
		default:
			return nil, syntaxErrorf(p.pos, "expected ',', ';' or ']', found %q", c)
		}
	}
}

// number reads a maximal run of non-delimiter bytes and parses it as float64.
func (p *parser) number() (any, error) {
	start := p.pos
	for !p.eof() && !isDelimiter(p.src[p.pos]) {
		p.pos++
	}
	tok := p.src[start:p.pos]
	if tok == "" {
		return nil, syntaxErrorf(start, "unexpected %q", p.src[start])
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return nil, syntaxErrorf(start, "bad number %q", tok)
	}

	return f, nil
}

func isDelimiter(c byte) bool {
	switch c {
	case '[', ']', ',', ';', '#', ' ', '\t', '\n', '\r':
		return true
	}

	return false
}
