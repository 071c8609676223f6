// SPDX-License-Identifier: MIT
// Package: lvtensor/notation
//
// options.go - functional options for Parse and ParseNested.

package notation

import "github.com/katalvlaran/lvtensor/tensor"

// Option customizes parsing.
type Option func(*parseConfig)

type parseConfig struct {
	decimalComma bool
	tensorOpts   []tensor.Option
}

// WithDecimalComma treats a comma between two digits as a decimal separator,
// so "1,5" reads as 1.5. Lists must then separate elements with ";" or with
// ", " (comma followed by a space).
func WithDecimalComma() Option {
	return func(c *parseConfig) {
		c.decimalComma = true
	}
}

// WithTensorOptions forwards tensor options (e.g. the NaN/Inf policy) to the
// tensor Parse builds. Ignored by ParseNested.
func WithTensorOptions(opts ...tensor.Option) Option {
	return func(c *parseConfig) {
		c.tensorOpts = append(c.tensorOpts, opts...)
	}
}

func gatherOptions(opts []Option) parseConfig {
	var c parseConfig
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
