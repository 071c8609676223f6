// SPDX-License-Identifier: MIT

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/lvtensor/tensor"
)

type record struct {
	Rank    int         `json:"rank"`
	Entries []wireEntry `json:"entries"`
}

type wireEntry struct {
	C []int     `json:"c"`
	V wireFloat `json:"v"`
}

// wireFloat is a float64 that also encodes NaN and ±Inf (as JSON strings).
type wireFloat float64

func (f wireFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}

	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

func (f *wireFloat) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		switch s {
		case "NaN":
			*f = wireFloat(math.NaN())
		case "+Inf":
			*f = wireFloat(math.Inf(1))
		case "-Inf":
			*f = wireFloat(math.Inf(-1))
		default:
			return fmt.Errorf("unknown special value %q", s)
		}

		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = wireFloat(v)

	return nil
}

// encode serializes t with entries in insertion order.
func encode(t *tensor.Sparse) ([]byte, error) {
	rec := record{Rank: t.Rank(), Entries: make([]wireEntry, 0, t.Len())}
	for _, e := range t.Entries() {
		rec.Entries = append(rec.Entries, wireEntry{C: e.Coord, V: wireFloat(e.Value)})
	}

	return json.Marshal(rec)
}

// decode rebuilds a tensor. Structural problems wrap ErrCorrupt; value
// policy failures (tensor.ErrNaNInf) are returned as is.
func decode(data []byte, opts ...tensor.Option) (*tensor.Sparse, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	t, err := tensor.New(rec.Rank, append([]tensor.Option{tensor.WithCapacity(len(rec.Entries))}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	for i, e := range rec.Entries {
		if t.Has(e.C) {
			return nil, fmt.Errorf("%w: entry %d repeats coordinate %v", ErrCorrupt, i, e.C)
		}
		if err = t.Set(e.C, float64(e.V)); err != nil {
			if errors.Is(err, tensor.ErrNaNInf) {
				return nil, err
			}

			return nil, fmt.Errorf("%w: entry %d: %v", ErrCorrupt, i, err)
		}
	}

	return t, nil
}
