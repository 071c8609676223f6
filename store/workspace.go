// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"strings"

	"github.com/katalvlaran/lvtensor/tensor"
)

// Workspace is the named-tensor API both backends implement.
type Workspace interface {
	Put(ctx context.Context, name string, t *tensor.Sparse) error
	Get(ctx context.Context, name string, opts ...tensor.Option) (*tensor.Sparse, error)
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, name string) error
	Close() error
}

var (
	_ Workspace = (*Store)(nil)
	_ Workspace = (*SQLStore)(nil)
)

// SQLitePrefix selects the SQLite backend in OpenWorkspace.
const SQLitePrefix = "sqlite:"

// OpenWorkspace opens "sqlite:<file>" with OpenSQLite and anything else as a
// Badger directory with Open.
func OpenWorkspace(location string, opts ...Option) (Workspace, error) {
	if path, ok := strings.CutPrefix(location, SQLitePrefix); ok {
		return OpenSQLite(path, opts...)
	}

	return Open(location, opts...)
}
