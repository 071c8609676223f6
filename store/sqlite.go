// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvtensor/tensor"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS tensors(
	name    TEXT PRIMARY KEY,
	rank    INTEGER NOT NULL,
	entries INTEGER NOT NULL,
	data    TEXT NOT NULL
)`

// SQLStore is a named-tensor workspace in a single SQLite file. Records use
// the same JSON encoding as the Badger Store.
type SQLStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// OpenSQLite opens (creating if needed) the database file at path.
func OpenSQLite(path string, opts ...Option) (*SQLStore, error) {
	if path == "" {
		return nil, errors.New("store: OpenSQLite: empty path")
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %q: %w", path, err)
	}
	// one writer; also keeps ":memory:" a single database
	db.SetMaxOpenConns(1)
	for _, stmt := range []string{"PRAGMA journal_mode=WAL", sqliteSchema} {
		if _, err = db.Exec(stmt); err != nil {
			_ = db.Close()

			return nil, fmt.Errorf("store: open %q: %w", path, err)
		}
	}
	logger := cfg.logger
	if logger == nil {
		logger = slog.New(discardHandler{})
	}

	return &SQLStore{db: db, logger: logger.With(slog.String("component", "store"), slog.String("backend", "sqlite"))}, nil
}

// Close releases the database.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// Put stores t under name, replacing any previous tensor.
func (s *SQLStore) Put(ctx context.Context, name string, t *tensor.Sparse) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateName(name); err != nil {
		return err
	}
	if t == nil {
		return fmt.Errorf("Put(%q): %w", name, ErrNilTensor)
	}
	data, err := encode(t)
	if err != nil {
		return fmt.Errorf("Put(%q): encode: %w", name, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO tensors(name, rank, entries, data) VALUES(?,?,?,?)
		 ON CONFLICT(name) DO UPDATE SET rank=excluded.rank, entries=excluded.entries, data=excluded.data`,
		name, t.Rank(), t.Len(), string(data))
	if err != nil {
		return fmt.Errorf("Put(%q): %w", name, err)
	}
	s.logger.Debug("tensor stored", slog.String("name", name), slog.Int("entries", t.Len()))

	return nil
}

// Get loads the tensor stored under name; see Store.Get for opts.
func (s *SQLStore) Get(ctx context.Context, name string, opts ...tensor.Option) (*tensor.Sparse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM tensors WHERE name = ?`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("Get(%q): %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("Get(%q): %w", name, err)
	}
	t, err := decode([]byte(data), opts...)
	if err != nil {
		return nil, fmt.Errorf("Get(%q): %w", name, err)
	}

	return t, nil
}

// List returns the stored names in ascending byte order.
func (s *SQLStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM tensors ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var n string
		if err = rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("List: %w", err)
		}
		names = append(names, n)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}

	return names, nil
}

// Delete removes name. Deleting a missing name fails with ErrNotFound.
func (s *SQLStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateName(name); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM tensors WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("Delete(%q): %w", name, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("Delete(%q): %w", name, ErrNotFound)
	}
	s.logger.Debug("tensor deleted", slog.String("name", name))

	return nil
}
