// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/dgraph-io/badger/v4"
	"github.com/katalvlaran/lvtensor/tensor"
)

// MaxNameLen bounds tensor names in bytes.
const MaxNameLen = 200

const keyPrefix = "tensor/"

// Store is a named-tensor workspace backed by Badger.
type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

// Option configures Open and OpenInMemory.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger routes Badger's own warnings and errors to logger.
// Without it Badger is silent. Panics on nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic("store: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = logger
	}
}

// Open opens (creating if needed) the workspace in dir.
func Open(dir string, opts ...Option) (*Store, error) {
	if dir == "" {
		return nil, errors.New("store: Open: empty directory")
	}

	return open(badger.DefaultOptions(dir), opts)
}

// OpenInMemory opens a workspace that lives only as long as the Store.
func OpenInMemory(opts ...Option) (*Store, error) {
	return open(badger.DefaultOptions("").WithInMemory(true), opts)
}

func open(bopts badger.Options, opts []Option) (*Store, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger != nil {
		bopts = bopts.WithLogger(badgerLogger{cfg.logger}).WithLoggingLevel(badger.WARNING)
	} else {
		bopts = bopts.WithLogger(nil)
	}
	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("store: open %q: %w", bopts.Dir, err)
	}
	logger := cfg.logger
	if logger == nil {
		logger = slog.New(discardHandler{})
	}

	return &Store{db: db, logger: logger.With(slog.String("component", "store"))}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores t under name, replacing any previous tensor.
func (s *Store) Put(ctx context.Context, name string, t *tensor.Sparse) error {
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
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(name), data)
	})
	if err != nil {
		return fmt.Errorf("Put(%q): %w", name, err)
	}
	s.logger.Debug("tensor stored",
		slog.String("name", name),
		slog.Int("rank", t.Rank()),
		slog.Int("entries", t.Len()),
		slog.Int("bytes", len(data)),
	)

	return nil
}

// Get loads the tensor stored under name. opts configure the returned tensor;
// with the default NaN/Inf policy a stored non-finite value fails with
// tensor.ErrNaNInf.
func (s *Store) Get(ctx context.Context, name string, opts ...tensor.Option) (*tensor.Sparse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	var t *tensor.Sparse
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(name))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			t, err = decode(val, opts...)

			return err
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("Get(%q): %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("Get(%q): %w", name, err)
	}

	return t, nil
}

// List returns the stored names in ascending byte order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var names []string
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: []byte(keyPrefix)})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			names = append(names, strings.TrimPrefix(string(it.Item().Key()), keyPrefix))
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}

	return names, nil
}

// Delete removes name. Deleting a missing name fails with ErrNotFound.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateName(name); err != nil {
		return err
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key(name)); err != nil {
			return err
		}

		return txn.Delete(key(name))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("Delete(%q): %w", name, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("Delete(%q): %w", name, err)
	}
	s.logger.Debug("tensor deleted", slog.String("name", name))

	return nil
}

func key(name string) []byte {
	return []byte(keyPrefix + name)
}

func validateName(name string) error {
	if name == "" || len(name) > MaxNameLen {
		return fmt.Errorf("%q: length %d not in [1,%d]: %w", name, len(name), MaxNameLen, ErrBadName)
	}
	for _, r := range name {
		if r == '/' || unicode.IsControl(r) {
			return fmt.Errorf("%q: character %q not allowed: %w", name, r, ErrBadName)
		}
	}

	return nil
}
