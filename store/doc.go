// SPDX-License-Identifier: MIT

// Package store persists named tensors in a Badger key-value database or,
// through SQLStore, in a single SQLite file. Both implement Workspace.
//
// Layout:
//   - key   "tensor/<name>"
//   - value JSON {"rank":r,"entries":[{"c":[i,j,k],"v":x},...]} with entries in
//     insertion order, so a Get returns a tensor whose Entries match the one Put.
//     Non-finite values are written as the strings "NaN", "+Inf" and "-Inf".
//
// Names are non-empty, at most MaxNameLen bytes and contain no '/' or control
// characters. Every operation takes a context and fails fast once it is done;
// both backends are safe for concurrent use.
//
// SQLite keeps one row per tensor in table tensors(name, rank, entries, data),
// with data holding the same JSON record.
package store
