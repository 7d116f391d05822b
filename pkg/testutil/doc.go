// Package testutil provides fixtures for testing unconflict components.
//
// Key components:
//   - MemoryFS: in-memory types.FS with per-path error injection and
//     read/write counters, for asserting that a file was never touched
//   - ConflictBuilder: declarative construction of conflicted file content
//
// All test data should be defined inline, not in external files.
package testutil
