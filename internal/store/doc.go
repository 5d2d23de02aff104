// Package store records solve results in SQLite.
//
// Each solve is one row keyed by a run ID and stamped with seq, a logical
// clock assigned on insert. Reads are ordered by seq, so history and cache
// lookups do not depend on wall time.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL
//   - busy_timeout=5000
//   - a single open connection, which serialises writers
//
// Rows carry a result hash computed by internal/ir. Verify recomputes it
// before a cached row is trusted.
package store
