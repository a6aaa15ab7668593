// Package store provides a SQLite-backed practice log.
//
// The log records generated challenges and every classified bead move a
// learner makes, so that progress can be resumed and rule usage reviewed.
//
// # Ordering
//
// Records are stamped with a logical seq from a monotonic Clock shared by
// both tables, never with wall-clock time. Every query orders by seq so
// results are stable across runs. On Open the clock resumes after the
// highest seq already stored.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Moves must reference a stored challenge
package store
