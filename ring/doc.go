// Package ring
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity circular FIFO buffer with optional overwrite-on-full,
// raw slot access, restartable iteration, in-place bulk transforms and a
// durable snapshot encoding.
//
// The buffer tracks occupancy with two cursors over a fixed backing
// array: start (one past the last popped slot) and end (the next write
// slot). The write cursor wraps modulo capacity; when it wraps, start is
// bumped to at least 1 so the occupancy formula can tell a full buffer
// from an empty one. The read cursor never wraps: it only returns to
// zero through Free, a transform rebuild or Restore. See buffer.go for
// the exact arithmetic.
//
// All operations are single-threaded; callers sharing a buffer across
// goroutines must provide their own mutual exclusion.
package ring
