// File: ring/stats.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Per-buffer operation accounting.

package ring

// BufferStats aggregates operation counters for one buffer. The
// counters are monotonic for the buffer's lifetime; Free and the bulk
// transforms do not reset them, and rebuild pushes are not counted.
type BufferStats struct {
	Pushes     int64
	Pops       int64
	Overflows  int64
	Underflows int64
}

// Stats returns a copy of the current counters.
func (b *Buffer[T]) Stats() BufferStats {
	return b.stats
}
