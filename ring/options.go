// File: ring/options.go
// Package ring defines functional options for buffer construction.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

// DefaultCapacity is the slot count used when WithCapacity is not given.
const DefaultCapacity = 100

// Option customizes buffer construction.
type Option func(*config)

type config struct {
	capacity       int
	allowOverwrite bool
}

// WithCapacity sets the fixed slot count.
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}

// WithOverwrite lets Push replace the value in an occupied slot
// instead of failing with an overflow.
func WithOverwrite() Option {
	return func(c *config) {
		c.allowOverwrite = true
	}
}
