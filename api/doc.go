// Package api
// Author: momentics <momentics@gmail.com>
//
// Contracts and error types for the ringkit library.
// Concrete implementations live in the ring and fake packages;
// consumers that only need the FIFO surface should depend on
// these interfaces rather than on a concrete buffer type.
package api
