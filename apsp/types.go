// Package apsp: options and error definitions for the all-pairs engine.
package apsp

import (
	"errors"
	"fmt"
	"math"
	"runtime"
)

// Unreachable is the distance assigned to pairs with no connecting path.
var Unreachable = math.Inf(1)

// Sentinel errors for apsp execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("apsp: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("apsp: invalid option supplied")

	// ErrDisconnected is returned by Distribution when the distance matrix
	// contains unreachable pairs: the histogram is defined only for fully
	// connected graphs.
	ErrDisconnected = errors.New("apsp: distance matrix contains unreachable pairs")

	// ErrRaggedMatrix is returned when a distance matrix is not N×N.
	ErrRaggedMatrix = errors.New("apsp: distance matrix is not square")
)

// Option configures the all-pairs fan-out via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Distances is invoked.
type Option func(*options)

type options struct {
	workers int
	err     error
}

// defaultOptions bounds the fan-out by the number of schedulable CPUs.
func defaultOptions() options {
	return options{workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers caps the number of concurrent BFS sources.
//
//	w ≥ 1: run at most w sources at once
//	w < 1: invalid option → ErrOptionViolation
func WithWorkers(w int) Option {
	return func(o *options) {
		if w < 1 {
			o.err = fmt.Errorf("%w: workers must be positive (%d)", ErrOptionViolation, w)

			return
		}
		o.workers = w
	}
}

// Bucket is one bar of the distance distribution: Pairs vertex pairs lie
// at exactly Distance hops.
type Bucket struct {
	Distance int
	Pairs    int
}
