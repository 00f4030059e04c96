// File: dijkstra/types.go
// Configuration options and errors for Dijkstra's algorithm on grids.
package dijkstra

import (
	"errors"
	"math"
)

// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
// which is not meaningful for a distance threshold.
var ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

// Options configures the behavior of the Dijkstra algorithm.
//
// Weighted    – entering a cell costs its grid weight instead of 1.
// MaxDistance – cells whose distance would exceed this value are not settled.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options struct {
	Weighted    bool  // Use per-cell weights as edge costs
	MaxDistance int64 // Maximum distance to explore
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithWeighted makes the cost of entering a cell its grid weight.
func WithWeighted() Option {
	return func(o *Options) {
		o.Weighted = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Cells whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns unit edge costs and no distance cap.
func DefaultOptions() Options {
	return Options{
		Weighted:    false,
		MaxDistance: math.MaxInt64,
	}
}
