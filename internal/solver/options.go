package solver

import "time"

// Options configures solver behavior.
type Options struct {
	Timeout  time.Duration // Timeout bounds wall-clock search time (0 = no limit)
	MaxNodes int           // MaxNodes bounds visited search nodes (0 = no limit)
}

// DefaultOptions returns standard solver options.
func DefaultOptions() *Options {
	return &Options{
		Timeout:  10 * time.Second,
		MaxNodes: 0,
	}
}
