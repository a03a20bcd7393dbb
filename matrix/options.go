package matrix

// Options holds the construction parameters shared by all four variants.
type Options struct {
	// Capacity preallocates cell storage for this many nodes, deferring
	// the first stride growth until the count exceeds it.
	Capacity int
}

// Option adjusts Options during construction.
type Option func(*Options)

// DefaultOptions returns the zero configuration: no preallocation.
func DefaultOptions() Options {
	return Options{}
}

// WithCapacity preallocates storage for n nodes. Values ≤ 0 are ignored.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Capacity = n
		}
	}
}

// newOptions folds opts over the defaults.
func newOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
