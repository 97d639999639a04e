package convexity

import (
	"log"
	"runtime"
)

// Options configures an index computation. Use DefaultOptions and the With*
// functions rather than filling it by hand.
type Options struct {
	// Workers bounds the goroutines evaluating pixel pairs.
	Workers int
	// Element is the structuring element for the boundary pixel set.
	Element *StructuringElement
	// Logger receives debug lines; nil disables logging.
	Logger *log.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns NumCPU workers, 8-connectivity and no logging.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.NumCPU(),
		Element: Conn8(),
	}
}

// WithWorkers sets the number of concurrent pair-evaluation goroutines.
// Values below 1 fall back to runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = runtime.NumCPU()
		}
		o.Workers = n
	}
}

// WithLogger enables debug logging to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithStructuringElement sets the erosion element used by Analyze in
// BoundaryPixels mode. A nil element keeps the current one.
func WithStructuringElement(se *StructuringElement) Option {
	return func(o *Options) {
		if se != nil {
			o.Element = se
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

func (o *Options) debugf(format string, args ...any) {
	if o.Logger != nil {
		o.Logger.Printf(format, args...)
	}
}
