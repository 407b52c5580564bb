package eureka

import (
	"time"

	"github.com/juju/clock"
)

// options defines all configuration options for the pipeline.
type options struct {
	// Windowing options
	interval time.Duration // Aggregation window length; zero disables windowing
	clk      clock.Clock   // Time source driving the window timer
	eager    bool          // Emit the first batch immediately, bypassing the window
}

// Option is a function that configures the pipeline options.
type Option func(*options)

// WithInterval enables time-windowed aggregation of collapsed batches with
// the given window length.
func WithInterval(interval time.Duration) Option {
	return func(o *options) {
		o.interval = interval
	}
}

// WithClock sets the time source for the window timer.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clk = c
	}
}

// WithEagerPriming controls whether the first batch bypasses the window and
// is emitted immediately. It has no effect unless windowing is enabled.
func WithEagerPriming(enabled bool) Option {
	return func(o *options) {
		o.eager = enabled
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		interval: 0,
		clk:      clock.WallClock,
		eager:    true,
	}
}
