package aggregate

import "github.com/juju/clock"

// options defines the configuration options for an aggregator.
type options struct {
	clock clock.Clock
}

// Option is a function that configures an aggregator.
type Option func(*options)

// WithClock sets the time source driving the window timer. Tests inject a
// fake clock here.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		clock: clock.WallClock,
	}
}
