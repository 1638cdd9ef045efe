package vecpool

import "golang.org/x/time/rate"

// queueFactor is the ratio of queue capacity to thread count. A pool with n
// threads buffers up to n*queueFactor pending tasks before Submit blocks.
const queueFactor = 16

type options struct {
	logger        *Logger
	queueFactor   int
	submitRate    rate.Limit
	submitBurst   int
	maxInFlight   int64
	disablePrio   bool
}

// Option configures Pool and Registry construction.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		logger:      NewLogger(nil),
		queueFactor: queueFactor,
	}
}

// WithLogger configures the logger used for pool diagnostics.
//
// If nil is passed, the default text logger is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NewLogger(nil)
		}
		o.logger = l
	}
}

// WithQueueFactor overrides the queue capacity multiplier (default 16).
// Queue capacity is threads*factor and is fixed at construction.
// Non-positive values are ignored.
func WithQueueFactor(factor int) Option {
	return func(o *options) {
		if factor > 0 {
			o.queueFactor = factor
		}
	}
}

// WithSubmitRate throttles task admission to r tasks per second with the
// given burst. Useful to smooth bulk index-build ingestion so background
// work does not monopolize the queue. Zero disables throttling.
func WithSubmitRate(r rate.Limit, burst int) Option {
	return func(o *options) {
		o.submitRate = r
		o.submitBurst = burst
	}
}

// WithMaxInFlight caps the number of admitted-but-unfinished tasks.
// Submission blocks while the cap is reached. Zero means no cap beyond the
// queue capacity itself.
func WithMaxInFlight(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxInFlight = n
		}
	}
}

// WithoutOSPriority disables lowering worker OS thread priority on
// platforms that support it. Mostly useful in tests and benchmarks.
func WithoutOSPriority() Option {
	return func(o *options) {
		o.disablePrio = true
	}
}
