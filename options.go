package arena

import "log/slog"

type options struct {
	logger *slog.Logger
	onFree func(AllocatorMetrics)
}

func defaultOptions() options {
	return options{logger: slog.New(slog.DiscardHandler)}
}

// Option configures a ChunkAllocator.
type Option func(*options)

// WithLogger sets the logger used for debug events such as chunk growth.
// By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithOnFree registers fn to be called once, when the last handle is
// released, with the allocator's final metrics.
func WithOnFree(fn func(AllocatorMetrics)) Option {
	return func(o *options) {
		o.onFree = fn
	}
}
