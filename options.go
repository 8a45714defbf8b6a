package chessgame

import (
	"go.uber.org/zap"

	"github.com/dev0Guy/ChessGame/internal/stats"
)

// Option configures a Grid.
type Option interface {
	apply(*options)
}

// options holds the grid configuration.
type options struct {
	stats  stats.Collector
	logger *zap.Logger
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		stats:  stats.NewNoop(),
		logger: zap.NewNop(),
	}
}

// optionFunc wraps a function to implement Option.
type optionFunc func(*options)

// Compile-time check that optionFunc implements Option.
var _ Option = optionFunc(nil)

func (f optionFunc) apply(o *options) { f(o) }

// WithStats sets the stats collector to use.
// If not set, metrics are discarded.
func WithStats(c stats.Collector) Option {
	return optionFunc(func(o *options) {
		if c != nil {
			o.stats = c
		}
	})
}

// WithLogger sets the logger to use.
// If not set, logging is disabled.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(o *options) {
		if l != nil {
			o.logger = l
		}
	})
}
