package dsu

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Option configures the set returned by New.
type Option func(c *config)

type config struct {
	logger  logrus.FieldLogger
	metrics *Metrics
	locking bool
}

// WithLogger traces merges and failed calls on l at Debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) { c.logger = l }
}

// WithMetrics records operation counters on m.
func WithMetrics(m *Metrics) Option {
	return func(c *config) { c.metrics = m }
}

// WithLocking wraps the result in Synchronized.
func WithLocking() Option {
	return func(c *config) { c.locking = true }
}

// New creates a DisjointSet of n singletons using the given strategy.
//
// Wrappers are applied inside-out: strategy, then Instrumented (when a
// logger or metrics are set), then Synchronized (WithLocking), so the lock
// also covers instrumentation bookkeeping.
//
// Errors:
//   - ErrInvalidArgument if n < 0.
//   - ErrUnknownStrategy if strategy is not one of Strategies().
func New(strategy Strategy, n int, opts ...Option) (DisjointSet, error) {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	var (
		ds  DisjointSet
		err error
	)
	switch strategy {
	case QuickFind:
		ds, err = NewQuickFind(n)
	case QuickUnion:
		ds, err = NewQuickUnion(n)
	case WeightedQuickUnion:
		ds, err = NewWeighted(n)
	case WeightedQuickUnionPathCompression:
		ds, err = NewCompressed(n)
	default:
		return nil, errors.Wrapf(ErrUnknownStrategy, "strategy %d", int(strategy))
	}
	if err != nil {
		return nil, err
	}

	if c.logger != nil || c.metrics != nil {
		ds = NewInstrumented(ds, c.logger, c.metrics)
	}
	if c.locking {
		ds = NewSynchronized(ds)
	}
	return ds, nil
}
