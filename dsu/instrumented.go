package dsu

import (
	"github.com/sirupsen/logrus"
)

// Instrumented decorates a DisjointSet with logrus tracing and Prometheus
// counters. Either may be nil. It adds no locking of its own; wrap it in
// Synchronized (New does so with WithLocking) for concurrent use.
type Instrumented struct {
	inner    DisjointSet
	logger   logrus.FieldLogger
	metrics  *Metrics
	strategy string
}

// NewInstrumented wraps ds. The sets gauge is initialized to ds.Count().
func NewInstrumented(ds DisjointSet, logger logrus.FieldLogger, metrics *Metrics) *Instrumented {
	in := &Instrumented{
		inner:    ds,
		logger:   logger,
		metrics:  metrics,
		strategy: ds.Strategy().String(),
	}
	if metrics != nil {
		metrics.Sets.WithLabelValues(in.strategy).Set(float64(ds.Count()))
	}
	return in
}

// Strategy returns the inner strategy.
func (in *Instrumented) Strategy() Strategy { return in.inner.Strategy() }

// FindMutates mirrors the inner set.
func (in *Instrumented) FindMutates() bool { return in.inner.FindMutates() }

// Len returns the universe size.
func (in *Instrumented) Len() int { return in.inner.Len() }

// Count returns the number of sets.
func (in *Instrumented) Count() int { return in.inner.Count() }

// Find delegates and records the call.
func (in *Instrumented) Find(i int) (int, error) {
	r, err := in.inner.Find(i)
	in.record("find", err, logrus.Fields{"i": i})
	return r, err
}

// Connected delegates and records the call.
func (in *Instrumented) Connected(p, q int) (bool, error) {
	ok, err := in.inner.Connected(p, q)
	in.record("connected", err, logrus.Fields{"p": p, "q": q})
	return ok, err
}

// Union delegates, records the call and, when two sets were joined, the merge.
func (in *Instrumented) Union(p, q int) error {
	before := in.inner.Count()
	err := in.inner.Union(p, q)
	in.record("union", err, logrus.Fields{"p": p, "q": q})
	if err != nil {
		return err
	}

	after := in.inner.Count()
	if after == before {
		return nil
	}
	if in.metrics != nil {
		in.metrics.MergesTotal.WithLabelValues(in.strategy).Inc()
		in.metrics.Sets.WithLabelValues(in.strategy).Set(float64(after))
	}
	if in.logger != nil {
		in.logger.WithFields(logrus.Fields{
			"strategy": in.strategy,
			"p":        p,
			"q":        q,
			"sets":     after,
		}).Debug("merged sets")
	}
	return nil
}

// Unwrap returns the decorated set.
func (in *Instrumented) Unwrap() DisjointSet { return in.inner }

// String renders the partition of the decorated set.
func (in *Instrumented) String() string { return Format(in.inner) }

func (in *Instrumented) record(op string, err error, fields logrus.Fields) {
	if in.metrics != nil {
		in.metrics.observe(in.strategy, op, err)
	}
	if err != nil && in.logger != nil {
		in.logger.WithFields(fields).
			WithField("strategy", in.strategy).
			WithField("op", op).
			WithError(err).
			Debug("disjoint-set call failed")
	}
}
