package submit

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels recorded on the submissions counter.
const (
	OutcomeSuccess   = "success"
	OutcomeRejected  = "rejected"
	OutcomeTransport = "transport_error"
)

type metrics struct {
	submissions *prometheus.CounterVec
	duration    prometheus.Histogram
}

// WithRegisterer records submission outcomes and latency on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *Client) {
		if reg == nil {
			return
		}
		m, err := newMetrics(reg)
		if err != nil {
			c.logger.Warn("submission metrics disabled", "error", err)
			return
		}
		c.metrics = m
	}
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "candidateform",
		Name:      "submissions_total",
		Help:      "Candidate application submissions by outcome.",
	}, []string{"outcome"})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "candidateform",
		Name:      "submission_duration_seconds",
		Help:      "Round trip time of candidate application submissions.",
		Buckets:   prometheus.DefBuckets,
	})

	var err error
	if submissions, err = registerOrReuse(reg, submissions); err != nil {
		return nil, err
	}
	if duration, err = registerOrReuse(reg, duration); err != nil {
		return nil, err
	}
	return &metrics{submissions: submissions, duration: duration}, nil
}

func registerOrReuse[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (m *metrics) observe(err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	switch {
	case err == nil:
	case errors.Is(err, ErrStatus):
		outcome = OutcomeRejected
	default:
		outcome = OutcomeTransport
	}
	m.submissions.WithLabelValues(outcome).Inc()
	m.duration.Observe(elapsed.Seconds())
}
