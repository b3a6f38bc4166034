package metrics

// Option configures a Metrics instance.
type Option func(*Metrics)

// WithNamespace overrides the metric name prefix ("fit" by default).
func WithNamespace(namespace string) Option {
	return func(m *Metrics) {
		m.namespace = namespace
	}
}

// WithHistogramBuckets sets the request duration buckets, in seconds.
func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Metrics) {
		if len(buckets) > 0 {
			m.histogramBuckets = buckets
		}
	}
}
