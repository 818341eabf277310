package jvalue

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exports encoder activity as Prometheus counters
type Metrics struct {
	documents *prometheus.CounterVec
	bytes     *prometheus.CounterVec
}

// NewMetrics creates the encoder counters and registers them with reg.
// A nil reg leaves the counters unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		documents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jvalue",
			Name:      "documents_encoded_total",
			Help:      "Total number of documents written by encoders.",
		}, []string{"format"}),
		bytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jvalue",
			Name:      "bytes_encoded_total",
			Help:      "Total number of bytes written by encoders.",
		}, []string{"format"}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.documents, m.bytes} {
		if err := reg.Register(c); err != nil {
			return nil, WrapError(err, "register_metrics", "registering encoder counters")
		}
	}
	return m, nil
}

func (m *Metrics) observe(f Format, n int) {
	label := f.String()
	m.documents.WithLabelValues(label).Inc()
	m.bytes.WithLabelValues(label).Add(float64(n))
}
