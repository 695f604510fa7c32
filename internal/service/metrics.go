package service

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts the lifecycle events the service emits. A nil *Metrics
// is valid and counts nothing, so tests can skip registration.
type Metrics struct {
	documentsCreated   *prometheus.CounterVec
	signaturesRecorded prometheus.Counter
	documentsCompleted prometheus.Counter
	documentsExpired   prometheus.Counter
}

// NewMetrics registers the service counters on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		documentsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "safesign_documents_created_total",
				Help: "Total number of documents created, by template type.",
			},
			[]string{"type"},
		),
		signaturesRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "safesign_signatures_recorded_total",
			Help: "Total number of signatures recorded.",
		}),
		documentsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "safesign_documents_completed_total",
			Help: "Total number of documents that reached completed status.",
		}),
		documentsExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "safesign_documents_expired_total",
			Help: "Total number of documents expired by the janitor.",
		}),
	}

	for _, c := range []prometheus.Collector{
		m.documentsCreated,
		m.signaturesRecorded,
		m.documentsCompleted,
		m.documentsExpired,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) DocumentCreated(docType string) {
	if m == nil {
		return
	}
	m.documentsCreated.WithLabelValues(docType).Inc()
}

func (m *Metrics) SignatureRecorded() {
	if m == nil {
		return
	}
	m.signaturesRecorded.Inc()
}

func (m *Metrics) DocumentCompleted() {
	if m == nil {
		return
	}
	m.documentsCompleted.Inc()
}

func (m *Metrics) DocumentExpired() {
	if m == nil {
		return
	}
	m.documentsExpired.Inc()
}
