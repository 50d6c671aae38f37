package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	RecordsCreated     prometheus.Counter
	ArtifactsGenerated prometheus.Counter
	IssuanceFailures   *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		RecordsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "property_tag_records_created_total",
			Help: "Total number of property records inserted",
		}),
		ArtifactsGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "property_tag_artifacts_generated_total",
			Help: "Total number of tag images written to disk",
		}),
		IssuanceFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "property_tag_issuance_failures_total",
			Help: "Issuance failures by pipeline stage",
		}, []string{"stage"}),
	}
}

// All increment helpers tolerate a nil receiver so tests can pass a nil
// *Metrics without registering collectors.

func (m *Metrics) IncRecordsCreated() {
	if m == nil {
		return
	}
	m.RecordsCreated.Inc()
}

func (m *Metrics) IncArtifactsGenerated() {
	if m == nil {
		return
	}
	m.ArtifactsGenerated.Inc()
}

func (m *Metrics) IncIssuanceFailure(stage string) {
	if m == nil {
		return
	}
	m.IssuanceFailures.WithLabelValues(stage).Inc()
}
