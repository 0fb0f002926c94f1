package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pet_adoption"

// Metrics agrupa los indicadores de negocio del intake y el catálogo.
// Implementa intake.Recorder y catalog.Recorder.
type Metrics struct {
	FieldChangesTotal   *prometheus.CounterVec
	SubmissionsTotal    *prometheus.CounterVec
	SubmissionsRejected prometheus.Counter
	CatalogRecords      prometheus.Gauge
}

// New registra las métricas en registerer. Con un registry propio por router los
// tests pueden crear varios sin colisiones de registro.
func New(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		FieldChangesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "intake_field_changes_total",
			Help:      "Field changes applied to intake forms, by field kind",
		}, []string{"kind"}),
		SubmissionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "intake_submissions_total",
			Help:      "Accepted intake submissions, by species",
		}, []string{"species"}),
		SubmissionsRejected: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "intake_submissions_rejected_total",
			Help:      "Submissions attempted while the form was not submittable",
		}),
		CatalogRecords: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_records",
			Help:      "Current number of records in the adoption catalog",
		}),
	}
}

func (m *Metrics) FieldChanged(kind string) {
	m.FieldChangesTotal.WithLabelValues(kind).Inc()
}

func (m *Metrics) SubmissionAccepted(species string) {
	m.SubmissionsTotal.WithLabelValues(species).Inc()
}

func (m *Metrics) SubmissionRejected() {
	m.SubmissionsRejected.Inc()
}

func (m *Metrics) SetCatalogSize(n int) {
	m.CatalogRecords.Set(float64(n))
}
