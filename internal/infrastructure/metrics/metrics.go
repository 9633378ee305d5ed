// Package metrics publica contadores Prometheus de las mutaciones del documento,
// del tamaño de la instantánea y de las sugerencias de margen.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/fiyatvizyon-api/internal/application/ports"
)

const namespace = "fiyatvizyon"

var _ ports.Metrics = (*Prometheus)(nil)

// Prometheus implementa ports.Metrics sobre un registro propio.
type Prometheus struct {
	registry    *prometheus.Registry
	mutations   *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	docSize     *prometheus.GaugeVec
	suggestions *prometheus.CounterVec
}

// New crea y registra los colectores. Incluye los de proceso y runtime de Go.
func New() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "document_mutations_total",
			Help:      "Mutaciones del documento por operación y resultado.",
		}, []string{"op", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "document_save_seconds",
			Help:      "Duración de mutación más guardado completo del documento.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		docSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "document_entities",
			Help:      "Cantidad de entidades en la instantánea vigente.",
		}, []string{"kind"}),
		suggestions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "margin_suggestions_total",
			Help:      "Sugerencias de margen por resultado.",
		}, []string{"outcome"}),
	}
	p.registry.MustRegister(
		p.mutations, p.duration, p.docSize, p.suggestions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return p
}

// ObserveMutation cuenta la mutación y su duración.
func (p *Prometheus) ObserveMutation(op string, err error, elapsed time.Duration) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	p.mutations.WithLabelValues(op, result).Inc()
	p.duration.WithLabelValues(op).Observe(elapsed.Seconds())
}

// SetDocumentSize publica los tamaños por tipo de entidad.
func (p *Prometheus) SetDocumentSize(products, ingredients, categories, margins int) {
	p.docSize.WithLabelValues("products").Set(float64(products))
	p.docSize.WithLabelValues("ingredients").Set(float64(ingredients))
	p.docSize.WithLabelValues("categories").Set(float64(categories))
	p.docSize.WithLabelValues("margins").Set(float64(margins))
}

// ObserveSuggestion cuenta el resultado de una sugerencia.
func (p *Prometheus) ObserveSuggestion(outcome string) {
	p.suggestions.WithLabelValues(outcome).Inc()
}

// Handler expone el registro en formato de texto Prometheus.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

// Registry registro subyacente.
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}
