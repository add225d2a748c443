package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Colectores del servicio. Las coerciones a default de la normalización se
// exponen por razón: son el canal de diagnóstico de payloads degradados.
var (
	OrdersNormalized = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pedidos_orders_normalized_total",
		Help: "Pedidos normalizados a su forma canónica",
	})

	CoercionFallbacks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pedidos_coercion_fallbacks_total",
		Help: "Coerciones de normalización que cayeron al valor por defecto",
	}, []string{"reason"})

	DocumentsRendered = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pedidos_documents_rendered_total",
		Help: "Documentos PDF renderizados",
	})

	ValidationFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pedidos_validation_failures_total",
		Help: "Pedidos rechazados por datos de cliente inválidos",
	})
)

// Register registra todos los colectores en el registro por defecto
func Register() {
	prometheus.MustRegister(
		OrdersNormalized,
		CoercionFallbacks,
		DocumentsRendered,
		ValidationFailures,
	)
}

// RecordFallbacks vuelca un mapa razón→conteo en el colector de coerciones
func RecordFallbacks(fallbacks map[string]int) {
	for reason, n := range fallbacks {
		CoercionFallbacks.WithLabelValues(reason).Add(float64(n))
	}
}
