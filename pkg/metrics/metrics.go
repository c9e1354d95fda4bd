// Package metrics expone los contadores Prometheus del servicio: peticiones
// HTTP y operaciones del libro de stock.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestCounter cuenta las peticiones HTTP por método, ruta y estado.
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total de peticiones HTTP",
		},
		[]string{"service", "method", "path", "status"},
	)

	// RequestDurationHistogram duración de las peticiones en segundos.
	RequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duración de las peticiones HTTP en segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	// LedgerOperations cuenta las operaciones del motor del libro de stock por
	// operación (add_product, record_entry, record_exit, entry_status, ...) y
	// resultado (ok, rejected, error).
	LedgerOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_operations_total",
			Help: "Total de operaciones del libro de stock por resultado",
		},
		[]string{"operation", "outcome"},
	)
)

var registerOnce sync.Once

// Register registra los colectores en el registry por defecto. Idempotente.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDurationHistogram)
		prometheus.MustRegister(LedgerOperations)
	})
}

// FiberMiddleware registra contador y duración de cada petición atendida.
func FiberMiddleware(serviceName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		method := c.Method()
		path := c.Route().Path
		statusStr := strconv.Itoa(status)

		RequestCounter.WithLabelValues(serviceName, method, path, statusStr).Inc()
		RequestDurationHistogram.WithLabelValues(serviceName, method, path, statusStr).
			Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler handler HTTP estándar para exponer /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
