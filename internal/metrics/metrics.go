// Package metrics содержит Prometheus-метрики исходящих запросов
// к внешнему inventory API. Метрики отдаются на /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_api_requests_total",
		Help: "Количество исходящих запросов к inventory API по операциям и статусам.",
	}, []string{"operation", "status"})

	apiRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "inventory_api_request_duration_seconds",
		Help:    "Длительность исходящих запросов к inventory API.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
)

// ObserveAPIRequest фиксирует один исходящий запрос.
// status == 0 означает транспортную ошибку без HTTP-ответа.
func ObserveAPIRequest(operation string, status int, duration time.Duration) {
	label := "network_error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	apiRequestsTotal.WithLabelValues(operation, label).Inc()
	apiRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
