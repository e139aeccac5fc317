// Package metrics содержит метрики Prometheus сервиса расчёта.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Расчёт позиций
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fittings_calculations_total",
			Help: "Total number of item calculations",
		},
		[]string{"family", "status"},
	)

	CalculationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fittings_calculation_duration_seconds",
			Help:    "Time taken to calculate one item",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
		[]string{"family"},
	)

	BatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fittings_batch_size",
			Help:    "Number of items per batch calculation",
			Buckets: []float64{1, 5, 10, 50, 100, 250, 500},
		},
	)

	// Подсказки
	CandidatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fittings_candidates_requests_total",
			Help: "Total number of candidate requests",
		},
		[]string{"column", "status"},
	)

	// Справочник
	DatasetRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fittings_dataset_records",
			Help: "Number of reference records per type code",
		},
		[]string{"type_id"},
	)

	DatasetLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fittings_dataset_load_duration_seconds",
			Help:    "Time taken to load and build the reference dataset",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// ObserveCalculation записывает исход и длительность расчёта одной позиции.
func ObserveCalculation(family string, started time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	CalculationsTotal.WithLabelValues(family, status).Inc()
	CalculationDuration.WithLabelValues(family).Observe(time.Since(started).Seconds())
}

// ObserveCandidates записывает запрос подсказок.
func ObserveCandidates(column string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	CandidatesTotal.WithLabelValues(column, status).Inc()
}
