package metrics

import (
	"database/sql"
	"log"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "gangcomisiones_"

	resultSuccess = "success"
)

var (
	registerOnce sync.Once

	ticketExportTotal   *prometheus.CounterVec
	ticketExportLatency *prometheus.HistogramVec

	reportTotal   *prometheus.CounterVec
	reportLatency *prometheus.HistogramVec
)

// Init registers observability metrics and DB-backed gauges.
func Init(db *sql.DB, logger *log.Logger) {
	registerOnce.Do(func() {
		ticketExportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "ticket_export_total",
				Help: "Total ticket exports by format and result",
			},
			[]string{"format", "result"},
		)
		ticketExportLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "ticket_export_latency_seconds",
				Help:    "Ticket export latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format"},
		)

		reportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "daily_report_total",
				Help: "Total daily report builds by format and result",
			},
			[]string{"format", "result"},
		)
		reportLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "daily_report_latency_seconds",
				Help:    "Daily report build latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format"},
		)

		prometheus.MustRegister(
			ticketExportTotal,
			ticketExportLatency,
			reportTotal,
			reportLatency,
		)

		if db != nil {
			registerDBMetrics(db, logger)
		}
	})
}

// ObserveTicketExport records one export request duration and result.
func ObserveTicketExport(format, result string, duration time.Duration) {
	if result == "" {
		result = resultSuccess
	}
	if ticketExportTotal != nil {
		ticketExportTotal.WithLabelValues(format, result).Inc()
	}
	if ticketExportLatency != nil {
		ticketExportLatency.WithLabelValues(format).Observe(duration.Seconds())
	}
}

// ObserveDailyReport records one report build duration and result.
func ObserveDailyReport(format, result string, duration time.Duration) {
	if result == "" {
		result = resultSuccess
	}
	if reportTotal != nil {
		reportTotal.WithLabelValues(format, result).Inc()
	}
	if reportLatency != nil {
		reportLatency.WithLabelValues(format).Observe(duration.Seconds())
	}
}
