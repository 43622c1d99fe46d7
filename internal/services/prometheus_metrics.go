package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	proposalUploadsTotal      *prometheus.CounterVec
	proposalUploadDuration    prometheus.Histogram
	masterRatesUploadsTotal   *prometheus.CounterVec
	masterRatesUploadDuration prometheus.Histogram
	populateRunsTotal         *prometheus.CounterVec
	populateDuration          prometheus.Histogram
	worksheetOpensTotal       prometheus.Counter
	lineItemEditsTotal        prometheus.Counter
	exportsTotal              *prometheus.CounterVec
	exportDuration            prometheus.Histogram
	projectsCreatedTotal      prometheus.Counter
	openWorksheetsTotal       prometheus.Gauge
	authenticationEventsTotal *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		proposalUploadsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "proposal_uploads_total",
				Help: "Total number of proposal spreadsheet uploads",
			},
			[]string{"status"},
		),
		proposalUploadDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "proposal_upload_duration_milliseconds",
				Help:    "Proposal upload processing duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		masterRatesUploadsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "master_rates_uploads_total",
				Help: "Total number of master rate table uploads",
			},
			[]string{"status"},
		),
		masterRatesUploadDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "master_rates_upload_duration_milliseconds",
				Help:    "Master rate table upload duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		populateRunsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "populate_runs_total",
				Help: "Total number of reconciliation runs against the master rate table",
			},
			[]string{"status"},
		),
		populateDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "populate_duration_milliseconds",
				Help:    "Reconciliation run duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		worksheetOpensTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "worksheet_opens_total",
				Help: "Total number of proposal files opened into a worksheet",
			},
		),
		lineItemEditsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "line_item_edits_total",
				Help: "Total number of manual line item price edits",
			},
		),
		exportsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exports_total",
				Help: "Total number of worksheet exports",
			},
			[]string{"format", "status"},
		),
		exportDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "export_duration_milliseconds",
				Help:    "Export rendering duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		projectsCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "projects_created_total",
				Help: "Total number of projects created",
			},
		),
		openWorksheetsTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "open_worksheets_total",
				Help: "Current number of open worksheet sessions",
			},
		),
		authenticationEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "proposal_upload":
		if status != "" {
			m.proposalUploadsTotal.WithLabelValues(status).Inc()
		}
	case "master_rates_upload":
		if status != "" {
			m.masterRatesUploadsTotal.WithLabelValues(status).Inc()
		}
	case "populate_run":
		if status != "" {
			m.populateRunsTotal.WithLabelValues(status).Inc()
		}
	case "worksheet_open":
		m.worksheetOpensTotal.Inc()
	case "line_item_edit":
		m.lineItemEditsTotal.Inc()
	case "export":
		if format := tags["format"]; format != "" && status != "" {
			m.exportsTotal.WithLabelValues(format, status).Inc()
		}
	case "project_created":
		m.projectsCreatedTotal.Inc()
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "proposal_upload":
		m.proposalUploadDuration.Observe(float64(duration.Milliseconds()))
	case "master_rates_upload":
		m.masterRatesUploadDuration.Observe(float64(duration.Milliseconds()))
	case "populate_run":
		m.populateDuration.Observe(float64(duration.Milliseconds()))
	case "export":
		m.exportDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "open_worksheets":
		m.openWorksheetsTotal.Set(value)
	}
}
