package telemetry

import (
	"shiftdesk/config"
	"shiftdesk/internal/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric struct
type Metric struct {
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec
	ShiftsStartedTotal  *prometheus.CounterVec
	ShiftsClosedTotal   *prometheus.CounterVec
	ShiftConflictsTotal *prometheus.CounterVec
	JournalAppendFails  *prometheus.CounterVec
	config              *config.Configuration
}

// NewMetric 建立所有指標；telemetry.metric 未啟用時全部為 nil，使用端需自行判空
func NewMetric(config *config.Configuration) *Metric {
	if config == nil || !config.Telemetry.Metric.Enabled {
		return &Metric{}
	}
	buckets := prometheus.DefBuckets
	if len(config.Telemetry.Metric.Buckets) > 0 {
		buckets = config.Telemetry.Metric.Buckets
	}
	return &Metric{
		config: config,
		HttpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricHttpRequestsTotal),
				Help: "Total received API requests",
			},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelStatus),
		),
		HttpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    config.App.Name + "_" + string(core.MetricHttpRequestDuration),
				Help:    "Request duration (seconds)",
				Buckets: buckets,
			},
			labelNames(core.MetricLabelEndpoint),
		),
		ShiftsStartedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricShiftsStartedTotal),
				Help: "Shifts started, by store",
			},
			labelNames(core.MetricLabelStore),
		),
		ShiftsClosedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricShiftsClosedTotal),
				Help: "Shifts closed, by store",
			},
			labelNames(core.MetricLabelStore),
		),
		ShiftConflictsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricShiftConflictsTotal),
				Help: "StartShift rejected because an active shift already exists",
			},
			labelNames(core.MetricLabelStore),
		),
		JournalAppendFails: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricJournalAppendFailTotal),
				Help: "Best-effort journal appends that failed and were discarded",
			},
			labelNames(core.MetricLabelType),
		),
	}
}

// labelNames helper: LabelName slice 轉成 []string
func labelNames(labels ...core.MetricLabelName) []string {
	strs := make([]string, len(labels))
	for i, l := range labels {
		strs[i] = string(l)
	}
	return strs
}
