package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Simulation Metrics
var (
	SimulationRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSimulationRuns,
			Help: HelpTextSimulationRuns,
		},
		[]string{LabelMode, LabelOutcome},
	)

	StreamsSimulated = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameStreamsSimulated,
			Help: HelpTextStreamsSimulated,
		},
		[]string{LabelMode},
	)

	SimulationRate = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameSimulationRate,
			Help: HelpTextSimulationRate,
		},
		[]string{LabelMode},
	)

	BestLuck = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameBestLuck,
			Help: HelpTextBestLuck,
		},
		[]string{LabelMode},
	)

	ActiveWorkers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActiveWorkers,
			Help: HelpTextActiveWorkers,
		},
	)

	SimulationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameSimulationDuration,
			Help:    HelpTextSimulationDuration,
			Buckets: SimulationDurationBuckets,
		},
		[]string{LabelMode},
	)

	LuckierStreams = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLuckierStreamsTotal,
			Help: HelpTextLuckierStreamsTotal,
		},
		[]string{LabelMode},
	)
)

// Persistence Metrics
var (
	ResultsPersisted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameResultsPersisted,
			Help: HelpTextResultsPersisted,
		},
		[]string{LabelDriver},
	)

	ResultsPersistErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameResultsPersistErrors,
			Help: HelpTextResultsPersistErrors,
		},
		[]string{LabelDriver},
	)
)
