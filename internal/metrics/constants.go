package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Simulation metric names
const (
	MetricNameSimulationRuns       = "dropluck_simulation_runs_total"
	MetricNameStreamsSimulated     = "dropluck_streams_simulated"
	MetricNameSimulationRate       = "dropluck_streams_per_second"
	MetricNameBestLuck             = "dropluck_best_luck"
	MetricNameActiveWorkers        = "dropluck_active_workers"
	MetricNameSimulationDuration   = "dropluck_simulation_duration_seconds"
	MetricNameLuckierStreamsTotal  = "dropluck_luckier_streams_total"
	MetricNameResultsPersisted     = "dropluck_results_persisted_total"
	MetricNameResultsPersistErrors = "dropluck_results_persist_errors_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Simulation metric help text
const (
	HelpTextSimulationRuns       = "Simulation runs by mode and outcome"
	HelpTextStreamsSimulated     = "Streams simulated by the current run"
	HelpTextSimulationRate       = "Streams simulated per second by the current run"
	HelpTextBestLuck             = "Combined luck of the luckiest stream so far"
	HelpTextActiveWorkers        = "Workers running in the current simulation"
	HelpTextSimulationDuration   = "Wall time of finished simulation runs"
	HelpTextLuckierStreamsTotal  = "Times a luckier stream replaced the best"
	HelpTextResultsPersisted     = "Simulation results written to the store"
	HelpTextResultsPersistErrors = "Failed attempts to write simulation results"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelMode    = "mode"
	LabelOutcome = "outcome"
	LabelDriver  = "driver"
)

// Outcome label values
const (
	OutcomeCompleted = "completed"
	OutcomeFailed    = "failed"
)

// ============================================================================
// Buckets
// ============================================================================

var (
	// HTTPLatencyBuckets in seconds
	HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5}

	// SimulationDurationBuckets in seconds
	SimulationDurationBuckets = []float64{1, 5, 15, 60, 300, 900, 3600, 14400}
)
