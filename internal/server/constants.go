package server

import "time"

// Routes
const (
	RouteHealthz        = "/healthz"
	RouteReadyz         = "/readyz"
	RouteMetrics        = "/metrics"
	RouteEvents         = "/events"
	RouteAPIPrefix      = "/api/v1"
	RouteProgress       = "/progress"
	RouteRuns           = "/runs"
	RouteRun            = "/runs/{runID}"
	RouteRunHistogram   = "/runs/{runID}/histogram"
	RouteRunBest        = "/runs/{runID}/best"
	URLParamRunID       = "runID"
	QueryParamLimit     = "limit"
	DefaultRunsLimit    = 20
	MaxRunsLimit        = 500
	ReadyCheckTimeout   = 2 * time.Second
	ReadHeaderTimeout   = 5 * time.Second
	ShutdownGracePeriod = 5 * time.Second
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestCompleted = "Request completed"
	LogMsgReadyCheckFailed = "Readiness check failed"
	LogMsgHandlerError     = "Request handler error"
)

// Response values
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
	ContentTypeJSON   = "application/json"
	HeaderContentType = "Content-Type"
)

// Security header names and values
const (
	HeaderNoSniff            = "X-Content-Type-Options"
	HeaderFrameOptions       = "X-Frame-Options"
	HeaderReferrerPolicy     = "Referrer-Policy"
	HeaderValueNoSniff       = "nosniff"
	HeaderValueSameOrigin    = "SAMEORIGIN"
	HeaderValueStrictReferer = "strict-origin-when-cross-origin"
)
