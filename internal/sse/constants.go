package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 64

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 32
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second

	// QueryParamTypes filters the event types a client receives
	QueryParamTypes = "types"
)

// Event types for SSE
const (
	EventTypeConnected          = "connected"
	EventTypeKeepalive          = "keepalive"
	EventTypeSimulationStarted  = "simulation.started"
	EventTypeSimulationProgress = "simulation.progress"
	EventTypeSimulationNewBest  = "simulation.new_best"
	EventTypeSimulationDone     = "simulation.completed"
	EventTypeSimulationFailed   = "simulation.failed"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventDropped       = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError         = "Failed to write SSE event"
)
