package report

// ============================================================================
// CSV columns
// ============================================================================

const (
	ColumnBarters              = "barters"
	ColumnBlazes               = "blazes"
	ColumnCount                = "count"
	ColumnFrequency            = "frequency"
	ColumnEstimatedProbability = "estimated_probability"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgProgress       = "Simulation progress"
	LogMsgNewBest        = "Luckier stream found"
	LogMsgStarted        = "Simulating"
	LogMsgCompleted      = "Simulation finished"
	LogMsgFailed         = "Simulation stopped with error"
	LogMsgReportWritten  = "Report written"
	LogMsgCreateDirError = "Failed to create report directory"
)

const floatFormatPrecision = -1
