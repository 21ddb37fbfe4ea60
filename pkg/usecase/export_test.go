package usecase

// Export internal functions for testing
var (
	BuildReportBlocks = buildReportBlocks
	ReportSummary     = reportSummary
)
