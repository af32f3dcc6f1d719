package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Combat error messages
	ErrMsgTurnFailed   = "Failed to resolve turn"
	ErrMsgAttackFailed = "Failed to resolve attack"

	// Mission error messages
	ErrMsgGenerateMissionFailed = "Failed to generate mission"
	ErrMsgResolveMissionFailed  = "Failed to resolve mission"

	// Idle error messages
	ErrMsgDailyResultFailed = "Failed to get daily result"
)

// Health check messages
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	MsgDatabaseUnavailable  = "database connection failed"
	MsgNoDatabaseConfigured = "no database configured"
)
