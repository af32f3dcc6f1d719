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

// Combat metric names
const (
	MetricNameCombatsResolved    = "combats_resolved_total"
	MetricNameCombatRounds       = "combat_rounds"
	MetricNameDuelTurns          = "duel_turns_total"
	MetricNameDailyCacheLookups  = "daily_cache_lookups_total"
	MetricNameDailyResultsPruned = "daily_results_pruned_total"
	MetricNameStorageErrors      = "storage_errors_total"
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

// Combat metric help text
const (
	HelpTextCombatsResolved    = "Total number of auto-resolved combats by outcome"
	HelpTextCombatRounds       = "Number of duel rounds played per auto-resolved combat"
	HelpTextDuelTurns          = "Total number of duel turns resolved through the API"
	HelpTextDailyCacheLookups  = "Total number of daily result lookups by result"
	HelpTextDailyResultsPruned = "Total number of stale daily results deleted"
	HelpTextStorageErrors      = "Total number of daily result storage failures by operation"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOutcome   = "outcome"
	LabelResult    = "result"
	LabelOperation = "operation"
)

// Label values
const (
	OutcomeVictory = "victory"
	OutcomeDefeat  = "defeat"

	LookupHit  = "hit"
	LookupMiss = "miss"

	OperationGet = "get"
	OperationSet = "set"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// CombatRoundBuckets covers short skirmishes up to long stalemates
var CombatRoundBuckets = []float64{1, 2, 3, 5, 8, 13, 21, 30, 50}
