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

// Combat Metrics
var (
	CombatsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCombatsResolved,
			Help: HelpTextCombatsResolved,
		},
		[]string{LabelOutcome},
	)

	CombatRounds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameCombatRounds,
			Help:    HelpTextCombatRounds,
			Buckets: CombatRoundBuckets,
		},
	)

	DuelTurns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDuelTurns,
			Help: HelpTextDuelTurns,
		},
	)
)

// Daily Result Metrics
var (
	DailyCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDailyCacheLookups,
			Help: HelpTextDailyCacheLookups,
		},
		[]string{LabelResult},
	)

	DailyResultsPruned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDailyResultsPruned,
			Help: HelpTextDailyResultsPruned,
		},
	)

	StorageErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStorageErrors,
			Help: HelpTextStorageErrors,
		},
		[]string{LabelOperation},
	)
)

// RecordCombat records the outcome and length of one auto-resolved combat
func RecordCombat(victory bool, rounds int) {
	outcome := OutcomeDefeat
	if victory {
		outcome = OutcomeVictory
	}
	CombatsResolved.WithLabelValues(outcome).Inc()
	CombatRounds.Observe(float64(rounds))
}
