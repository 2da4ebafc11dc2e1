package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedeemDuration tracks the latency of redemption submits
	RedeemDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "campaign_redeem_duration_seconds",
			Help: "Duration of redemption submits in seconds",
			Buckets: []float64{
				0.005, // 5ms
				0.01,  // 10ms
				0.025, // 25ms
				0.05,  // 50ms
				0.1,   // 100ms
				0.25,  // 250ms
				0.5,   // 500ms
				1.0,   // 1s
				2.5,   // 2.5s
				5.0,   // 5s
				10.0,  // 10s
			},
		},
		[]string{"status"}, // success or failure
	)

	// ValidationOutcomes counts ReadyToUse verdicts by reason
	ValidationOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_validation_outcomes_total",
			Help: "ReadyToUse verdicts grouped by outcome and reason code",
		},
		[]string{"outcome", "reason"},
	)

	// SnapshotCacheLookups counts cache-aside hits and misses
	SnapshotCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_snapshot_cache_lookups_total",
			Help: "Snapshot cache lookups grouped by result",
		},
		[]string{"result"}, // hit or miss
	)
)

// RecordRedeemDuration records the duration of one redemption submit
func RecordRedeemDuration(status string, duration float64) {
	RedeemDuration.WithLabelValues(status).Observe(duration)
}

// RecordValidationOutcome records one validation verdict
func RecordValidationOutcome(reason string, ready bool) {
	outcome := "not_ready"
	if ready {
		outcome = "ready"
		reason = "none"
	}
	ValidationOutcomes.WithLabelValues(outcome, reason).Inc()
}

// RecordSnapshotCache records one cache lookup result
func RecordSnapshotCache(result string) {
	SnapshotCacheLookups.WithLabelValues(result).Inc()
}
