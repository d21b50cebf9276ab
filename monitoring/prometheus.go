package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sentinelhq/sentinel/logx"
)

type SubmitRejectedReason string

var (
	SubmitNotInitialized   SubmitRejectedReason = "not_initialized"
	SubmitInvalidSignature SubmitRejectedReason = "invalid_signature"
	SubmitStalePayload     SubmitRejectedReason = "stale_payload"
	SubmitInvalidScore     SubmitRejectedReason = "invalid_score"
	SubmitRejectedUnknown  SubmitRejectedReason = "other"
)

type oraclePromMetrics struct {
	nodeUpUnixSeconds  prometheus.Gauge
	oracleInitialized  prometheus.Gauge
	acceptedSubmits    prometheus.Counter
	rejectedSubmits    *prometheus.CounterVec
	decisionCount      *prometheus.CounterVec
	permissionQueries  prometheus.Counter
	panicCount         prometheus.Counter
}

func newOraclePromMetrics() *oraclePromMetrics {
	return &oraclePromMetrics{
		nodeUpUnixSeconds: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "sentinel_node_up_timestamp_unix_seconds",
				Help: "Unix timestamp of the verifier node start",
			},
		),
		oracleInitialized: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "sentinel_oracle_initialized",
				Help: "1 when the oracle public key has been registered",
			},
		),
		acceptedSubmits: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "sentinel_accepted_submit_count",
				Help: "The total number of accepted risk submissions",
			},
		),
		rejectedSubmits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sentinel_rejected_submit_count",
				Help: "The total number of rejected risk submissions",
			},
			[]string{"reason"},
		),
		decisionCount: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sentinel_decision_count",
				Help: "Decisions written, labeled by decision kind",
			},
			[]string{"decision"},
		),
		permissionQueries: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "sentinel_permission_query_count",
				Help: "The total number of permission lookups served",
			},
		),
		panicCount: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "sentinel_panic_count",
				Help: "The total number of recovered panics in background goroutines",
			},
		),
	}
}

var oracleMetrics *oraclePromMetrics

// InitMetrics initializes metrics for the node but does not expose them yet
func InitMetrics() {
	oracleMetrics = newOraclePromMetrics()
	oracleMetrics.nodeUpUnixSeconds.SetToCurrentTime()
}

func RegisterMetrics(mux *http.ServeMux) {
	logx.Info("MONITORING", "Registering prometheus metrics")
	mux.Handle("/metrics", promhttp.Handler())
}

func SetOracleInitialized(initialized bool) {
	if oracleMetrics == nil {
		return
	}
	if initialized {
		oracleMetrics.oracleInitialized.Set(1)
		return
	}
	oracleMetrics.oracleInitialized.Set(0)
}

func RecordAcceptedSubmit() {
	if oracleMetrics == nil {
		return
	}
	oracleMetrics.acceptedSubmits.Inc()
}

func RecordRejectedSubmit(reason SubmitRejectedReason) {
	if oracleMetrics == nil {
		return
	}
	oracleMetrics.rejectedSubmits.With(prometheus.Labels{
		"reason": string(reason),
	}).Inc()
}

func RecordDecision(decision string) {
	if oracleMetrics == nil {
		return
	}
	oracleMetrics.decisionCount.With(prometheus.Labels{
		"decision": decision,
	}).Inc()
}

func RecordPermissionQuery() {
	if oracleMetrics == nil {
		return
	}
	oracleMetrics.permissionQueries.Inc()
}

func IncreasePanicCount() {
	if oracleMetrics == nil {
		return
	}
	oracleMetrics.panicCount.Inc()
}
