package obs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	callDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "weather",
		Name:      "operation_duration_seconds",
		Help:      "Duration of timed operations, including external geocode and weather calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"op", "outcome"})

	workflowErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "weather",
		Name:      "workflow_errors_total",
		Help:      "Errors reported by the workflow controller, by kind.",
	}, []string{"kind"})

	workflowRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "weather",
		Name:      "workflow_runs_total",
		Help:      "Completed startup and search sequences, by outcome.",
	}, []string{"trigger", "outcome"})
)

func CountWorkflowError(kind string) {
	workflowErrors.WithLabelValues(kind).Inc()
}

func CountWorkflowRun(trigger, outcome string) {
	workflowRuns.WithLabelValues(trigger, outcome).Inc()
}
