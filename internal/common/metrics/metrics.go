// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	MissionsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "missions_submitted_total",
			Help: "Total number of missions accepted by the orchestrator",
		},
		[]string{"mode"},
	)

	MissionsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "missions_completed_total",
			Help: "Total number of missions executed successfully",
		},
		[]string{"mode"},
	)

	MissionsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "missions_failed_total",
			Help: "Total number of mission executions that reverted to pending",
		},
		[]string{"mode", "error_code"},
	)

	MissionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mission_duration_seconds",
			Help:    "Duration of a mission execution in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		},
		[]string{"mode"},
	)

	MissionQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mission_queue_depth",
			Help: "Number of missions waiting for a batch pass",
		},
	)

	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mission_events_published_total",
			Help: "Total number of mission events published on the bus",
		},
		[]string{"type"},
	)

	EventsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mission_events_dropped_total",
			Help: "Events dropped because a subscriber buffer was full",
		},
		[]string{"subscriber"},
	)

	EventsBroadcastFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mission_events_broadcast_failed_total",
			Help: "Events a broadcast sink failed to deliver",
		},
		[]string{"sink"},
	)

	SelectionCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "selection_cache_lookups_total",
			Help: "Selection cache lookups by result",
		},
		[]string{"result"},
	)
)
