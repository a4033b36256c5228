package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsScheduledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ecocollect_requests_scheduled_total",
		Help: "Total number of pickup requests placed on their preferred day.",
	})

	RequestsPendingTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ecocollect_requests_pending_total",
		Help: "Total number of pickup requests parked pending with proposed alternatives.",
	})

	CapacityConflictsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ecocollect_capacity_conflicts_total",
		Help: "Total number of placements rejected because a day or horizon was full.",
	},
		[]string{"operation"},
	)

	SubmissionsCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ecocollect_submissions_completed_total",
		Help: "Total number of recyclable submissions marked completed.",
	})

	PaybackCreditedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ecocollect_payback_credited_total",
		Help: "Total number of payback entries recorded as credited.",
	})

	PaybackFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ecocollect_payback_failed_total",
		Help: "Total number of payback entries recorded as failed.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ecocollect_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	ActiveRequestCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ecocollect_active_request_cache_items",
		Help: "Current number of requests held in the active-request cache.",
	})
)
