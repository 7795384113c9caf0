package consumer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	actionsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finance_bot_actions_processed_total",
			Help: "Total number of processed updates by action",
		},
		[]string{"action"},
	)

	entriesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finance_bot_entries_created_total",
			Help: "Total number of entries saved by kind",
		},
		[]string{"kind"},
	)

	duplicatesRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "finance_bot_duplicates_rejected_total",
			Help: "Total number of entries rejected as duplicates",
		},
	)

	// errorsTotal is labelled by the action whose handling failed
	errorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finance_bot_errors_total",
			Help: "Total number of failed updates by action",
		},
		[]string{"action"},
	)

	refreshesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finance_bot_refreshes_total",
			Help: "Total number of record store refreshes by result",
		},
		[]string{"result"},
	)
)
