package producer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var pushesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "finance_bot_pushes_total",
		Help: "Total number of scheduled report pushes by window and result",
	},
	[]string{"window", "result"},
)
