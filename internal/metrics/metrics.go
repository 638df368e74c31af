package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "refledger_events_processed_total",
		Help: "Webhook events by kind and terminal result.",
	}, []string{"kind", "result"})

	EventRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "refledger_event_retries_total",
		Help: "Webhook event retry attempts scheduled.",
	})

	CommissionsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "refledger_commissions_recorded_total",
		Help: "Commission rows created.",
	})

	RefundsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "refledger_refunds_recorded_total",
		Help: "Refund rows created.",
	})

	ClicksRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "refledger_attribution_clicks_total",
		Help: "Attribution clicks by outcome (created, deduplicated).",
	}, []string{"outcome"})

	BreakerState = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "refledger_breaker_open",
		Help: "1 while the processor circuit breaker is open.",
	})

	RankRecomputes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "refledger_rank_recomputes_total",
		Help: "Completed full rank recomputation passes.",
	})
)
