package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "market_strategy_"

	ResultSuccess = "success"
	ResultError   = "error"

	TickOutcomeIdle       = "idle"
	TickOutcomeRan        = "ran"
	TickOutcomeFailed     = "failed"
	TickOutcomeSuppressed = "suppressed"
)

// Collectors exist from package init, so observing never races with Init.
// Until Init registers them they are simply not exported.
var (
	registerOnce sync.Once

	dispatchTicks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: metricPrefix + "dispatch_ticks_total",
			Help: "Total dispatch ticks by outcome",
		},
		[]string{"outcome"},
	)
	dispatchLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    metricPrefix + "dispatch_tick_seconds",
			Help:    "Dispatch tick duration in seconds, including the handler",
			Buckets: prometheus.DefBuckets,
		},
	)

	gatewayCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: metricPrefix + "gateway_calls_total",
			Help: "Total gateway operations by operation and result",
		},
		[]string{"op", "result"},
	)
	gatewayLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    metricPrefix + "gateway_call_seconds",
			Help:    "Gateway operation latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)

	batchItems = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: metricPrefix + "batch_items_total",
			Help: "Total fanned-out items by operation and result",
		},
		[]string{"op", "result"},
	)
)

// Init registers the metrics with the default registry. It is safe to call
// more than once and from any goroutine.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			dispatchTicks,
			dispatchLatency,
			gatewayCalls,
			gatewayLatency,
			batchItems,
		)
	})
}

// ObserveDispatchTick records one dispatch tick.
func ObserveDispatchTick(outcome string, duration time.Duration) {
	if outcome == "" {
		outcome = TickOutcomeIdle
	}

	dispatchTicks.WithLabelValues(outcome).Inc()
	dispatchLatency.Observe(duration.Seconds())
}

// ObserveGatewayCall records one gateway operation.
func ObserveGatewayCall(op string, err error, duration time.Duration) {
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}

	gatewayCalls.WithLabelValues(op, result).Inc()
	gatewayLatency.WithLabelValues(op).Observe(duration.Seconds())
}

// AddBatchItems records the per-item results of a fan-out.
func AddBatchItems(op string, succeeded, failed int) {
	if succeeded > 0 {
		batchItems.WithLabelValues(op, ResultSuccess).Add(float64(succeeded))
	}
	if failed > 0 {
		batchItems.WithLabelValues(op, ResultError).Add(float64(failed))
	}
}
