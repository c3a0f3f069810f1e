package costs

import "github.com/prometheus/client_golang/prometheus"

const namespace = "scribeflow"

var (
	// costRecordedTotal accumulates recorded spend in USD.
	costRecordedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cost_recorded_usd_total",
			Help:      "Total recorded provider cost in USD",
		},
		[]string{"service_type", "provider"},
	)

	// costRedisWriteFailures counts fast-index writes that failed. The
	// durable log is unaffected; the index self-heals on later reads.
	costRedisWriteFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cost_redis_write_failures_total",
			Help:      "Total failed cost writes to the Redis fast index",
		},
	)

	// costStoreWriteFailures counts durable-log writes that failed.
	costStoreWriteFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cost_store_write_failures_total",
			Help:      "Total failed cost writes to the durable usage log",
		},
	)
)

func init() {
	prometheus.MustRegister(costRecordedTotal, costRedisWriteFailures, costStoreWriteFailures)
}
