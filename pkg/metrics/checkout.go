package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	CheckoutRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "paymee_bridge",
			Subsystem: "checkout",
			Name:      "requests_total",
			Help:      "Total number of checkout attempts by result kind",
		},
		[]string{"result"},
	)

	CheckoutRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "paymee_bridge",
			Subsystem: "checkout",
			Name:      "provider_request_duration_seconds",
			Help:      "PayMee checkout API call latency in seconds",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	NotificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "paymee_bridge",
			Subsystem: "ipn",
			Name:      "notifications_total",
			Help:      "Total number of IPN notifications processed by outcome",
		},
		[]string{"outcome"},
	)
)

func init() {
	Registry.MustRegister(CheckoutRequestsTotal, CheckoutRequestDuration, NotificationsTotal)
}
