package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	sessionRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wlprobe",
			Subsystem: "session",
			Name:      "requests_total",
			Help:      "Bootstrap requests written to the display.",
		},
		[]string{"request"},
	)
	sessionMessages = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wlprobe",
			Subsystem: "session",
			Name:      "messages_total",
			Help:      "Server messages processed, by dispatch outcome.",
		},
		[]string{"outcome"},
	)
	sessionReadBytes = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "wlprobe",
			Subsystem: "session",
			Name:      "read_bytes_total",
			Help:      "Bytes consumed from the display stream.",
		},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(sessionRequests, sessionMessages, sessionReadBytes)
	})
}

func RecordRequest(request string) {
	RegisterMetrics()
	sessionRequests.WithLabelValues(request).Inc()
}

func RecordMessage(outcome string) {
	RegisterMetrics()
	sessionMessages.WithLabelValues(outcome).Inc()
}

func RecordReadBytes(n int) {
	RegisterMetrics()
	sessionReadBytes.Add(float64(n))
}
