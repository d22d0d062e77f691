// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "chat"

var (
	// Registry is the registry every collector below is registered on.
	Registry = prometheus.NewRegistry()

	// Sessions is the number of admitted Socket.IO connections.
	Sessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions",
		Help:      "Currently admitted socket sessions.",
	})

	// OnlineUsers is the number of users with at least one session.
	OnlineUsers = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "online_users",
		Help:      "Users with at least one admitted session.",
	})

	// MessagesSent counts persisted messages.
	MessagesSent = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_sent_total",
		Help:      "Messages persisted and delivered.",
	})

	// SendsRejected counts refused sends by reason.
	SendsRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sends_rejected_total",
		Help:      "Send requests answered with message-error, by reason.",
	}, []string{"reason"})

	// PresenceWriteFailures counts presence flag writes that failed.
	PresenceWriteFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "presence_write_failures_total",
		Help:      "Failed online/offline writes.",
	})

	// LaneDrops counts tasks dropped because their lane was full.
	LaneDrops = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lane_drops_total",
		Help:      "Inbound events dropped due to a full lane queue.",
	})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		Sessions,
		OnlineUsers,
		MessagesSent,
		SendsRejected,
		PresenceWriteFailures,
		LaneDrops,
	)
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
