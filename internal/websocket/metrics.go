package websocket

import "github.com/prometheus/client_golang/prometheus"

var (
	wsConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "support_chat_feed_connections",
			Help: "Current number of active activity feed connections.",
		},
	)
	wsMessagesDelivered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "support_chat_feed_messages_delivered_total",
			Help: "Total activity feed messages delivered to clients.",
		},
	)
)

func init() {
	prometheus.MustRegister(wsConnections, wsMessagesDelivered)
}

func incConnections() {
	wsConnections.Inc()
}

func decConnections() {
	wsConnections.Dec()
}

func addDelivered(count int) {
	wsMessagesDelivered.Add(float64(count))
}
