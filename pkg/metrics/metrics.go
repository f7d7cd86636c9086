package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Relay series, registered on the default registry.
var (
	ConnectionsAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "signaling_connections_accepted_total",
		Help: "WebSocket connections that joined a room.",
	})
	ConnectionsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "signaling_connections_rejected_total",
		Help: "WebSocket connections closed for missing a room id.",
	})
	ActiveRooms = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "signaling_rooms_active",
		Help: "Rooms currently held in the registry.",
	})
	ActivePeers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "signaling_peers_active",
		Help: "Connections currently joined to a room.",
	})
	SignalsRelayed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "signaling_messages_relayed_total",
		Help: "Signal payloads fanned out to room members.",
	})
	SendFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "signaling_send_failures_total",
		Help: "Broadcast sends skipped because a peer was unreachable.",
	})
)

// Handler exposes Prometheus metrics at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
