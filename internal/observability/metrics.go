package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the prometheus collectors the session server exports. A nil
// *Metrics is valid and records nothing, so tests can skip wiring it.
type Metrics struct {
	registry *prometheus.Registry

	connectionsOpen     prometheus.Gauge
	roomsOpen           prometheus.Gauge
	intentsTotal        *prometheus.CounterVec
	framesSentTotal     prometheus.Counter
	respawnsDeniedTotal prometheus.Counter
}

// NewMetrics builds a private registry with go/process collectors plus the
// game counters.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		connectionsOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ironsight_connections_open",
			Help: "Number of live websocket connections.",
		}),
		roomsOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ironsight_rooms_open",
			Help: "Number of rooms currently in the registry.",
		}),
		intentsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ironsight_intents_total",
			Help: "Client intents processed, by intent type.",
		}, []string{"type"}),
		framesSentTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ironsight_frames_sent_total",
			Help: "Outbound event frames enqueued for delivery.",
		}),
		respawnsDeniedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ironsight_respawns_denied_total",
			Help: "Respawn requests rejected for arriving before the minimum delay.",
		}),
	}
	registry.MustRegister(m.connectionsOpen, m.roomsOpen, m.intentsTotal, m.framesSentTotal, m.respawnsDeniedTotal)
	return m
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ConnectionOpened() {
	if m == nil {
		return
	}
	m.connectionsOpen.Inc()
}

func (m *Metrics) ConnectionClosed() {
	if m == nil {
		return
	}
	m.connectionsOpen.Dec()
}

func (m *Metrics) RoomOpened() {
	if m == nil {
		return
	}
	m.roomsOpen.Inc()
}

func (m *Metrics) RoomClosed() {
	if m == nil {
		return
	}
	m.roomsOpen.Dec()
}

func (m *Metrics) IntentObserved(kind string) {
	if m == nil {
		return
	}
	m.intentsTotal.WithLabelValues(kind).Inc()
}

func (m *Metrics) FrameEnqueued() {
	if m == nil {
		return
	}
	m.framesSentTotal.Inc()
}

func (m *Metrics) RespawnDenied() {
	if m == nil {
		return
	}
	m.respawnsDeniedTotal.Inc()
}
