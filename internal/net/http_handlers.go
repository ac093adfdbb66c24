package net

import (
	"encoding/json"
	nethttp "net/http"
	"time"

	server "ironsight/server"
	"ironsight/server/internal/net/ws"
	"ironsight/server/internal/observability"
	"ironsight/server/internal/telemetry"
	"ironsight/server/logging"
)

type HTTPHandlerConfig struct {
	Logger      telemetry.Logger
	Metrics     *observability.Metrics
	RouterStats func() logging.RouterStats
}

// NewHTTPHandler assembles the server's HTTP surface: the websocket
// endpoint plus the health, diagnostics, and metrics endpoints.
func NewHTTPHandler(hub *server.Hub, cfg HTTPHandlerConfig) nethttp.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = telemetry.Default()
	}

	mux := nethttp.NewServeMux()

	wsHandler := ws.NewHandler(hub, ws.HandlerConfig{Logger: logger})
	mux.HandleFunc("/ws", wsHandler.Handle)

	mux.HandleFunc("/health", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	})

	mux.HandleFunc("/diagnostics", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		rooms, connections := hub.DiagnosticsSnapshot()

		payload := struct {
			Status      string            `json:"status"`
			ServerTime  int64             `json:"serverTime"`
			Rooms       int               `json:"rooms"`
			Connections int               `json:"connections"`
			RoomList    []server.RoomInfo `json:"roomList"`
			Logging     any               `json:"logging,omitempty"`
		}{
			Status:      "ok",
			ServerTime:  time.Now().UnixMilli(),
			Rooms:       rooms,
			Connections: connections,
			RoomList:    hub.RoomList(),
		}
		if cfg.RouterStats != nil {
			payload.Logging = cfg.RouterStats()
		}

		data, err := json.Marshal(payload)
		if err != nil {
			nethttp.Error(w, "failed to encode", nethttp.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	})

	if cfg.Metrics != nil {
		mux.Handle("/metrics", cfg.Metrics.Handler())
	}

	return mux
}
