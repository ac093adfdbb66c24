package net

import (
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	server "ironsight/server"
	"ironsight/server/internal/observability"
	"ironsight/server/logging"
)

func newTestHandler(t *testing.T) nethttp.Handler {
	t.Helper()
	hub := server.NewHub(server.DefaultConfig())
	return NewHTTPHandler(hub, HTTPHandlerConfig{
		Metrics: observability.NewMetrics(),
		RouterStats: func() logging.RouterStats {
			return logging.RouterStats{EventsTotal: 42}
		},
	})
}

func TestHealthEndpoint(t *testing.T) {
	handler := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/health", nil))

	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "ok" {
		t.Fatalf("expected ok body, got %q", body)
	}
}

func TestDiagnosticsEndpoint(t *testing.T) {
	handler := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/diagnostics", nil))

	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var payload struct {
		Status      string            `json:"status"`
		ServerTime  int64             `json:"serverTime"`
		Rooms       int               `json:"rooms"`
		Connections int               `json:"connections"`
		RoomList    []server.RoomInfo `json:"roomList"`
		Logging     struct {
			EventsTotal uint64 `json:"EventsTotal"`
		} `json:"logging"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode diagnostics: %v", err)
	}
	if payload.Status != "ok" {
		t.Fatalf("expected ok status, got %q", payload.Status)
	}
	if payload.ServerTime == 0 {
		t.Fatalf("missing server time")
	}
	if payload.Rooms != 0 || payload.Connections != 0 {
		t.Fatalf("fresh hub should report empty registry: %+v", payload)
	}
	if payload.Logging.EventsTotal != 42 {
		t.Fatalf("router stats not surfaced: %+v", payload.Logging)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	handler := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/metrics", nil))

	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body, err := io.ReadAll(rec.Result().Body)
	if err != nil {
		t.Fatalf("failed to read metrics body: %v", err)
	}
	if !strings.Contains(string(body), "ironsight_connections_open") {
		t.Fatalf("expected hub gauges in metrics output")
	}
}
