package ws

import (
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	server "ironsight/server"
)

func dialTestServer(t *testing.T, hub *server.Hub) *websocket.Conn {
	t.Helper()
	handler := NewHandler(hub, HandlerConfig{})
	srv := httptest.NewServer(nethttp.HandlerFunc(handler.Handle))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var frame map[string]any
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	return frame
}

func TestIdentityAndRoomCreationRoundTrip(t *testing.T) {
	hub := server.NewHub(server.DefaultConfig())
	conn := dialTestServer(t, hub)

	if err := conn.WriteJSON(map[string]any{"type": "setIdentity", "name": "Shadow"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	frame := readFrame(t, conn)
	if frame["type"] != "roomListUpdated" {
		t.Fatalf("expected roomListUpdated reply, got %v", frame["type"])
	}

	if err := conn.WriteJSON(map[string]any{"type": "createRoom", "map": "hotel"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	// The private roomJoined is enqueued before the global list broadcast,
	// so it arrives first on this connection.
	joined := readFrame(t, conn)
	if joined["type"] != "roomJoined" {
		t.Fatalf("expected roomJoined, got %v", joined["type"])
	}
	if joined["isHost"] != true || joined["map"] != "hotel" {
		t.Fatalf("unexpected roomJoined frame: %v", joined)
	}

	list := readFrame(t, conn)
	if list["type"] != "roomListUpdated" {
		t.Fatalf("expected roomListUpdated broadcast, got %v", list["type"])
	}
	rooms, ok := list["rooms"].([]any)
	if !ok || len(rooms) != 1 {
		t.Fatalf("expected one room in the list: %v", list)
	}
}

func TestMalformedFramesAreSkipped(t *testing.T) {
	hub := server.NewHub(server.DefaultConfig())
	conn := dialTestServer(t, hub)

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":`)); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := conn.WriteJSON(map[string]any{"ver": 99, "type": "setIdentity"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := conn.WriteJSON(map[string]any{"type": "joinRoom"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	// The connection survives all three bad frames and still answers the
	// valid one that follows.
	if err := conn.WriteJSON(map[string]any{"type": "setIdentity"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	frame := readFrame(t, conn)
	if frame["type"] != "roomListUpdated" {
		t.Fatalf("expected roomListUpdated, got %v", frame["type"])
	}
}

func TestDisconnectCleansUpRegistry(t *testing.T) {
	hub := server.NewHub(server.DefaultConfig())
	conn := dialTestServer(t, hub)

	if err := conn.WriteJSON(map[string]any{"type": "setIdentity"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	readFrame(t, conn)
	if err := conn.WriteJSON(map[string]any{"type": "createRoom"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	readFrame(t, conn)

	conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for {
		rooms, connections := hub.DiagnosticsSnapshot()
		if rooms == 0 && connections == 0 {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("registry not cleaned up: rooms=%d connections=%d", rooms, connections)
		}
		time.Sleep(5 * time.Millisecond)
	}
}
