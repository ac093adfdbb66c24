package network

import (
	"context"

	"ironsight/server/logging"
)

const (
	// EventConnected is emitted when a websocket session is registered.
	EventConnected logging.EventType = "network.connected"
	// EventDisconnected is emitted when a session is torn down.
	EventDisconnected logging.EventType = "network.disconnected"
)

func publish(ctx context.Context, pub logging.Publisher, eventType logging.EventType, actor logging.EntityRef, extra map[string]any) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     eventType,
		Actor:    actor,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryNetwork,
		Extra:    extra,
	})
}

// Connected publishes a session registration event.
func Connected(ctx context.Context, pub logging.Publisher, actor logging.EntityRef, extra map[string]any) {
	publish(ctx, pub, EventConnected, actor, extra)
}

// Disconnected publishes a session teardown event.
func Disconnected(ctx context.Context, pub logging.Publisher, actor logging.EntityRef, extra map[string]any) {
	publish(ctx, pub, EventDisconnected, actor, extra)
}
