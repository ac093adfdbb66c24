package lifecycle

import (
	"context"

	"ironsight/server/logging"
)

const (
	// EventRoomCreated is emitted when a room enters the registry.
	EventRoomCreated logging.EventType = "lifecycle.room_created"
	// EventRoomDeleted is emitted when an emptied room leaves the registry.
	EventRoomDeleted logging.EventType = "lifecycle.room_deleted"
	// EventPlayerJoined is emitted when a connection joins a room.
	EventPlayerJoined logging.EventType = "lifecycle.player_joined"
	// EventPlayerLeft is emitted when a connection leaves a room.
	EventPlayerLeft logging.EventType = "lifecycle.player_left"
	// EventHostChanged is emitted when host privileges move to another member.
	EventHostChanged logging.EventType = "lifecycle.host_changed"
	// EventMatchStarted is emitted when the host starts the countdown.
	EventMatchStarted logging.EventType = "lifecycle.match_started"
	// EventMatchEnded is emitted when the countdown reaches zero.
	EventMatchEnded logging.EventType = "lifecycle.match_ended"
)

// RoomPayload describes the room a lifecycle event concerns.
type RoomPayload struct {
	RoomID     string `json:"roomId"`
	Map        string `json:"map,omitempty"`
	GameMode   string `json:"gameMode,omitempty"`
	MaxPlayers int    `json:"maxPlayers,omitempty"`
}

// PlayerPayload describes membership changes.
type PlayerPayload struct {
	RoomID string `json:"roomId"`
	Name   string `json:"name,omitempty"`
}

// MatchPayload describes a countdown start or end.
type MatchPayload struct {
	RoomID   string `json:"roomId"`
	Duration int    `json:"durationSeconds,omitempty"`
}

func publish(ctx context.Context, pub logging.Publisher, eventType logging.EventType, actor logging.EntityRef, payload any, extra map[string]any) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     eventType,
		Actor:    actor,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryLifecycle,
		Payload:  payload,
		Extra:    extra,
	})
}

// RoomCreated publishes a room creation event.
func RoomCreated(ctx context.Context, pub logging.Publisher, actor logging.EntityRef, payload RoomPayload, extra map[string]any) {
	publish(ctx, pub, EventRoomCreated, actor, payload, extra)
}

// RoomDeleted publishes a room teardown event.
func RoomDeleted(ctx context.Context, pub logging.Publisher, actor logging.EntityRef, payload RoomPayload, extra map[string]any) {
	publish(ctx, pub, EventRoomDeleted, actor, payload, extra)
}

// PlayerJoined publishes a room join event.
func PlayerJoined(ctx context.Context, pub logging.Publisher, actor logging.EntityRef, payload PlayerPayload, extra map[string]any) {
	publish(ctx, pub, EventPlayerJoined, actor, payload, extra)
}

// PlayerLeft publishes a room leave event.
func PlayerLeft(ctx context.Context, pub logging.Publisher, actor logging.EntityRef, payload PlayerPayload, extra map[string]any) {
	publish(ctx, pub, EventPlayerLeft, actor, payload, extra)
}

// HostChanged publishes a host promotion event; the actor is the new host.
func HostChanged(ctx context.Context, pub logging.Publisher, actor logging.EntityRef, payload RoomPayload, extra map[string]any) {
	publish(ctx, pub, EventHostChanged, actor, payload, extra)
}

// MatchStarted publishes a countdown start event.
func MatchStarted(ctx context.Context, pub logging.Publisher, actor logging.EntityRef, payload MatchPayload, extra map[string]any) {
	publish(ctx, pub, EventMatchStarted, actor, payload, extra)
}

// MatchEnded publishes a countdown completion event.
func MatchEnded(ctx context.Context, pub logging.Publisher, actor logging.EntityRef, payload MatchPayload, extra map[string]any) {
	publish(ctx, pub, EventMatchEnded, actor, payload, extra)
}
