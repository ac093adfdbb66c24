package combat

import (
	"context"

	"ironsight/server/logging"
)

const (
	// EventDamage is emitted when an accepted damage claim lowers a target's hp.
	EventDamage logging.EventType = "combat.damage"
	// EventDeath is emitted when a damage claim is fatal.
	EventDeath logging.EventType = "combat.death"
	// EventRespawn is emitted when a dead player is placed back on the map.
	EventRespawn logging.EventType = "combat.respawn"
	// EventRespawnDenied is emitted when a respawn request arrives too early.
	EventRespawnDenied logging.EventType = "combat.respawn_denied"
)

// DamagePayload captures the amount dealt to a single target.
type DamagePayload struct {
	Amount   int `json:"amount"`
	TargetHP int `json:"targetHp"`
}

// DeathPayload describes the context of a fatal claim.
type DeathPayload struct {
	KillerName string `json:"killerName,omitempty"`
}

// RespawnPayload carries the spawn placement.
type RespawnPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// RespawnDeniedPayload carries the remaining enforced wait.
type RespawnDeniedPayload struct {
	RemainingSeconds int `json:"remainingSeconds"`
}

// Damage publishes a damage event for a single target.
func Damage(ctx context.Context, pub logging.Publisher, actor, target logging.EntityRef, payload DamagePayload, extra map[string]any) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventDamage,
		Actor:    actor,
		Targets:  []logging.EntityRef{target},
		Severity: logging.SeverityInfo,
		Category: logging.CategoryCombat,
		Payload:  payload,
		Extra:    extra,
	})
}

// Death publishes a death event for the eliminated player.
func Death(ctx context.Context, pub logging.Publisher, actor, target logging.EntityRef, payload DeathPayload, extra map[string]any) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventDeath,
		Actor:    actor,
		Targets:  []logging.EntityRef{target},
		Severity: logging.SeverityInfo,
		Category: logging.CategoryCombat,
		Payload:  payload,
		Extra:    extra,
	})
}

// Respawn publishes a respawn event.
func Respawn(ctx context.Context, pub logging.Publisher, actor logging.EntityRef, payload RespawnPayload, extra map[string]any) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventRespawn,
		Actor:    actor,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryCombat,
		Payload:  payload,
		Extra:    extra,
	})
}

// RespawnDenied publishes a denied respawn request.
func RespawnDenied(ctx context.Context, pub logging.Publisher, actor logging.EntityRef, payload RespawnDeniedPayload, extra map[string]any) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventRespawnDenied,
		Actor:    actor,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryCombat,
		Payload:  payload,
		Extra:    extra,
	})
}
