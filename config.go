package server

import (
	"time"

	"ironsight/server/internal/observability"
	"ironsight/server/internal/telemetry"
	"ironsight/server/logging"
)

// NamePolicy selects how display names are assigned to players.
type NamePolicy string

const (
	// NamePolicyRoomSequential numbers players within their room, reusing the
	// lowest free "Player N" suffix and renumbering after departures.
	NamePolicyRoomSequential NamePolicy = "room-sequential"
	// NamePolicyGlobalCounter hands out "Player N" from a process-wide counter
	// that is never reused, even across disconnects.
	NamePolicyGlobalCounter NamePolicy = "global-counter"
	// NamePolicyClient accepts the client-supplied name with a fallback derived
	// from the connection id.
	NamePolicyClient NamePolicy = "client"
)

// SpawnPolicy selects how spawn points are picked from a map's table.
type SpawnPolicy string

const (
	// SpawnPolicyIndexed round-robins through the table using the room's
	// running respawn counter.
	SpawnPolicyIndexed SpawnPolicy = "indexed"
	// SpawnPolicyRandom picks a uniform random point.
	SpawnPolicyRandom SpawnPolicy = "random"
)

// Config carries every tunable the session server exposes. All of these have
// changed repeatedly over the game's history, so none of them are hard-coded.
type Config struct {
	Addr            string
	DefaultMap      string
	DefaultGameMode string

	// MinRespawnDelay is the server-enforced floor between death and respawn.
	// It is deliberately shorter than the countdown the client shows, so that
	// network latency and clock skew never deny an honest request.
	MinRespawnDelay time.Duration
	// InvincibilityWindow is the grace period after every spawn and respawn
	// during which damage claims against the player are ignored.
	InvincibilityWindow time.Duration
	MatchDuration       time.Duration

	NamePolicy    NamePolicy
	SpawnPolicy   SpawnPolicy
	AllowLateJoin bool

	Logger    telemetry.Logger
	Publisher logging.Publisher
	Metrics   *observability.Metrics
}

// DefaultConfig returns the production defaults. The client-visible respawn
// countdown is 3s, so the server enforces 2.5s.
func DefaultConfig() Config {
	return Config{
		Addr:                ":3000",
		DefaultMap:          "factory",
		DefaultGameMode:     "ffa",
		MinRespawnDelay:     2500 * time.Millisecond,
		InvincibilityWindow: 2 * time.Second,
		MatchDuration:       600 * time.Second,
		NamePolicy:          NamePolicyRoomSequential,
		SpawnPolicy:         SpawnPolicyIndexed,
		AllowLateJoin:       true,
	}
}

func (c Config) normalized() Config {
	defaults := DefaultConfig()
	if c.Addr == "" {
		c.Addr = defaults.Addr
	}
	if c.DefaultMap == "" {
		c.DefaultMap = defaults.DefaultMap
	}
	if c.DefaultGameMode == "" {
		c.DefaultGameMode = defaults.DefaultGameMode
	}
	if c.MinRespawnDelay <= 0 {
		c.MinRespawnDelay = defaults.MinRespawnDelay
	}
	if c.InvincibilityWindow <= 0 {
		c.InvincibilityWindow = defaults.InvincibilityWindow
	}
	if c.MatchDuration <= 0 {
		c.MatchDuration = defaults.MatchDuration
	}
	switch c.NamePolicy {
	case NamePolicyRoomSequential, NamePolicyGlobalCounter, NamePolicyClient:
	default:
		c.NamePolicy = defaults.NamePolicy
	}
	switch c.SpawnPolicy {
	case SpawnPolicyIndexed, SpawnPolicyRandom:
	default:
		c.SpawnPolicy = defaults.SpawnPolicy
	}
	if c.Publisher == nil {
		c.Publisher = logging.NopPublisher()
	}
	return c
}
