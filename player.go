package server

import "time"

// Player is the client-visible slice of a player's state.
type Player struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	HP           int      `json:"hp"`
	IsDead       bool     `json:"isDead"`
	IsInvincible bool     `json:"isInvincible"`
	Position     Vec3     `json:"position"`
	Rotation     Rotation `json:"rotation"`
	WeaponIdx    int      `json:"weaponIdx"`
}

// playerState is the server-side record for one room member. It is owned by
// the room that contains it and only ever touched under that room's lock.
type playerState struct {
	Player

	// deathTime is zero while the player is alive.
	deathTime time.Time
	// joinSeq orders members for host promotion and renumbering.
	joinSeq uint64

	sess *session

	invincibilityTimer *time.Timer
}

func (p *playerState) snapshot() Player {
	return p.Player
}

func (p *playerState) stopInvincibilityTimer() {
	if p.invincibilityTimer != nil {
		p.invincibilityTimer.Stop()
		p.invincibilityTimer = nil
	}
}
