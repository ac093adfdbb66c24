package server

import "time"

const (
	writeWait      = 10 * time.Second
	sendBufferSize = 64

	playerMaxHealth = 100

	defaultMaxPlayers = 4
	maxRoomPlayers    = 16

	roomIDLength   = 6
	roomIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	roomIDAttempts = 32
)

// ProtocolVersion tracks the wire-protocol revision expected by clients.
const ProtocolVersion = 1
