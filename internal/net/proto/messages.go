package proto

import (
	"encoding/json"
	"fmt"
	"strings"

	server "ironsight/server"
)

// Version tracks the wire-protocol revision expected by clients.
const Version = server.ProtocolVersion

// Client intent type identifiers, one per row of the message catalogue.
const (
	TypeSetIdentity    = "setIdentity"
	TypeCreateRoom     = "createRoom"
	TypeJoinRoom       = "joinRoom"
	TypeRequestStart   = "requestStart"
	TypePlayerMove     = "playerMove"
	TypePlayerAction   = "playerAction"
	TypeDamagePlayer   = "damagePlayer"
	TypeRequestRespawn = "requestRespawn"
	TypeChatMessage    = "chatMessage"
	TypeLeaveRoom      = "leaveRoom"
)

// ClientMessage captures an inbound websocket frame from the client.
type ClientMessage struct {
	Ver        int              `json:"ver,omitempty"`
	Type       string           `json:"type"`
	Name       string           `json:"name,omitempty"`
	RoomID     string           `json:"roomId,omitempty"`
	MaxPlayers int              `json:"maxPlayers,omitempty"`
	Map        string           `json:"map,omitempty"`
	GameMode   string           `json:"gameMode,omitempty"`
	Position   *server.Vec3     `json:"position,omitempty"`
	Rotation   *server.Rotation `json:"rotation,omitempty"`
	Action     string           `json:"action,omitempty"`
	WeaponIdx  int              `json:"weaponIdx,omitempty"`
	TargetID   string           `json:"targetId,omitempty"`
	Damage     int              `json:"damage,omitempty"`
	Message    string           `json:"message,omitempty"`
}

// DecodeClientMessage converts a raw websocket payload into a structured
// message, rejecting unsupported protocol versions.
func DecodeClientMessage(payload []byte) (ClientMessage, error) {
	var msg ClientMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return msg, err
	}
	if msg.Ver == 0 {
		msg.Ver = Version
	}
	if msg.Ver != Version {
		return msg, fmt.Errorf("unsupported client protocol version %d", msg.Ver)
	}
	return msg, nil
}

// Intent is the validated, typed form of a client message. Exactly one
// variant pointer is set for payload-carrying intents.
type Intent struct {
	Type string

	SetIdentity *SetIdentityIntent
	CreateRoom  *CreateRoomIntent
	JoinRoom    *JoinRoomIntent
	Move        *MoveIntent
	Action      *ActionIntent
	Damage      *DamageIntent
	Chat        *ChatIntent
}

type SetIdentityIntent struct {
	Name string
}

type CreateRoomIntent struct {
	Name       string
	MaxPlayers int
	Map        string
	GameMode   string
}

type JoinRoomIntent struct {
	RoomID string
}

type MoveIntent struct {
	Position server.Vec3
	Rotation server.Rotation
}

type ActionIntent struct {
	Action    string
	WeaponIdx int
}

type DamageIntent struct {
	TargetID string
	Damage   int
}

type ChatIntent struct {
	Message string
}

// ParseIntent validates a decoded message and lifts it into the intent union.
// Messages that fail validation report !ok and never reach the hub.
func ParseIntent(msg ClientMessage) (Intent, bool) {
	switch msg.Type {
	case TypeSetIdentity:
		return Intent{Type: msg.Type, SetIdentity: &SetIdentityIntent{Name: strings.TrimSpace(msg.Name)}}, true
	case TypeCreateRoom:
		return Intent{Type: msg.Type, CreateRoom: &CreateRoomIntent{
			Name:       strings.TrimSpace(msg.Name),
			MaxPlayers: msg.MaxPlayers,
			Map:        msg.Map,
			GameMode:   msg.GameMode,
		}}, true
	case TypeJoinRoom:
		if msg.RoomID == "" {
			return Intent{}, false
		}
		return Intent{Type: msg.Type, JoinRoom: &JoinRoomIntent{RoomID: msg.RoomID}}, true
	case TypeRequestStart, TypeRequestRespawn, TypeLeaveRoom:
		return Intent{Type: msg.Type}, true
	case TypePlayerMove:
		if msg.Position == nil || msg.Rotation == nil {
			return Intent{}, false
		}
		return Intent{Type: msg.Type, Move: &MoveIntent{Position: *msg.Position, Rotation: *msg.Rotation}}, true
	case TypePlayerAction:
		if msg.Action == "" {
			return Intent{}, false
		}
		return Intent{Type: msg.Type, Action: &ActionIntent{Action: msg.Action, WeaponIdx: msg.WeaponIdx}}, true
	case TypeDamagePlayer:
		if msg.TargetID == "" || msg.Damage <= 0 {
			return Intent{}, false
		}
		return Intent{Type: msg.Type, Damage: &DamageIntent{TargetID: msg.TargetID, Damage: msg.Damage}}, true
	case TypeChatMessage:
		if msg.Message == "" {
			return Intent{}, false
		}
		return Intent{Type: msg.Type, Chat: &ChatIntent{Message: msg.Message}}, true
	default:
		return Intent{}, false
	}
}
