package ws

import (
	nethttp "net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	server "ironsight/server"
	"ironsight/server/internal/net/proto"
	"ironsight/server/internal/telemetry"
)

type HandlerConfig struct {
	Logger telemetry.Logger
}

// Handler upgrades HTTP requests to websocket sessions and pumps client
// intents into the hub until the connection drops.
type Handler struct {
	hub      *server.Hub
	logger   telemetry.Logger
	upgrader websocket.Upgrader
}

func NewHandler(hub *server.Hub, cfg HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = telemetry.Default()
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *nethttp.Request) bool {
			return true
		},
	}

	return &Handler{
		hub:      hub,
		logger:   logger,
		upgrader: upgrader,
	}
}

func (h *Handler) Handle(w nethttp.ResponseWriter, r *nethttp.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("websocket upgrade failed: %v", err)
		return
	}

	sessionID := uuid.NewString()
	h.hub.Register(sessionID, conn)
	defer h.hub.Disconnect(sessionID)

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}

		msg, err := proto.DecodeClientMessage(payload)
		if err != nil {
			h.logger.Printf("discarding malformed message from %s: %v", sessionID, err)
			continue
		}

		intent, ok := proto.ParseIntent(msg)
		if !ok {
			h.logger.Printf("discarding invalid %q intent from %s", msg.Type, sessionID)
			continue
		}

		h.dispatch(sessionID, intent)
	}
}

func (h *Handler) dispatch(sessionID string, intent proto.Intent) {
	switch intent.Type {
	case proto.TypeSetIdentity:
		h.hub.SetIdentity(sessionID, intent.SetIdentity.Name)
	case proto.TypeCreateRoom:
		h.hub.CreateRoom(sessionID, intent.CreateRoom.Name, intent.CreateRoom.MaxPlayers, intent.CreateRoom.Map, intent.CreateRoom.GameMode)
	case proto.TypeJoinRoom:
		h.hub.JoinRoom(sessionID, intent.JoinRoom.RoomID)
	case proto.TypeLeaveRoom:
		h.hub.LeaveRoom(sessionID)
	case proto.TypeRequestStart:
		h.hub.RequestStart(sessionID)
	case proto.TypePlayerMove:
		h.hub.Move(sessionID, intent.Move.Position, intent.Move.Rotation)
	case proto.TypePlayerAction:
		h.hub.Action(sessionID, intent.Action.Action, intent.Action.WeaponIdx)
	case proto.TypeDamagePlayer:
		h.hub.DamagePlayer(sessionID, intent.Damage.TargetID, intent.Damage.Damage)
	case proto.TypeRequestRespawn:
		h.hub.RequestRespawn(sessionID)
	case proto.TypeChatMessage:
		h.hub.Chat(sessionID, intent.Chat.Message)
	}
}
