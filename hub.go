package server

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"ironsight/server/internal/observability"
	"ironsight/server/internal/telemetry"
	"ironsight/server/logging"
	logcombat "ironsight/server/logging/combat"
	loglifecycle "ironsight/server/logging/lifecycle"
	lognetwork "ironsight/server/logging/network"
)

// Hub is the authoritative session registry: it owns every room, every
// connection's session and the connection→room membership map. Registry
// mutations (connect, identity, create, join, leave) serialize on the hub
// lock; in-match intents only resolve their room under a read lock and then
// serialize on that room's own lock, so different rooms proceed in parallel.
type Hub struct {
	cfg       Config
	logger    telemetry.Logger
	publisher logging.Publisher
	metrics   *observability.Metrics
	spawner   *SpawnSelector

	// now and tickInterval are injection points for tests.
	now          func() time.Time
	tickInterval time.Duration

	mu         sync.RWMutex
	sessions   map[string]*session
	identities map[string]*identityState
	rooms      map[string]*roomState
	membership map[string]string

	nameCounter atomic.Uint64
}

// identityState is the explicit per-connection context that replaces ad hoc
// fields bolted onto the transport object.
type identityState struct {
	name string
}

// NewHub constructs a hub from the given configuration.
func NewHub(cfg Config) *Hub {
	cfg = cfg.normalized()
	logger := cfg.Logger
	if logger == nil {
		logger = telemetry.Default()
	}
	return &Hub{
		cfg:          cfg,
		logger:       logger,
		publisher:    cfg.Publisher,
		metrics:      cfg.Metrics,
		spawner:      NewSpawnSelector(cfg.SpawnPolicy),
		now:          time.Now,
		tickInterval: time.Second,
		sessions:     make(map[string]*session),
		identities:   make(map[string]*identityState),
		rooms:        make(map[string]*roomState),
		membership:   make(map[string]string),
	}
}

// Config returns the normalized configuration the hub runs with.
func (h *Hub) Config() Config {
	return h.cfg
}

// Register installs a session for a freshly upgraded connection and starts
// its write pump. The id must be unique for the process lifetime.
func (h *Hub) Register(id string, conn Conn) *session {
	sess := newSession(id, conn)

	h.mu.Lock()
	if existing, ok := h.sessions[id]; ok {
		existing.close()
	}
	h.sessions[id] = sess
	h.mu.Unlock()

	h.metrics.ConnectionOpened()
	lognetwork.Connected(context.Background(), h.publisher, playerRef(id), nil)

	go sess.run(func() {
		h.Disconnect(id)
	})
	return sess
}

// Disconnect tears a connection down. It runs the exact same leave path as an
// explicit leaveRoom intent and is safe to call more than once.
func (h *Hub) Disconnect(id string) {
	h.LeaveRoom(id)

	h.mu.Lock()
	sess, ok := h.sessions[id]
	if ok {
		delete(h.sessions, id)
	}
	delete(h.identities, id)
	h.mu.Unlock()

	if !ok {
		return
	}
	sess.close()
	h.metrics.ConnectionClosed()
	lognetwork.Disconnected(context.Background(), h.publisher, playerRef(id), nil)
}

// SetIdentity assigns the connection's display name per the configured policy
// and answers with the current room list. Under the room-sequential policy the
// name is deferred until the connection joins a room.
func (h *Hub) SetIdentity(id, requestedName string) {
	h.metrics.IntentObserved("setIdentity")

	h.mu.Lock()
	defer h.mu.Unlock()

	sess, ok := h.sessions[id]
	if !ok {
		return
	}

	ident := &identityState{}
	switch h.cfg.NamePolicy {
	case NamePolicyClient:
		name := strings.TrimSpace(requestedName)
		if name == "" {
			name = fallbackName(id)
		}
		ident.name = name
	case NamePolicyGlobalCounter:
		ident.name = fmt.Sprintf("Player %d", h.nameCounter.Add(1))
	}
	h.identities[id] = ident

	if data, ok := h.encode(roomListUpdatedEvent{Ver: ProtocolVersion, Type: EventRoomListUpdated, Rooms: h.roomListLocked()}); ok {
		h.enqueueTo(sess, data)
	}
}

// CreateRoom allocates a room, installs the requester as host, runs the join
// sequence for them, and advertises the new lobby to every connection.
func (h *Hub) CreateRoom(id, name string, maxPlayers int, mapName, gameMode string) {
	h.metrics.IntentObserved("createRoom")

	h.mu.Lock()
	defer h.mu.Unlock()

	sess, ok := h.sessions[id]
	if !ok {
		return
	}
	ident, ok := h.identities[id]
	if !ok {
		// No identity intent yet; room-scoped intents from such connections
		// are spectator no-ops.
		return
	}

	roomID, ok := h.generateRoomIDLocked()
	if !ok {
		h.sendError(sess, ReasonRoomIDExhausted)
		return
	}

	if name == "" {
		hostName := ident.name
		if hostName == "" {
			hostName = "Player"
		}
		name = hostName + "'s Room"
	}
	if maxPlayers <= 0 {
		maxPlayers = defaultMaxPlayers
	}
	if maxPlayers > maxRoomPlayers {
		maxPlayers = maxRoomPlayers
	}
	if mapName == "" {
		mapName = h.cfg.DefaultMap
	}
	if gameMode == "" {
		gameMode = h.cfg.DefaultGameMode
	}

	room := &roomState{
		id:         roomID,
		name:       name,
		hostID:     id,
		maxPlayers: maxPlayers,
		mapName:    mapName,
		gameMode:   gameMode,
		players:    make(map[string]*playerState),
		timeLeft:   int(h.cfg.MatchDuration / time.Second),
		createdAt:  h.now(),
	}
	h.rooms[roomID] = room
	h.metrics.RoomOpened()
	loglifecycle.RoomCreated(context.Background(), h.publisher, playerRef(id), loglifecycle.RoomPayload{RoomID: roomID, Map: mapName, GameMode: gameMode, MaxPlayers: maxPlayers}, nil)

	h.leaveLocked(id)
	h.installPlayerLocked(sess, ident, room)
	h.broadcastRoomListLocked()
}

// JoinRoom validates the target room and, on success, performs a full leave
// of any previous room followed by the join sequence.
func (h *Hub) JoinRoom(id, roomID string) {
	h.metrics.IntentObserved("joinRoom")

	h.mu.Lock()
	defer h.mu.Unlock()

	sess, ok := h.sessions[id]
	if !ok {
		return
	}
	ident, ok := h.identities[id]
	if !ok {
		return
	}

	room, ok := h.rooms[roomID]
	if !ok {
		h.sendError(sess, ReasonRoomNotFound)
		return
	}

	room.mu.Lock()
	reason := ""
	switch {
	case room.deleted:
		reason = ReasonRoomNotFound
	case len(room.players) >= room.maxPlayers:
		reason = ReasonRoomFull
	case room.matchStarted && !h.cfg.AllowLateJoin:
		reason = ReasonMatchAlreadyStarted
	}
	room.mu.Unlock()
	if reason != "" {
		h.sendError(sess, reason)
		return
	}

	h.leaveLocked(id)
	// The implicit leave may have emptied and deleted the target room when
	// the connection was its sole member. Re-fetch before installing.
	room, ok = h.rooms[roomID]
	if !ok {
		h.broadcastRoomListLocked()
		return
	}
	h.installPlayerLocked(sess, ident, room)
	h.broadcastRoomListLocked()
}

// LeaveRoom removes the connection from its room, if any, and refreshes the
// global room list. Not being in a room is a no-op.
func (h *Hub) LeaveRoom(id string) {
	h.metrics.IntentObserved("leaveRoom")

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.leaveLocked(id) {
		h.broadcastRoomListLocked()
	}
}

// RequestStart begins the match countdown. Anything but "the current host
// asks while the room is waiting" is a silent no-op.
func (h *Hub) RequestStart(id string) {
	h.metrics.IntentObserved("requestStart")

	room := h.resolveRoom(id)
	if room == nil {
		return
	}

	room.mu.Lock()
	if room.deleted || room.hostID != id || room.matchStarted {
		room.mu.Unlock()
		return
	}
	room.matchStarted = true
	room.timeLeft = int(h.cfg.MatchDuration / time.Second)
	room.stopMatchTimerLocked()
	stop := make(chan struct{})
	room.timerStop = stop
	h.broadcastRoomLocked(room, gameStartEvent{
		Ver:      ProtocolVersion,
		Type:     EventGameStart,
		Map:      room.mapName,
		GameMode: room.gameMode,
		TimeLeft: room.timeLeft,
	}, "")
	roomID := room.id
	room.mu.Unlock()

	go h.runMatchTimer(room, stop)

	h.broadcastRoomList()
	loglifecycle.MatchStarted(context.Background(), h.publisher, playerRef(id), loglifecycle.MatchPayload{RoomID: roomID, Duration: int(h.cfg.MatchDuration / time.Second)}, nil)
}

// Move overwrites the player's transform and relays it to the rest of the
// room. Plausibility of the movement is not checked here.
func (h *Hub) Move(id string, position Vec3, rotation Rotation) {
	h.metrics.IntentObserved("playerMove")

	room := h.resolveRoom(id)
	if room == nil {
		return
	}

	room.mu.Lock()
	defer room.mu.Unlock()
	player, ok := room.players[id]
	if room.deleted || !ok {
		return
	}
	player.Position = position
	player.Rotation = rotation
	h.broadcastRoomLocked(room, playerMovedEvent{
		Ver:      ProtocolVersion,
		Type:     EventPlayerMoved,
		ID:       id,
		Name:     player.Name,
		Position: position,
		Rotation: rotation,
	}, id)
}

// Action is a stateless relay; the server keeps no weapon or ammo state.
func (h *Hub) Action(id, action string, weaponIdx int) {
	h.metrics.IntentObserved("playerAction")

	room := h.resolveRoom(id)
	if room == nil {
		return
	}

	room.mu.Lock()
	defer room.mu.Unlock()
	if room.deleted {
		return
	}
	if _, ok := room.players[id]; !ok {
		return
	}
	h.broadcastRoomLocked(room, playerActionedEvent{
		Ver:       ProtocolVersion,
		Type:      EventPlayerActioned,
		ID:        id,
		Action:    action,
		WeaponIdx: weaponIdx,
	}, id)
}

// DamagePlayer applies a client damage claim. The claim's occurrence and
// magnitude are trusted; who may be damaged and when is not: claims against
// absent, foreign-room, invincible or already-dead targets are dropped with
// no state change and no broadcast.
func (h *Hub) DamagePlayer(id, targetID string, amount int) {
	h.metrics.IntentObserved("damagePlayer")

	room := h.resolveRoom(id)
	if room == nil || amount <= 0 {
		return
	}

	room.mu.Lock()
	defer room.mu.Unlock()
	if room.deleted {
		return
	}
	dealer := room.players[id]
	target, ok := room.players[targetID]
	if !ok || target.IsInvincible || target.IsDead {
		return
	}

	target.HP -= amount
	if target.HP > 0 {
		h.broadcastRoomLocked(room, playerDamagedEvent{
			Ver:      ProtocolVersion,
			Type:     EventPlayerDamaged,
			ID:       targetID,
			HP:       target.HP,
			DealerID: id,
		}, "")
		logcombat.Damage(context.Background(), h.publisher, playerRef(id), playerRef(targetID), logcombat.DamagePayload{Amount: amount, TargetHP: target.HP}, nil)
		return
	}

	target.HP = 0
	target.IsDead = true
	target.deathTime = h.now()
	killerName := "Unknown"
	if dealer != nil {
		killerName = dealer.Name
	}
	h.broadcastRoomLocked(room, playerDiedEvent{
		Ver:        ProtocolVersion,
		Type:       EventPlayerDied,
		ID:         targetID,
		KillerID:   id,
		KillerName: killerName,
	}, "")
	logcombat.Death(context.Background(), h.publisher, playerRef(id), playerRef(targetID), logcombat.DeathPayload{KillerName: killerName}, nil)
}

// RequestRespawn revives a dead player once the server-side minimum delay has
// elapsed; earlier requests are denied with the remaining wait in seconds.
func (h *Hub) RequestRespawn(id string) {
	h.metrics.IntentObserved("requestRespawn")

	room := h.resolveRoom(id)
	if room == nil {
		return
	}

	room.mu.Lock()
	defer room.mu.Unlock()
	player, ok := room.players[id]
	if room.deleted || !ok || !player.IsDead {
		return
	}

	elapsed := h.now().Sub(player.deathTime)
	if elapsed < h.cfg.MinRespawnDelay {
		remaining := int(math.Ceil((h.cfg.MinRespawnDelay - elapsed).Seconds()))
		if data, ok := h.encode(respawnDeniedEvent{Ver: ProtocolVersion, Type: EventRespawnDenied, RemainingTime: remaining}); ok {
			h.enqueueTo(player.sess, data)
		}
		h.metrics.RespawnDenied()
		logcombat.RespawnDenied(context.Background(), h.publisher, playerRef(id), logcombat.RespawnDeniedPayload{RemainingSeconds: remaining}, nil)
		return
	}

	position := h.spawner.Select(room.mapName, room.respawnCounter)
	room.respawnCounter++

	player.HP = playerMaxHealth
	player.IsDead = false
	player.IsInvincible = true
	player.deathTime = time.Time{}
	player.Position = position
	player.Rotation = Rotation{}
	player.stopInvincibilityTimer()
	player.invincibilityTimer = time.AfterFunc(h.cfg.InvincibilityWindow, func() {
		h.clearInvincibility(room, id)
	})

	h.broadcastRoomLocked(room, playerRespawnedEvent{
		Ver:      ProtocolVersion,
		Type:     EventPlayerRespawned,
		ID:       id,
		Name:     player.Name,
		HP:       player.HP,
		Position: position,
		Rotation: player.Rotation,
	}, "")
	logcombat.Respawn(context.Background(), h.publisher, playerRef(id), logcombat.RespawnPayload{X: position.X, Y: position.Y, Z: position.Z}, nil)
}

// Chat relays a message to the whole room, sender included. It requires an
// assigned display name, which every joined player has.
func (h *Hub) Chat(id, message string) {
	h.metrics.IntentObserved("chatMessage")

	room := h.resolveRoom(id)
	if room == nil {
		return
	}

	room.mu.Lock()
	defer room.mu.Unlock()
	player, ok := room.players[id]
	if room.deleted || !ok || player.Name == "" {
		return
	}
	h.broadcastRoomLocked(room, chatMessageEvent{
		Ver:       ProtocolVersion,
		Type:      EventChatMessage,
		Sender:    player.Name,
		Message:   message,
		Timestamp: h.now().UnixMilli(),
	}, "")
}

// DiagnosticsSnapshot reports registry counts for the diagnostics endpoint.
func (h *Hub) DiagnosticsSnapshot() (rooms, connections int) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms), len(h.sessions)
}

// RoomList returns the lobby projection of every room.
func (h *Hub) RoomList() []RoomInfo {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.roomListLocked()
}

// ---- internals ----

// resolveRoom maps a connection onto its room, or nil. Callers re-check the
// room's deleted flag under the room lock: by the time they acquire it the
// room may have emptied and left the registry.
func (h *Hub) resolveRoom(id string) *roomState {
	h.mu.RLock()
	defer h.mu.RUnlock()
	roomID, ok := h.membership[id]
	if !ok {
		return nil
	}
	return h.rooms[roomID]
}

// installPlayerLocked runs the join sequence. Hub lock held; the target room
// has already been validated.
func (h *Hub) installPlayerLocked(sess *session, ident *identityState, room *roomState) {
	room.mu.Lock()

	name := ident.name
	if h.cfg.NamePolicy == NamePolicyRoomSequential {
		name = "Player " + strconv.Itoa(room.nextPlayerNumberLocked())
	} else if name == "" {
		name = fallbackName(sess.id)
	}

	position := h.spawner.Select(room.mapName, room.respawnCounter)
	room.respawnCounter++

	player := &playerState{
		Player: Player{
			ID:           sess.id,
			Name:         name,
			HP:           playerMaxHealth,
			IsInvincible: true,
			Position:     position,
		},
		joinSeq:  room.nextJoinSeq,
		sess:     sess,
	}
	room.nextJoinSeq++
	room.players[sess.id] = player
	h.membership[sess.id] = room.id

	id := sess.id
	player.invincibilityTimer = time.AfterFunc(h.cfg.InvincibilityWindow, func() {
		h.clearInvincibility(room, id)
	})

	if data, ok := h.encode(roomJoinedEvent{
		Ver:         ProtocolVersion,
		Type:        EventRoomJoined,
		RoomID:      room.id,
		RoomName:    room.name,
		IsHost:      room.hostID == sess.id,
		Map:         room.mapName,
		GameMode:    room.gameMode,
		GameStarted: room.matchStarted,
		TimeLeft:    room.timeLeft,
		Players:     room.snapshotPlayersLocked(),
	}); ok {
		h.enqueueTo(sess, data)
	}
	h.broadcastRoomLocked(room, playerJoinedEvent{Ver: ProtocolVersion, Type: EventPlayerJoined, Player: player.snapshot()}, sess.id)
	room.mu.Unlock()

	loglifecycle.PlayerJoined(context.Background(), h.publisher, playerRef(sess.id), loglifecycle.PlayerPayload{RoomID: room.id, Name: name}, nil)
}

// leaveLocked removes the connection from its room, deleting the room if it
// empties. Hub lock held. Reports whether a membership entry was removed.
func (h *Hub) leaveLocked(id string) bool {
	roomID, ok := h.membership[id]
	if !ok {
		return false
	}
	delete(h.membership, id)

	room, ok := h.rooms[roomID]
	if !ok {
		return true
	}

	room.mu.Lock()
	if player, ok := room.players[id]; ok {
		player.stopInvincibilityTimer()
		delete(room.players, id)
	}

	if len(room.players) == 0 {
		room.stopMatchTimerLocked()
		room.deleted = true
		room.mu.Unlock()
		delete(h.rooms, roomID)
		h.metrics.RoomClosed()
		loglifecycle.RoomDeleted(context.Background(), h.publisher, playerRef(id), loglifecycle.RoomPayload{RoomID: roomID}, nil)
		loglifecycle.PlayerLeft(context.Background(), h.publisher, playerRef(id), loglifecycle.PlayerPayload{RoomID: roomID}, nil)
		return true
	}

	renumbered := false
	if h.cfg.NamePolicy == NamePolicyRoomSequential {
		renumbered = room.renumberLocked()
	}

	if room.hostID == id {
		successor := room.orderedPlayersLocked()[0]
		room.hostID = successor.ID
		h.broadcastRoomLocked(room, hostChangedEvent{Ver: ProtocolVersion, Type: EventHostChanged, HostID: successor.ID}, "")
		loglifecycle.HostChanged(context.Background(), h.publisher, playerRef(successor.ID), loglifecycle.RoomPayload{RoomID: roomID}, nil)
	}

	h.broadcastRoomLocked(room, playerLeftEvent{Ver: ProtocolVersion, Type: EventPlayerLeft, ID: id}, "")
	if renumbered {
		h.broadcastRoomLocked(room, playersUpdatedEvent{Ver: ProtocolVersion, Type: EventPlayersUpdated, Players: room.snapshotPlayersLocked()}, "")
	}
	room.mu.Unlock()

	loglifecycle.PlayerLeft(context.Background(), h.publisher, playerRef(id), loglifecycle.PlayerPayload{RoomID: roomID}, nil)
	return true
}

// runMatchTimer drives a room's one-second countdown until the match ends,
// the room dies, or the stop channel closes.
func (h *Hub) runMatchTimer(room *roomState, stop <-chan struct{}) {
	ticker := time.NewTicker(h.tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			ended, done := h.tickMatch(room)
			if done {
				if ended {
					h.broadcastRoomList()
					loglifecycle.MatchEnded(context.Background(), h.publisher, roomRef(room.id), loglifecycle.MatchPayload{RoomID: room.id}, nil)
				}
				return
			}
		}
	}
}

// tickMatch advances the countdown by one second. It re-checks that the room
// still exists and is still playing before touching anything: the tick may
// race with the last player leaving.
func (h *Hub) tickMatch(room *roomState) (ended, done bool) {
	room.mu.Lock()
	defer room.mu.Unlock()

	if room.deleted || !room.matchStarted {
		return false, true
	}

	room.timeLeft--
	if room.timeLeft < 0 {
		room.timeLeft = 0
	}
	h.broadcastRoomLocked(room, timerSyncEvent{Ver: ProtocolVersion, Type: EventTimerSync, TimeLeft: room.timeLeft}, "")
	if room.timeLeft > 0 {
		return false, false
	}

	room.matchStarted = false
	room.timerStop = nil
	h.broadcastRoomLocked(room, gameEndedEvent{Ver: ProtocolVersion, Type: EventGameEnded, Message: "time is up, the match is over"}, "")
	return true, true
}

// clearInvincibility is the timer callback ending a spawn grace period. The
// player may have left, or the whole room may be gone; both are silent skips.
func (h *Hub) clearInvincibility(room *roomState, id string) {
	room.mu.Lock()
	defer room.mu.Unlock()
	if room.deleted {
		return
	}
	player, ok := room.players[id]
	if !ok {
		return
	}
	player.IsInvincible = false
	player.invincibilityTimer = nil
}

func (h *Hub) generateRoomIDLocked() (string, bool) {
	for range roomIDAttempts {
		id := randomRoomID()
		if _, taken := h.rooms[id]; !taken {
			return id, true
		}
	}
	return "", false
}

func randomRoomID() string {
	var b [roomIDLength]byte
	for i := range b {
		b[i] = roomIDAlphabet[rand.IntN(len(roomIDAlphabet))]
	}
	return string(b[:])
}

func fallbackName(id string) string {
	short := id
	if len(short) > 5 {
		short = short[:5]
	}
	return "Player-" + short
}

func (h *Hub) roomListLocked() []RoomInfo {
	rooms := make([]*roomState, 0, len(h.rooms))
	for _, room := range h.rooms {
		rooms = append(rooms, room)
	}
	sort.Slice(rooms, func(i, j int) bool {
		if rooms[i].createdAt.Equal(rooms[j].createdAt) {
			return rooms[i].id < rooms[j].id
		}
		return rooms[i].createdAt.Before(rooms[j].createdAt)
	})
	list := make([]RoomInfo, 0, len(rooms))
	for _, room := range rooms {
		list = append(list, room.info())
	}
	return list
}

// broadcastRoomListLocked pushes the lobby list to every connection. Hub lock
// held by the caller.
func (h *Hub) broadcastRoomListLocked() {
	data, ok := h.encode(roomListUpdatedEvent{Ver: ProtocolVersion, Type: EventRoomListUpdated, Rooms: h.roomListLocked()})
	if !ok {
		return
	}
	for _, sess := range h.sessions {
		h.enqueueTo(sess, data)
	}
}

func (h *Hub) broadcastRoomList() {
	h.mu.RLock()
	defer h.mu.RUnlock()
	h.broadcastRoomListLocked()
}

// broadcastRoomLocked enqueues a frame for every member of the room except
// the named one. Room lock held by the caller; that is what gives room
// members a FIFO view of the match.
func (h *Hub) broadcastRoomLocked(room *roomState, frame any, except string) {
	data, ok := h.encode(frame)
	if !ok {
		return
	}
	for id, player := range room.players {
		if id == except {
			continue
		}
		h.enqueueTo(player.sess, data)
	}
}

// enqueueTo hands a frame to the session, dropping the connection if its
// buffer has stalled.
func (h *Hub) enqueueTo(sess *session, data []byte) {
	if sess == nil {
		return
	}
	if !sess.enqueue(data) {
		h.logger.Printf("dropping stalled connection %s", sess.id)
		sess.close()
		go h.Disconnect(sess.id)
		return
	}
	h.metrics.FrameEnqueued()
}

func (h *Hub) sendError(sess *session, reason string) {
	data, ok := h.encode(errorEvent{Ver: ProtocolVersion, Type: EventError, Reason: reason, Message: ReasonMessage(reason)})
	if !ok {
		return
	}
	h.enqueueTo(sess, data)
}

func (h *Hub) encode(frame any) ([]byte, bool) {
	data, err := json.Marshal(frame)
	if err != nil {
		h.logger.Printf("failed to marshal %T: %v", frame, err)
		return nil, false
	}
	return data, true
}

func playerRef(id string) logging.EntityRef {
	return logging.EntityRef{ID: id, Kind: logging.EntityKindPlayer}
}

func roomRef(id string) logging.EntityRef {
	return logging.EntityRef{ID: id, Kind: logging.EntityKindRoom}
}
