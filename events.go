package server

// Outbound event type identifiers, one per frame the server emits.
const (
	EventRoomListUpdated = "roomListUpdated"
	EventRoomJoined      = "roomJoined"
	EventPlayerJoined    = "playerJoined"
	EventPlayerLeft      = "playerLeft"
	EventPlayersUpdated  = "playersUpdated"
	EventHostChanged     = "hostChanged"
	EventGameStart       = "gameStart"
	EventGameEnded       = "gameEnded"
	EventTimerSync       = "timerSync"
	EventPlayerMoved     = "playerMoved"
	EventPlayerActioned  = "playerActioned"
	EventPlayerDamaged   = "playerDamaged"
	EventPlayerDied      = "playerDied"
	EventPlayerRespawned = "playerRespawned"
	EventRespawnDenied   = "respawnDenied"
	EventChatMessage     = "chatMessage"
	EventError           = "error"
)

type roomListUpdatedEvent struct {
	Ver   int        `json:"ver"`
	Type  string     `json:"type"`
	Rooms []RoomInfo `json:"rooms"`
}

type roomJoinedEvent struct {
	Ver         int               `json:"ver"`
	Type        string            `json:"type"`
	RoomID      string            `json:"roomId"`
	RoomName    string            `json:"roomName"`
	IsHost      bool              `json:"isHost"`
	Map         string            `json:"map"`
	GameMode    string            `json:"gameMode"`
	GameStarted bool              `json:"gameStarted"`
	TimeLeft    int               `json:"timeLeft"`
	Players     map[string]Player `json:"players"`
}

type playerJoinedEvent struct {
	Ver    int    `json:"ver"`
	Type   string `json:"type"`
	Player Player `json:"player"`
}

type playerLeftEvent struct {
	Ver  int    `json:"ver"`
	Type string `json:"type"`
	ID   string `json:"id"`
}

type playersUpdatedEvent struct {
	Ver     int               `json:"ver"`
	Type    string            `json:"type"`
	Players map[string]Player `json:"players"`
}

type hostChangedEvent struct {
	Ver    int    `json:"ver"`
	Type   string `json:"type"`
	HostID string `json:"hostId"`
}

type gameStartEvent struct {
	Ver      int    `json:"ver"`
	Type     string `json:"type"`
	Map      string `json:"map"`
	GameMode string `json:"gameMode"`
	TimeLeft int    `json:"timeLeft"`
}

type gameEndedEvent struct {
	Ver     int    `json:"ver"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

type timerSyncEvent struct {
	Ver      int    `json:"ver"`
	Type     string `json:"type"`
	TimeLeft int    `json:"timeLeft"`
}

type playerMovedEvent struct {
	Ver      int      `json:"ver"`
	Type     string   `json:"type"`
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Position Vec3     `json:"position"`
	Rotation Rotation `json:"rotation"`
}

type playerActionedEvent struct {
	Ver       int    `json:"ver"`
	Type      string `json:"type"`
	ID        string `json:"id"`
	Action    string `json:"action"`
	WeaponIdx int    `json:"weaponIdx"`
}

type playerDamagedEvent struct {
	Ver      int    `json:"ver"`
	Type     string `json:"type"`
	ID       string `json:"id"`
	HP       int    `json:"hp"`
	DealerID string `json:"dealerId"`
}

type playerDiedEvent struct {
	Ver        int    `json:"ver"`
	Type       string `json:"type"`
	ID         string `json:"id"`
	KillerID   string `json:"killerId"`
	KillerName string `json:"killerName"`
}

type playerRespawnedEvent struct {
	Ver      int      `json:"ver"`
	Type     string   `json:"type"`
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	HP       int      `json:"hp"`
	Position Vec3     `json:"position"`
	Rotation Rotation `json:"rotation"`
}

type respawnDeniedEvent struct {
	Ver           int    `json:"ver"`
	Type          string `json:"type"`
	RemainingTime int    `json:"remainingTime"`
}

type chatMessageEvent struct {
	Ver       int    `json:"ver"`
	Type      string `json:"type"`
	Sender    string `json:"sender"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

type errorEvent struct {
	Ver     int    `json:"ver"`
	Type    string `json:"type"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}
