package server

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// RoomInfo is the lobby-list projection of a room.
type RoomInfo struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	CurrentPlayers int    `json:"currentPlayers"`
	MaxPlayers     int    `json:"maxPlayers"`
	Map            string `json:"map"`
	GameMode       string `json:"gameMode"`
	Status         string `json:"status"`
}

// roomState is one match/lobby instance. The mutex serializes every intent
// that touches the room; two different rooms never contend with each other.
type roomState struct {
	mu sync.Mutex

	id         string
	name       string
	hostID     string
	maxPlayers int
	mapName    string
	gameMode   string

	players map[string]*playerState

	matchStarted bool
	timeLeft     int
	// timerStop cancels the match countdown goroutine. Nil while no match is
	// running.
	timerStop chan struct{}

	// respawnCounter feeds the indexed spawn policy; it advances on every
	// spawn placement, joins included, so low player counts round-robin.
	respawnCounter uint64
	nextJoinSeq    uint64

	createdAt time.Time

	// deleted marks the room as removed from the registry. Timer callbacks
	// check it before mutating anything.
	deleted bool
}

func (r *roomState) status() string {
	if r.matchStarted {
		return "playing"
	}
	return "waiting"
}

func (r *roomState) infoLocked() RoomInfo {
	return RoomInfo{
		ID:             r.id,
		Name:           r.name,
		CurrentPlayers: len(r.players),
		MaxPlayers:     r.maxPlayers,
		Map:            r.mapName,
		GameMode:       r.gameMode,
		Status:         r.status(),
	}
}

func (r *roomState) info() RoomInfo {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.infoLocked()
}

func (r *roomState) snapshotPlayersLocked() map[string]Player {
	players := make(map[string]Player, len(r.players))
	for id, p := range r.players {
		players[id] = p.snapshot()
	}
	return players
}

// orderedPlayersLocked returns the members in join order. Host promotion and
// renumbering both key off this ordering.
func (r *roomState) orderedPlayersLocked() []*playerState {
	ordered := make([]*playerState, 0, len(r.players))
	for _, p := range r.players {
		ordered = append(ordered, p)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].joinSeq < ordered[j].joinSeq
	})
	return ordered
}

// nextPlayerNumberLocked finds the lowest unused "Player N" suffix among the
// current members, so the numbering stays gap-free after departures.
func (r *roomState) nextPlayerNumberLocked() int {
	used := make(map[int]bool, len(r.players))
	for _, p := range r.players {
		if n, ok := parsePlayerNumber(p.Name); ok {
			used[n] = true
		}
	}
	n := 1
	for used[n] {
		n++
	}
	return n
}

// renumberLocked reassigns "Player N" names in join order after a departure.
// Reports whether any name actually changed.
func (r *roomState) renumberLocked() bool {
	changed := false
	for i, p := range r.orderedPlayersLocked() {
		name := "Player " + strconv.Itoa(i+1)
		if p.Name != name {
			p.Name = name
			changed = true
		}
	}
	return changed
}

func parsePlayerNumber(name string) (int, bool) {
	rest, ok := strings.CutPrefix(name, "Player ")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// stopMatchTimerLocked cancels the countdown goroutine if one is running.
// Called on match end and, crucially, the instant a room empties: a timer
// that outlives its room is a defect.
func (r *roomState) stopMatchTimerLocked() {
	if r.timerStop != nil {
		close(r.timerStop)
		r.timerStop = nil
	}
}
