package server

import (
	"strconv"
	"testing"
)

func testRoom(names ...string) *roomState {
	room := &roomState{players: make(map[string]*playerState)}
	for i, name := range names {
		id := string(rune('a' + i))
		room.players[id] = &playerState{
			Player:  Player{ID: id, Name: name},
			joinSeq: room.nextJoinSeq,
		}
		room.nextJoinSeq++
	}
	return room
}

func TestNextPlayerNumberFillsGaps(t *testing.T) {
	cases := []struct {
		names []string
		want  int
	}{
		{nil, 1},
		{[]string{"Player 1"}, 2},
		{[]string{"Player 1", "Player 2"}, 3},
		{[]string{"Player 2", "Player 3"}, 1},
		{[]string{"Player 1", "Player 3"}, 2},
		{[]string{"Shadow", "Player 1"}, 2},
	}
	for _, tc := range cases {
		room := testRoom(tc.names...)
		if got := room.nextPlayerNumberLocked(); got != tc.want {
			t.Fatalf("names %v: expected %d, got %d", tc.names, tc.want, got)
		}
	}
}

func TestRenumberFollowsJoinOrder(t *testing.T) {
	room := testRoom("Player 1", "Player 3", "Player 4")

	if !room.renumberLocked() {
		t.Fatalf("expected renumbering to report a change")
	}

	for i, p := range room.orderedPlayersLocked() {
		want := "Player " + strconv.Itoa(i+1)
		if p.Name != want {
			t.Fatalf("slot %d: expected %q, got %q", i, want, p.Name)
		}
	}

	if room.renumberLocked() {
		t.Fatalf("second pass should be a no-op")
	}
}

func TestParsePlayerNumber(t *testing.T) {
	cases := []struct {
		name string
		n    int
		ok   bool
	}{
		{"Player 1", 1, true},
		{"Player 12", 12, true},
		{"Player 0", 0, false},
		{"Player -3", 0, false},
		{"Player x", 0, false},
		{"Shadow", 0, false},
		{"player 1", 0, false},
	}
	for _, tc := range cases {
		n, ok := parsePlayerNumber(tc.name)
		if ok != tc.ok || n != tc.n {
			t.Fatalf("%q: expected (%d,%v), got (%d,%v)", tc.name, tc.n, tc.ok, n, ok)
		}
	}
}

func TestRoomStatus(t *testing.T) {
	room := testRoom("Player 1")
	if room.status() != "waiting" {
		t.Fatalf("expected waiting, got %q", room.status())
	}
	room.matchStarted = true
	if room.status() != "playing" {
		t.Fatalf("expected playing, got %q", room.status())
	}
}

func TestStopMatchTimerIsIdempotent(t *testing.T) {
	room := testRoom()
	stop := make(chan struct{})
	room.timerStop = stop

	room.stopMatchTimerLocked()
	select {
	case <-stop:
	default:
		t.Fatalf("stop channel not closed")
	}

	// A second stop with no timer running must not panic.
	room.stopMatchTimerLocked()
}
