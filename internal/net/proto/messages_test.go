package proto

import "testing"

func TestDecodeClientMessageDefaultsVersion(t *testing.T) {
	msg, err := DecodeClientMessage([]byte(`{"type":"requestStart"}`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if msg.Ver != Version {
		t.Fatalf("expected version %d, got %d", Version, msg.Ver)
	}
}

func TestDecodeClientMessageRejectsVersion(t *testing.T) {
	if _, err := DecodeClientMessage([]byte(`{"ver":99,"type":"requestStart"}`)); err == nil {
		t.Fatalf("expected version mismatch error")
	}
}

func TestDecodeClientMessageRejectsMalformed(t *testing.T) {
	if _, err := DecodeClientMessage([]byte(`{"type":`)); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestParseIntentValidation(t *testing.T) {
	cases := []struct {
		name string
		msg  ClientMessage
		ok   bool
	}{
		{"join without room", ClientMessage{Type: TypeJoinRoom}, false},
		{"join", ClientMessage{Type: TypeJoinRoom, RoomID: "ABC123"}, true},
		{"move without transform", ClientMessage{Type: TypePlayerMove}, false},
		{"action without name", ClientMessage{Type: TypePlayerAction}, false},
		{"damage without target", ClientMessage{Type: TypeDamagePlayer, Damage: 10}, false},
		{"damage without amount", ClientMessage{Type: TypeDamagePlayer, TargetID: "p2"}, false},
		{"negative damage", ClientMessage{Type: TypeDamagePlayer, TargetID: "p2", Damage: -5}, false},
		{"damage", ClientMessage{Type: TypeDamagePlayer, TargetID: "p2", Damage: 25}, true},
		{"empty chat", ClientMessage{Type: TypeChatMessage}, false},
		{"chat", ClientMessage{Type: TypeChatMessage, Message: "gg"}, true},
		{"bare start", ClientMessage{Type: TypeRequestStart}, true},
		{"bare respawn", ClientMessage{Type: TypeRequestRespawn}, true},
		{"bare leave", ClientMessage{Type: TypeLeaveRoom}, true},
		{"unknown", ClientMessage{Type: "teleport"}, false},
	}
	for _, tc := range cases {
		if _, ok := ParseIntent(tc.msg); ok != tc.ok {
			t.Fatalf("%s: expected ok=%v", tc.name, tc.ok)
		}
	}
}

func TestParseIntentTrimsIdentityName(t *testing.T) {
	intent, ok := ParseIntent(ClientMessage{Type: TypeSetIdentity, Name: "  Shadow "})
	if !ok {
		t.Fatalf("identity intent rejected")
	}
	if intent.SetIdentity.Name != "Shadow" {
		t.Fatalf("expected trimmed name, got %q", intent.SetIdentity.Name)
	}
}

func TestParseIntentCarriesCreatePayload(t *testing.T) {
	intent, ok := ParseIntent(ClientMessage{
		Type:       TypeCreateRoom,
		Name:       "Scrims",
		MaxPlayers: 8,
		Map:        "hotel",
		GameMode:   "tdm",
	})
	if !ok {
		t.Fatalf("create intent rejected")
	}
	create := intent.CreateRoom
	if create.Name != "Scrims" || create.MaxPlayers != 8 || create.Map != "hotel" || create.GameMode != "tdm" {
		t.Fatalf("payload mangled: %+v", create)
	}
}
