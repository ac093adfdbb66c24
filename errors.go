package server

// Reject reasons surfaced to the requesting connection via the error event.
// Race-class failures (damage or movement against a player who just left) are
// absorbed silently and never map to one of these.
const (
	ReasonRoomNotFound        = "roomNotFound"
	ReasonRoomFull            = "roomFull"
	ReasonMatchAlreadyStarted = "matchAlreadyStarted"
	ReasonRoomIDExhausted     = "roomIdExhausted"
)

var reasonText = map[string]string{
	ReasonRoomNotFound:        "that room no longer exists",
	ReasonRoomFull:            "the room is full",
	ReasonMatchAlreadyStarted: "the match has already started",
	ReasonRoomIDExhausted:     "could not allocate a room id, try again",
}

// ReasonMessage maps a reject reason onto its human-readable description.
func ReasonMessage(reason string) string {
	if text, ok := reasonText[reason]; ok {
		return text
	}
	return reason
}
