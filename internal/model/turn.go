package model

import "strings"

// Role identifies the speaker of a Turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message of a conversation. Treat it as immutable once created.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"content"`
}

// NormalizeRole maps any speaker label onto the two roles a conversation knows.
// Anything that is not the user is the assistant.
func NormalizeRole(r string) Role {
	if strings.EqualFold(strings.TrimSpace(r), string(RoleUser)) {
		return RoleUser
	}
	return RoleAssistant
}

// CopyTurns returns a copy of turns that shares no backing array with the input.
func CopyTurns(turns []Turn) []Turn {
	out := make([]Turn, len(turns))
	copy(out, turns)
	return out
}
