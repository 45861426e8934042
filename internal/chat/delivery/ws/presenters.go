package ws

import (
	"gemini-chat/internal/chat"
	"gemini-chat/internal/session"
)

// Client frame types.
const (
	ActionSend     = "send"
	ActionSettings = "settings"
	ActionClear    = "clear"
)

// Notice levels.
const (
	LevelSuccess = "success"
	LevelWarning = "warning"
)

const frameState = "state"

// inFrame is one client action.
type inFrame struct {
	Type              string   `json:"type"`
	Message           string   `json:"message,omitempty"`
	SystemInstruction *string  `json:"system_instruction,omitempty"`
	Temperature       *float64 `json:"temperature,omitempty"`
}

type messageFrame struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type settingsFrame struct {
	SystemInstruction string  `json:"system_instruction"`
	Temperature       float64 `json:"temperature"`
}

type noticeFrame struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

// stateFrame carries everything the page needs to re-render.
type stateFrame struct {
	Type      string         `json:"type"`
	SessionID string         `json:"session_id"`
	Messages  []messageFrame `json:"messages"`
	Settings  settingsFrame  `json:"settings"`
	Busy      bool           `json:"busy"`
	Notice    *noticeFrame   `json:"notice,omitempty"`
}

func newStateFrame(conv *chat.Conversation, busy bool, notice *noticeFrame) stateFrame {
	msgs := conv.Messages()
	out := make([]messageFrame, len(msgs))
	for i, m := range msgs {
		out[i] = messageFrame{Role: string(m.Role), Content: m.Text}
	}
	return stateFrame{
		Type:      frameState,
		SessionID: conv.ID,
		Messages:  out,
		Settings:  newSettingsFrame(conv.Session.Settings()),
		Busy:      busy,
		Notice:    notice,
	}
}

func newSettingsFrame(s session.Settings) settingsFrame {
	return settingsFrame{
		SystemInstruction: s.SystemInstruction,
		Temperature:       s.Temperature,
	}
}

func warning(text string) *noticeFrame {
	return &noticeFrame{Level: LevelWarning, Text: text}
}

type pageData struct {
	Version  string
	Settings settingsFrame
}
