package chat

import (
	"gemini-chat/internal/model"
	"gemini-chat/internal/modelclient"
	"gemini-chat/internal/session"
)

// --- UseCase Inputs ---

type SendInput struct {
	Message string
}

// UpdateSettingsInput carries optional replacements; nil fields are left as is.
type UpdateSettingsInput struct {
	SystemInstruction *string
	Temperature       *float64
}

// --- UseCase Outputs ---

type SendOutput struct {
	UserMessage string
	Reply       modelclient.Reply
	// Display is what the front-end renders for the reply, error text included.
	Display string
}

type SessionView struct {
	Turns    []model.Turn
	Settings session.Settings
}
