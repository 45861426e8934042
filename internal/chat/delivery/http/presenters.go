package http

import (
	"strings"

	"gemini-chat/internal/chat"
)

// --- Request DTOs ---

type sendReq struct {
	Message string `json:"message"`
}

func (r sendReq) toInput() chat.SendInput {
	return chat.SendInput{Message: r.Message}
}

// --- Response DTOs ---

// sendResp is the fixed body of POST /send_message.
type sendResp struct {
	UserMessage string `json:"user_message"`
	BotResponse string `json:"bot_response"`
}

func (h *handler) newSendResp(out chat.SendOutput) sendResp {
	return sendResp{
		UserMessage: out.UserMessage,
		BotResponse: out.Display,
	}
}

type emptyMessageResp struct {
	Error string `json:"error"`
}

type turnResp struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type settingsResp struct {
	SystemInstruction string  `json:"system_instruction"`
	Temperature       float64 `json:"temperature"`
}

type historyResp struct {
	SessionID string       `json:"session_id"`
	Turns     []turnResp   `json:"turns"`
	Settings  settingsResp `json:"settings"`
}

func (h *handler) newHistoryResp(sessionID string, view chat.SessionView) historyResp {
	turns := make([]turnResp, len(view.Turns))
	for i, t := range view.Turns {
		turns[i] = turnResp{Role: string(t.Role), Content: t.Text}
	}
	return historyResp{
		SessionID: sessionID,
		Turns:     turns,
		Settings: settingsResp{
			SystemInstruction: view.Settings.SystemInstruction,
			Temperature:       view.Settings.Temperature,
		},
	}
}

type pageData struct {
	Title    string
	Greeting string
	Model    string
}

func (h *handler) newPageData() pageData {
	return pageData{
		Title:    pageTitle,
		Greeting: pageGreeting,
		Model:    strings.TrimSpace(h.cfg.Model),
	}
}
