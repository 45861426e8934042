package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/gorilla/websocket"

	"gemini-chat/internal/chat"
	"gemini-chat/internal/model"
	"gemini-chat/internal/session"
)

const (
	noticeSettingsSaved = "Settings saved!"
	noticeEmptyMessage  = "Please enter a message."
	noticeUnknownAction = "Unknown action."
)

// Index godoc
// @Summary     Reactive chat page
// @Description Serves the page that drives a conversation over /ws.
// @Tags        Chat
// @Produce     html
// @Success     200 {string} string "HTML page"
// @Router      / [GET]
func (h *handler) Index(c *gin.Context) {
	c.Render(http.StatusOK, render.HTML{
		Template: h.page,
		Name:     "index.html",
		Data: pageData{
			Version:  h.cfg.Version,
			Settings: newSettingsFrame(h.cfg.Defaults),
		},
	})
}

// Serve godoc
// @Summary     Conversation socket
// @Description Upgrades to a websocket. Each connection owns one conversation
// @Description that lives until the socket closes.
// @Tags        Chat
// @Success     101 {string} string "Switching Protocols"
// @Router      /ws [GET]
func (h *handler) Serve(c *gin.Context) {
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.l.Warnf(ctx, "internal.chat.delivery.ws.Serve: upgrade failed: %v", err)
		return
	}
	conn.SetReadLimit(MaxFrameSize)

	cl := h.register(ctx, conn)
	defer h.unregister(ctx, cl)

	if err := cl.push(newStateFrame(cl.conv, false, nil)); err != nil {
		return
	}

	// Actions are handled one at a time, in arrival order.
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.l.Warnf(ctx, "internal.chat.delivery.ws.Serve: read: %v", err)
			}
			return
		}

		var in inFrame
		if err := json.Unmarshal(data, &in); err != nil {
			if err := cl.push(newStateFrame(cl.conv, false, warning(noticeUnknownAction))); err != nil {
				return
			}
			continue
		}

		if err := h.handle(ctx, cl, in); err != nil {
			h.l.Warnf(ctx, "internal.chat.delivery.ws.Serve: write: %v", err)
			return
		}
	}
}

// handle applies one action and pushes the resulting state. The returned
// error is a write failure; action failures become notices.
func (h *handler) handle(ctx context.Context, cl *client, in inFrame) error {
	conv := cl.conv

	switch in.Type {
	case ActionSend:
		if strings.TrimSpace(in.Message) == "" {
			return cl.push(newStateFrame(conv, false, warning(noticeEmptyMessage)))
		}

		conv.Record(model.Turn{Role: model.RoleUser, Text: in.Message})
		if err := cl.push(newStateFrame(conv, true, nil)); err != nil {
			return err
		}

		out, err := h.uc.Send(ctx, conv.Session, chat.SendInput{Message: in.Message})
		if err != nil {
			h.l.Errorf(ctx, "internal.chat.delivery.ws.handle: uc.Send: %v", err)
			return cl.push(newStateFrame(conv, false, warning(err.Error())))
		}
		conv.Record(model.Turn{Role: model.RoleAssistant, Text: out.Display})
		return cl.push(newStateFrame(conv, false, nil))

	case ActionSettings:
		_, err := h.uc.UpdateSettings(ctx, conv.Session, chat.UpdateSettingsInput{
			SystemInstruction: in.SystemInstruction,
			Temperature:       in.Temperature,
		})
		if err != nil {
			return cl.push(newStateFrame(conv, false, warning(settingsNotice(err))))
		}
		return cl.push(newStateFrame(conv, false, &noticeFrame{Level: LevelSuccess, Text: noticeSettingsSaved}))

	case ActionClear:
		h.uc.Clear(ctx, conv.Session)
		conv.ClearMessages()
		return cl.push(newStateFrame(conv, false, nil))

	default:
		return cl.push(newStateFrame(conv, false, warning(noticeUnknownAction)))
	}
}

func settingsNotice(err error) string {
	switch {
	case errors.Is(err, session.ErrInvalidTemperature):
		return "Temperature must be between 0.0 and 1.0."
	case errors.Is(err, chat.ErrNoSettingChange):
		return "Nothing to save."
	default:
		return err.Error()
	}
}
