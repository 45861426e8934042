package ws

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"gemini-chat/internal/chat"
	"gemini-chat/internal/session"
)

// client is one open socket and the conversation it owns.
type client struct {
	conn *websocket.Conn
	conv *chat.Conversation

	wmu sync.Mutex
}

func (c *client) push(frame stateFrame) error {
	c.wmu.Lock()
	defer c.wmu.Unlock()

	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(frame)
}

func (c *client) close(code int, text string) {
	c.wmu.Lock()
	defer c.wmu.Unlock()

	_ = c.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, text), time.Now().Add(writeWait))
	_ = c.conn.Close()
}

func (h *handler) register(ctx context.Context, conn *websocket.Conn) *client {
	id := uuid.NewString()
	c := &client{
		conn: conn,
		conv: chat.NewConversation(id, session.New(h.cfg.Defaults, h.cfg.Cap)),
	}

	h.mu.Lock()
	h.clients[id] = c
	total := len(h.clients)
	h.mu.Unlock()

	h.l.Infof(ctx, "internal.chat.delivery.ws.register: conversation %s connected (total: %d)", id, total)
	return c
}

func (h *handler) unregister(ctx context.Context, c *client) {
	h.mu.Lock()
	delete(h.clients, c.conv.ID)
	h.mu.Unlock()

	_ = c.conn.Close()
	h.l.Infof(ctx, "internal.chat.delivery.ws.unregister: conversation %s disconnected", c.conv.ID)
}

// Connections returns the number of open conversations.
func (h *handler) Connections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// CloseAll sends a going-away close frame to every open socket.
func (h *handler) CloseAll() {
	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		c.close(websocket.CloseGoingAway, "server shutting down")
	}
}
