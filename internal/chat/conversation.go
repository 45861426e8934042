package chat

import (
	"sync"

	"gemini-chat/internal/model"
	"gemini-chat/internal/session"
)

// Conversation is the state of one reactive UI session. The display log holds
// every rendered message, failed replies included, while Session keeps only
// the exchanges the model actually answered.
type Conversation struct {
	ID      string
	Session *session.Session

	mu       sync.RWMutex
	messages []model.Turn
}

// NewConversation wraps sess with an empty display log.
func NewConversation(id string, sess *session.Session) *Conversation {
	return &Conversation{ID: id, Session: sess}
}

// Record appends to the display log, evicting the oldest entries beyond the
// session's retention cap.
func (c *Conversation) Record(turns ...model.Turn) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.messages = append(c.messages, turns...)
	if limit := c.Session.Cap(); limit > 0 && len(c.messages) > limit {
		c.messages = append([]model.Turn(nil), c.messages[len(c.messages)-limit:]...)
	}
}

// Messages returns a copy of the display log.
func (c *Conversation) Messages() []model.Turn {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return model.CopyTurns(c.messages)
}

// ClearMessages empties the display log. The model history is cleared
// separately through the use case.
func (c *Conversation) ClearMessages() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = nil
}
