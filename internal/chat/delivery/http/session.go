package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gemini-chat/internal/session"
)

// resolveSession finds the caller's session from the X-Session-ID header or
// the session cookie, creating one when neither names a live session. The id
// in use is always echoed back in both places.
func (h *handler) resolveSession(c *gin.Context) (*session.Session, string) {
	id := c.GetHeader(SessionHeader)
	if id == "" {
		id, _ = c.Cookie(h.cfg.CookieName)
	}

	sess, sessionID, created := h.sessions.GetOrCreate(id)
	if created {
		h.l.Debugf(c.Request.Context(), "internal.chat.delivery.http.resolveSession: new session %s", sessionID)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.CookieName, sessionID, int(h.cfg.CookieMaxAge.Seconds()), "/", "", false, true)
	c.Header(SessionHeader, sessionID)

	return sess, sessionID
}
