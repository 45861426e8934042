package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"gemini-chat/internal/chat"
	"gemini-chat/pkg/response"
)

// Index godoc
// @Summary     Chat page
// @Description Serves the single-page chat client.
// @Tags        Chat
// @Produce     html
// @Success     200 {string} string "HTML page"
// @Router      / [GET]
func (h *handler) Index(c *gin.Context) {
	c.Render(http.StatusOK, render.HTML{
		Template: h.page,
		Name:     "index.html",
		Data:     h.newPageData(),
	})
}

// SendMessage godoc
// @Summary     Send a chat message
// @Description Forwards the message to the model with the caller's session history.
// @Description A blank message yields {"error":"Empty message"} with status 200.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string  false "Session id (overrides the cookie)"
// @Param       body         body   sendReq true  "Message"
// @Success     200 {object} sendResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /send_message [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sess, _ := h.resolveSession(c)

	out, err := h.uc.Send(ctx, sess, req.toInput())
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			c.JSON(http.StatusOK, emptyMessageResp{Error: "Empty message"})
			return
		}
		h.l.Errorf(ctx, "internal.chat.delivery.http.SendMessage: %v", err)
		response.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.newSendResp(out))
}

// Clear godoc
// @Summary     Clear the conversation
// @Description Drops the caller's turns. Settings are kept.
// @Tags        Chat
// @Produce     json
// @Param       X-Session-ID header string false "Session id (overrides the cookie)"
// @Success     200 {object} response.Resp
// @Router      /clear [POST]
func (h *handler) Clear(c *gin.Context) {
	sess, _ := h.resolveSession(c)
	h.uc.Clear(c.Request.Context(), sess)
	response.OK(c, nil)
}

// History godoc
// @Summary     Conversation history
// @Description Returns the caller's retained turns and settings.
// @Tags        Chat
// @Produce     json
// @Param       X-Session-ID header string false "Session id (overrides the cookie)"
// @Success     200 {object} historyResp
// @Router      /history [GET]
func (h *handler) History(c *gin.Context) {
	sess, sessionID := h.resolveSession(c)
	response.OK(c, h.newHistoryResp(sessionID, h.uc.Snapshot(sess)))
}
