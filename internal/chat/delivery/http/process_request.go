package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errInvalidBody = errors.New("request body must be a JSON object with a string message")

// processSendReq binds the send_message body. A missing message field binds
// to "" and is rejected later as an empty message, not here.
func (h *handler) processSendReq(c *gin.Context) (sendReq, error) {
	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.chat.delivery.http.processSendReq: %v", err)
		return req, errInvalidBody
	}
	return req, nil
}
