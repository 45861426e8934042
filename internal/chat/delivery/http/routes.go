package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the chat page and its JSON endpoints.
func RegisterRoutes(r gin.IRoutes, h *handler) {
	r.GET("/", h.Index)
	r.POST("/send_message", h.SendMessage)
	r.POST("/clear", h.Clear)
	r.GET("/history", h.History)
}
