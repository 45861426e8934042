package ws

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the reactive page and its websocket.
func RegisterRoutes(r gin.IRoutes, h *handler) {
	r.GET("/", h.Index)
	r.GET("/ws", h.Serve)
}
