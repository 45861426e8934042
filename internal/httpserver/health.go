package httpserver

import (
	"gemini-chat/pkg/response"

	"github.com/gin-gonic/gin"
)

// Identity reported by the probe endpoints.
const (
	HealthMessage = "Chat server is running"
	HealthVersion = "1.0.0"
	ServiceName   = "gemini-chat"
)

// probe is the body shared by /health, /ready and /live.
func (srv *HTTPServer) probe(state string) gin.H {
	return gin.H{
		"status":   state,
		"message":  HealthMessage,
		"version":  HealthVersion,
		"service":  ServiceName,
		"frontend": srv.frontend,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Reports service identity and the active chat front-end
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.probe("healthy"))
}

// readyCheck also reports the live session count on the request/response front-end.
// @Summary Readiness Check
// @Description Check if the server is ready to accept chat traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	data := srv.probe("ready")
	if srv.sessions != nil {
		data["sessions"] = srv.sessions.Len()
	}
	response.OK(c, data)
}

// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.probe("alive"))
}
