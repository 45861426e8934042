package httpserver

import (
	"context"

	"gemini-chat/internal/middleware"
	"gemini-chat/internal/model"
	"gemini-chat/pkg/response"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	mw := middleware.New(srv.l)
	srv.gin.Use(gin.Recovery(), mw.RequestID(), mw.AccessLog())

	srv.gin.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "route not found")
	})

	srv.l.Infof(context.Background(), "Server mode: %s, environment: %s", srv.mode, srv.environment)
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// API docs are not served in production.
	if srv.environment == string(model.EnvironmentProduction) {
		return
	}
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes() error {
	return srv.setupChatDomain(context.Background())
}
