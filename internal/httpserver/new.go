package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"gemini-chat/internal/chat/usecase"
	"gemini-chat/internal/session"
	"gemini-chat/pkg/log"
)

// Frontend selects which chat delivery the server mounts.
type Frontend string

const (
	// FrontendRequestResponse mounts POST /send_message and friends.
	FrontendRequestResponse Frontend = "request_response"
	// FrontendReactive mounts the websocket-driven page.
	FrontendReactive Frontend = "reactive"
)

const shutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Chat domain
	frontend    Frontend
	modelClient usecase.ModelClient
	sessions    *session.Registry
	chat        ChatOptions

	// run before the listener shuts down, e.g. closing hijacked sockets
	onShutdown []func()
}

// ChatOptions carries the chat knobs the delivery layers need.
type ChatOptions struct {
	Defaults      session.Settings
	RetentionCap  int
	SessionCookie string
	CookieMaxAge  time.Duration
	Model         string
	Version       string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	Frontend    Frontend
	ModelClient usecase.ModelClient
	// Sessions is required by the request/response front-end only.
	Sessions *session.Registry
	Chat     ChatOptions
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		frontend:    cfg.Frontend,
		modelClient: cfg.ModelClient,
		sessions:    cfg.Sessions,
		chat:        cfg.Chat,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.modelClient == nil {
		return errors.New("model client is required")
	}
	switch srv.frontend {
	case FrontendRequestResponse:
		if srv.sessions == nil {
			return errors.New("session registry is required")
		}
	case FrontendReactive:
	default:
		return errors.New("unknown frontend: " + string(srv.frontend))
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
