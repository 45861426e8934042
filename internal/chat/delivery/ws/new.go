package ws

import (
	"embed"
	"html/template"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"gemini-chat/internal/chat"
	"gemini-chat/internal/session"
	"gemini-chat/pkg/log"
)

//go:embed templates/index.html
var templatesFS embed.FS

const (
	writeWait = 10 * time.Second
	// MaxFrameSize bounds one inbound frame; larger frames close the socket.
	MaxFrameSize = 64 << 10

	defaultVersion = "1.0.0"
)

// Config holds the defaults every new connection starts from.
type Config struct {
	Defaults session.Settings
	// Cap bounds both the display log and the model history; <= 0 is unbounded.
	Cap     int
	Version string
}

type handler struct {
	l        log.Logger
	uc       chat.UseCase
	cfg      Config
	upgrader websocket.Upgrader
	page     *template.Template

	mu      sync.RWMutex
	clients map[string]*client
}

// New creates the reactive chat handler.
func New(l log.Logger, uc chat.UseCase, cfg Config) (*handler, error) {
	if cfg.Version == "" {
		cfg.Version = defaultVersion
	}

	page, err := template.ParseFS(templatesFS, "templates/index.html")
	if err != nil {
		return nil, err
	}

	return &handler{
		l:   l,
		uc:  uc,
		cfg: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		page:    page,
		clients: make(map[string]*client),
	}, nil
}
