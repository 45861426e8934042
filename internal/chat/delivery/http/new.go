package http

import (
	"embed"
	"html/template"
	"time"

	"gemini-chat/internal/chat"
	"gemini-chat/internal/session"
	"gemini-chat/pkg/log"
)

//go:embed templates/index.html
var templatesFS embed.FS

const (
	// SessionHeader lets non-browser clients pick their session without cookies.
	SessionHeader = "X-Session-ID"

	defaultCookieName = "chat_session"
	pageTitle         = "Gemini Chatbot"
	pageGreeting      = "Hello! I'm your Gemini-powered assistant. How can I help you today?"
)

// Config holds the delivery-level knobs.
type Config struct {
	CookieName   string
	CookieMaxAge time.Duration
	Model        string
}

type handler struct {
	l        log.Logger
	uc       chat.UseCase
	sessions *session.Registry
	cfg      Config
	page     *template.Template
}

// New creates a new HTTP handler for the request/response chat.
func New(l log.Logger, uc chat.UseCase, sessions *session.Registry, cfg Config) (*handler, error) {
	if cfg.CookieName == "" {
		cfg.CookieName = defaultCookieName
	}

	page, err := template.ParseFS(templatesFS, "templates/index.html")
	if err != nil {
		return nil, err
	}

	return &handler{
		l:        l,
		uc:       uc,
		sessions: sessions,
		cfg:      cfg,
		page:     page,
	}, nil
}
