package httpserver

import (
	"context"

	chatHTTP "gemini-chat/internal/chat/delivery/http"
	chatWS "gemini-chat/internal/chat/delivery/ws"
	chatUC "gemini-chat/internal/chat/usecase"
)

// setupChatDomain wires the chat use case to the selected front-end.
func (srv *HTTPServer) setupChatDomain(ctx context.Context) error {
	uc := chatUC.New(srv.modelClient, srv.l)

	switch srv.frontend {
	case FrontendReactive:
		h, err := chatWS.New(srv.l, uc, chatWS.Config{
			Defaults: srv.chat.Defaults,
			Cap:      srv.chat.RetentionCap,
			Version:  srv.chat.Version,
		})
		if err != nil {
			return err
		}
		chatWS.RegisterRoutes(srv.gin, h)
		srv.onShutdown = append(srv.onShutdown, h.CloseAll)
		srv.l.Infof(ctx, "Reactive chat registered at GET / and GET /ws")

	default:
		h, err := chatHTTP.New(srv.l, uc, srv.sessions, chatHTTP.Config{
			CookieName:   srv.chat.SessionCookie,
			CookieMaxAge: srv.chat.CookieMaxAge,
			Model:        srv.chat.Model,
		})
		if err != nil {
			return err
		}
		chatHTTP.RegisterRoutes(srv.gin, h)
		srv.l.Infof(ctx, "Request/response chat registered at POST /send_message")
	}

	return nil
}
