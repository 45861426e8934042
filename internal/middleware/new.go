package middleware

import (
	"gemini-chat/pkg/log"
)

// Middleware bundles the gin middlewares shared by both chat servers.
type Middleware struct {
	l log.Logger
}

func New(l log.Logger) Middleware {
	return Middleware{
		l: l,
	}
}
