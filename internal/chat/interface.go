package chat

import (
	"context"

	"gemini-chat/internal/session"
)

// UseCase drives one conversation turn at a time against a caller-owned Session.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Send rejects blank input, calls the model and records a successful exchange.
	Send(ctx context.Context, sess *session.Session, input SendInput) (SendOutput, error)
	UpdateSettings(ctx context.Context, sess *session.Session, input UpdateSettingsInput) (session.Settings, error)
	Clear(ctx context.Context, sess *session.Session)
	Snapshot(sess *session.Session) SessionView
}
