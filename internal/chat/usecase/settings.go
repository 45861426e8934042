package usecase

import (
	"context"

	"gemini-chat/internal/chat"
	"gemini-chat/internal/session"
)

// UpdateSettings applies the non-nil fields of input. The temperature is
// validated before anything changes, so a bad value leaves both settings as
// they were.
func (uc *implUseCase) UpdateSettings(ctx context.Context, sess *session.Session, input chat.UpdateSettingsInput) (session.Settings, error) {
	if input.SystemInstruction == nil && input.Temperature == nil {
		return sess.Settings(), chat.ErrNoSettingChange
	}

	if input.Temperature != nil {
		if err := sess.SetTemperature(*input.Temperature); err != nil {
			uc.l.Warnf(ctx, "internal.chat.usecase.UpdateSettings: %v", err)
			return sess.Settings(), err
		}
	}
	if input.SystemInstruction != nil {
		sess.SetInstruction(*input.SystemInstruction)
	}

	return sess.Settings(), nil
}

// Clear drops the session's turns and keeps its settings.
func (uc *implUseCase) Clear(ctx context.Context, sess *session.Session) {
	sess.Exchange(sess.Clear)
	uc.l.Debugf(ctx, "internal.chat.usecase.Clear: session cleared")
}

// Snapshot returns a copy of the session's turns and settings.
func (uc *implUseCase) Snapshot(sess *session.Session) chat.SessionView {
	return chat.SessionView{
		Turns:    sess.All(),
		Settings: sess.Settings(),
	}
}
