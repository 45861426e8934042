package usecase

import (
	"context"
	"strings"

	"gemini-chat/internal/chat"
	"gemini-chat/internal/modelclient"
	"gemini-chat/internal/session"
)

// Send forwards one user message to the model with the session's settings.
// Blank input returns chat.ErrEmptyMessage without calling the model. A failed
// call is not an error: the output carries the text to display and the
// session history is left as it was.
func (uc *implUseCase) Send(ctx context.Context, sess *session.Session, input chat.SendInput) (chat.SendOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return chat.SendOutput{}, chat.ErrEmptyMessage
	}

	var reply modelclient.Reply
	sess.Exchange(func() {
		settings := sess.Settings()

		r, updated := uc.mc.Generate(ctx, modelclient.Request{
			Instruction: settings.SystemInstruction,
			History:     sess.All(),
			Message:     input.Message,
			Temperature: settings.Temperature,
		})
		reply = r
		if r.OK() && len(updated) >= 2 {
			sess.Append(updated[len(updated)-2:]...)
		}
	})

	if !reply.OK() {
		uc.l.Infof(ctx, "internal.chat.usecase.Send: reply failed kind=%s", reply.Err.Kind)
	}

	return chat.SendOutput{
		UserMessage: input.Message,
		Reply:       reply,
		Display:     reply.Display(),
	}, nil
}
