package usecase

import (
	"context"

	"gemini-chat/internal/model"
	"gemini-chat/internal/modelclient"
	"gemini-chat/pkg/log"
)

// ModelClient is the generate contract the chat use case depends on.
type ModelClient interface {
	Generate(ctx context.Context, req modelclient.Request) (modelclient.Reply, []model.Turn)
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	mc ModelClient
	l  log.Logger
}

// New creates a new chat UseCase implementation.
func New(mc ModelClient, l log.Logger) *implUseCase {
	return &implUseCase{
		mc: mc,
		l:  l,
	}
}
