package usecase_test

import (
	"context"
	"sync"

	"gemini-chat/internal/model"
	"gemini-chat/internal/modelclient"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockModelClient echoes the message back, or fails with failWith when set.
type mockModelClient struct {
	mu       sync.Mutex
	failWith *modelclient.ReplyError
	requests []modelclient.Request
}

func (m *mockModelClient) Generate(ctx context.Context, req modelclient.Request) (modelclient.Reply, []model.Turn) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.failWith != nil {
		return modelclient.Reply{Err: m.failWith}, model.CopyTurns(req.History)
	}
	text := "echo: " + req.Message
	updated := append(model.CopyTurns(req.History),
		model.Turn{Role: model.RoleUser, Text: req.Message},
		model.Turn{Role: model.RoleAssistant, Text: text},
	)
	return modelclient.Reply{Text: text}, updated
}

func (m *mockModelClient) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}
