package ws_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gemini-chat/internal/chat/delivery/ws"
	"gemini-chat/internal/chat/usecase"
	"gemini-chat/internal/model"
	"gemini-chat/internal/modelclient"
	"gemini-chat/internal/session"
	pkgLog "gemini-chat/pkg/log"
)

type mockModelClient struct {
	mu       sync.Mutex
	failWith *modelclient.ReplyError
	requests []modelclient.Request
}

func (m *mockModelClient) Generate(ctx context.Context, req modelclient.Request) (modelclient.Reply, []model.Turn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)

	if m.failWith != nil {
		return modelclient.Reply{Err: m.failWith}, model.CopyTurns(req.History)
	}
	reply := "re: " + req.Message
	return modelclient.Reply{Text: reply}, append(model.CopyTurns(req.History),
		model.Turn{Role: model.RoleUser, Text: req.Message},
		model.Turn{Role: model.RoleAssistant, Text: reply},
	)
}

func (m *mockModelClient) snapshot() []modelclient.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]modelclient.Request(nil), m.requests...)
}

type state struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
	Messages  []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	Settings struct {
		SystemInstruction string  `json:"system_instruction"`
		Temperature       float64 `json:"temperature"`
	} `json:"settings"`
	Busy   bool `json:"busy"`
	Notice *struct {
		Level string `json:"level"`
		Text  string `json:"text"`
	} `json:"notice"`
}

type fixture struct {
	srv *httptest.Server
	mc  *mockModelClient
	h   interface {
		Connections() int
		CloseAll()
	}
}

func setup(t *testing.T, mc *mockModelClient, cap int) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := pkgLog.NewNop()
	h, err := ws.New(l, usecase.New(mc, l), ws.Config{
		Defaults: session.Settings{SystemInstruction: "default", Temperature: 0.7},
		Cap:      cap,
	})
	require.NoError(t, err)

	r := gin.New()
	ws.RegisterRoutes(r, h)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &fixture{srv: srv, mc: mc, h: h}
}

func (f *fixture) dial(t *testing.T) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(f.srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func read(t *testing.T, conn *websocket.Conn) state {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var s state
	require.NoError(t, conn.ReadJSON(&s))
	require.Equal(t, "state", s.Type)
	return s
}

func write(t *testing.T, conn *websocket.Conn, frame map[string]any) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(frame))
}

func TestServe_InitialState(t *testing.T) {
	f := setup(t, &mockModelClient{}, 0)
	conn := f.dial(t)

	s := read(t, conn)
	assert.NotEmpty(t, s.SessionID)
	assert.Empty(t, s.Messages)
	assert.False(t, s.Busy)
	assert.Equal(t, "default", s.Settings.SystemInstruction)
	assert.Equal(t, 0.7, s.Settings.Temperature)
	assert.Equal(t, 1, f.h.Connections())
}

func TestServe_Send(t *testing.T) {
	f := setup(t, &mockModelClient{}, 0)
	conn := f.dial(t)
	read(t, conn)

	write(t, conn, map[string]any{"type": "send", "message": "Hello"})

	busy := read(t, conn)
	assert.True(t, busy.Busy)
	require.Len(t, busy.Messages, 1)
	assert.Equal(t, "user", busy.Messages[0].Role)
	assert.Equal(t, "Hello", busy.Messages[0].Content)

	done := read(t, conn)
	assert.False(t, done.Busy)
	require.Len(t, done.Messages, 2)
	assert.Equal(t, "assistant", done.Messages[1].Role)
	assert.Equal(t, "re: Hello", done.Messages[1].Content)

	reqs := f.mc.snapshot()
	require.Len(t, reqs, 1)
	assert.Equal(t, "default", reqs[0].Instruction)
	assert.Equal(t, 0.7, reqs[0].Temperature)
}

func TestServe_BlankMessageWarns(t *testing.T) {
	f := setup(t, &mockModelClient{}, 0)
	conn := f.dial(t)
	read(t, conn)

	write(t, conn, map[string]any{"type": "send", "message": "   "})

	s := read(t, conn)
	require.NotNil(t, s.Notice)
	assert.Equal(t, ws.LevelWarning, s.Notice.Level)
	assert.Empty(t, s.Messages)
	assert.Empty(t, f.mc.snapshot())
}

func TestServe_FailedReplyIsShownButNotSent(t *testing.T) {
	mc := &mockModelClient{failWith: &modelclient.ReplyError{Kind: modelclient.KindTransport, Message: "connection refused"}}
	f := setup(t, mc, 0)
	conn := f.dial(t)
	read(t, conn)

	write(t, conn, map[string]any{"type": "send", "message": "first"})
	read(t, conn)
	s := read(t, conn)
	require.Len(t, s.Messages, 2)
	assert.Equal(t, "An error occurred: connection refused", s.Messages[1].Content)

	mc.mu.Lock()
	mc.failWith = nil
	mc.mu.Unlock()

	write(t, conn, map[string]any{"type": "send", "message": "second"})
	read(t, conn)
	s = read(t, conn)
	assert.Len(t, s.Messages, 4)

	reqs := mc.snapshot()
	require.Len(t, reqs, 2)
	assert.Empty(t, reqs[1].History)
}

func TestServe_Settings(t *testing.T) {
	f := setup(t, &mockModelClient{}, 0)
	conn := f.dial(t)
	read(t, conn)

	write(t, conn, map[string]any{"type": "settings", "system_instruction": "Be terse.", "temperature": 0.2})
	s := read(t, conn)
	require.NotNil(t, s.Notice)
	assert.Equal(t, ws.LevelSuccess, s.Notice.Level)
	assert.Equal(t, "Settings saved!", s.Notice.Text)
	assert.Equal(t, "Be terse.", s.Settings.SystemInstruction)
	assert.Equal(t, 0.2, s.Settings.Temperature)

	write(t, conn, map[string]any{"type": "settings", "temperature": 3})
	s = read(t, conn)
	require.NotNil(t, s.Notice)
	assert.Equal(t, ws.LevelWarning, s.Notice.Level)
	assert.Equal(t, 0.2, s.Settings.Temperature)

	write(t, conn, map[string]any{"type": "send", "message": "Hello"})
	read(t, conn)
	read(t, conn)

	reqs := f.mc.snapshot()
	require.Len(t, reqs, 1)
	assert.Equal(t, "Be terse.", reqs[0].Instruction)
	assert.Equal(t, 0.2, reqs[0].Temperature)
}

func TestServe_ClearKeepsSettings(t *testing.T) {
	f := setup(t, &mockModelClient{}, 0)
	conn := f.dial(t)
	read(t, conn)

	write(t, conn, map[string]any{"type": "settings", "temperature": 0.1})
	read(t, conn)
	write(t, conn, map[string]any{"type": "send", "message": "Hello"})
	read(t, conn)
	read(t, conn)

	write(t, conn, map[string]any{"type": "clear"})
	s := read(t, conn)
	assert.Empty(t, s.Messages)
	assert.Equal(t, 0.1, s.Settings.Temperature)

	write(t, conn, map[string]any{"type": "send", "message": "again"})
	read(t, conn)
	read(t, conn)

	reqs := f.mc.snapshot()
	require.Len(t, reqs, 2)
	assert.Empty(t, reqs[1].History)
}

func TestServe_RetentionCap(t *testing.T) {
	f := setup(t, &mockModelClient{}, 4)
	conn := f.dial(t)
	read(t, conn)

	var s state
	for _, msg := range []string{"a", "b", "c"} {
		write(t, conn, map[string]any{"type": "send", "message": msg})
		read(t, conn)
		s = read(t, conn)
	}

	require.Len(t, s.Messages, 4)
	assert.Equal(t, "b", s.Messages[0].Content)
	assert.Len(t, f.mc.snapshot()[2].History, 4)
}

func TestServe_UnknownAction(t *testing.T) {
	f := setup(t, &mockModelClient{}, 0)
	conn := f.dial(t)
	read(t, conn)

	write(t, conn, map[string]any{"type": "dance"})
	s := read(t, conn)
	require.NotNil(t, s.Notice)
	assert.Equal(t, ws.LevelWarning, s.Notice.Level)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	s = read(t, conn)
	require.NotNil(t, s.Notice)
}

func TestServe_ConnectionsAreIsolated(t *testing.T) {
	f := setup(t, &mockModelClient{}, 0)
	a, b := f.dial(t), f.dial(t)
	sa, sb := read(t, a), read(t, b)
	assert.NotEqual(t, sa.SessionID, sb.SessionID)

	write(t, a, map[string]any{"type": "send", "message": "only a"})
	read(t, a)
	read(t, a)

	write(t, b, map[string]any{"type": "clear"})
	s := read(t, b)
	assert.Empty(t, s.Messages)
	assert.Equal(t, 2, f.h.Connections())
}

func TestServe_OversizedFrameClosesSocket(t *testing.T) {
	f := setup(t, &mockModelClient{}, 0)
	conn := f.dial(t)
	read(t, conn)

	write(t, conn, map[string]any{"type": "send", "message": strings.Repeat("a", ws.MaxFrameSize)})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseMessageTooBig), "got %v", err)
	assert.Empty(t, f.mc.snapshot())
	assert.Eventually(t, func() bool { return f.h.Connections() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestServe_DisconnectAndCloseAll(t *testing.T) {
	f := setup(t, &mockModelClient{}, 0)

	a := f.dial(t)
	read(t, a)
	b := f.dial(t)
	read(t, b)
	require.Equal(t, 2, f.h.Connections())

	require.NoError(t, a.Close())
	assert.Eventually(t, func() bool { return f.h.Connections() == 1 }, 2*time.Second, 10*time.Millisecond)

	f.h.CloseAll()
	require.NoError(t, b.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := b.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
	assert.Eventually(t, func() bool { return f.h.Connections() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestIndex(t *testing.T) {
	f := setup(t, &mockModelClient{}, 0)

	resp, err := http.Get(f.srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	body := string(raw)
	assert.Contains(t, body, "Version 1.0.0")
	assert.Contains(t, body, "Save Settings")
	assert.Contains(t, body, "Clear Conversation")
	assert.Contains(t, body, `step="0.1"`)
}
