package middleware_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gemini-chat/internal/middleware"
	"gemini-chat/pkg/log"
)

// recordingLogger keeps formatted lines per level.
type recordingLogger struct {
	mu    sync.Mutex
	lines map[string][]string
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{lines: map[string][]string{}}
}

func (r *recordingLogger) add(level, template string, arg ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines[level] = append(r.lines[level], fmt.Sprintf(template, arg...))
}

func (r *recordingLogger) Debug(ctx context.Context, arg ...any) {}
func (r *recordingLogger) Debugf(ctx context.Context, template string, arg ...any) {
	r.add("debug", template, arg...)
}
func (r *recordingLogger) Info(ctx context.Context, arg ...any)                    {}
func (r *recordingLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (r *recordingLogger) Warn(ctx context.Context, arg ...any)                    {}
func (r *recordingLogger) Warnf(ctx context.Context, template string, arg ...any) {
	r.add("warn", template, arg...)
}
func (r *recordingLogger) Error(ctx context.Context, arg ...any) {}
func (r *recordingLogger) Errorf(ctx context.Context, template string, arg ...any) {
	r.add("error", template, arg...)
}
func (r *recordingLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (r *recordingLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (r *recordingLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (r *recordingLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (r *recordingLogger) Panic(ctx context.Context, arg ...any)                    {}
func (r *recordingLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(log.NewNop())

	var seen string
	r := gin.New()
	r.Use(mw.RequestID())
	r.GET("/", func(c *gin.Context) {
		seen = log.RequestID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	t.Run("Generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
	})
}

func TestAccessLog(t *testing.T) {
	gin.SetMode(gin.TestMode)
	l := newRecordingLogger()
	mw := middleware.New(l)

	r := gin.New()
	r.Use(mw.AccessLog())
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, p := range []string{"/ok", "/bad", "/boom"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	require.Len(t, l.lines["debug"], 1)
	require.Len(t, l.lines["warn"], 1)
	require.Len(t, l.lines["error"], 1)
	assert.Contains(t, l.lines["debug"][0], "GET /ok 200")
	assert.Contains(t, l.lines["warn"][0], "GET /bad 400")
	assert.Contains(t, l.lines["error"][0], "GET /boom 500")
}
