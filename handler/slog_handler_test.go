package handler

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/simplelog/core"
	"github.com/philipp01105/simplelog/formatter"
)

func newTestSlogLogger(template string) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := NewStream(StreamConfig{
		Writer:    &buf,
		Formatter: formatter.NewSimpleFormat(template),
	})
	return slog.New(NewSlogHandler(h)), &buf
}

func TestSlogHandler_EnabledForAllLevels(t *testing.T) {
	sh := NewSlogHandler(NewStream(StreamConfig{Writer: &bytes.Buffer{}}))

	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		assert.True(t, sh.Enabled(context.Background(), level), level.String())
	}
}

func TestSlogHandler_Handle(t *testing.T) {
	logger, buf := newTestSlogLogger("%priorityName% %message% key=%key% count=%count%")

	logger.Warn("test message", "key", "value", "count", 42)

	assert.Equal(t, "WARN test message key=value count=42\n", buf.String())
}

func TestSlogHandler_WithAttrs(t *testing.T) {
	logger, buf := newTestSlogLogger("%message% %request_id%")

	logger.With("request_id", "req-123").Info("test message")

	assert.Equal(t, "test message req-123\n", buf.String())
}

func TestSlogHandler_WithGroup(t *testing.T) {
	logger, buf := newTestSlogLogger("%message% %http.method% %http.req%")

	logger.WithGroup("http").Info("served",
		"method", "GET",
		slog.Group("req", "path", "/users", "status", 200),
	)

	assert.Equal(t, "served GET {path: /users, status: 200}\n", buf.String())
}

func TestSlogHandler_ErrorsGoToExtra(t *testing.T) {
	logger, buf := newTestSlogLogger("%priorityName%: %message%")

	logger.Error("Application error", "err", errors.New("custom message"))

	assert.Equal(t, "ERR: Application error [custom message]\n", buf.String())
}

type recordingHandler struct {
	events []core.Event
}

func (h *recordingHandler) Handle(event core.Event) error {
	h.events = append(h.events, event)
	return nil
}

func (h *recordingHandler) Close() error { return nil }

func TestSlogHandler_ZeroTime(t *testing.T) {
	var buf bytes.Buffer
	sh := NewSlogHandler(NewStream(StreamConfig{
		Writer:    &buf,
		Formatter: formatter.NewSimpleFormat("[%timestamp%] %message%"),
	}))

	require.NoError(t, sh.Handle(context.Background(), slog.NewRecord(time.Time{}, slog.LevelInfo, "no clock", 0)))

	ts := time.Date(2012, 8, 28, 18, 15, 0, 0, time.UTC)
	require.NoError(t, sh.Handle(context.Background(), slog.NewRecord(ts, slog.LevelInfo, "clock", 0)))

	assert.Equal(t, "[] no clock\n[2012-08-28T18:15:00+00:00] clock\n", buf.String())
}

func TestSlogHandler_EmptyKeys(t *testing.T) {
	rec := &recordingHandler{}
	logger := slog.New(NewSlogHandler(rec))

	logger.With("", "ctx-dropped").Info("msg",
		"", "dropped",
		slog.Group("", "inlined", 1),
		slog.Group("empty"),
		slog.Group("req", "", "inner-dropped", "path", "/"),
	)

	require.Len(t, rec.events, 1)
	ev := rec.events[0]

	assert.False(t, ev.Has(""))
	assert.False(t, ev.Has("empty"))

	inlined, ok := ev.Get("inlined")
	require.True(t, ok)
	assert.Equal(t, int64(1), inlined.Int64)

	req, ok := ev.Get("req")
	require.True(t, ok)
	require.Equal(t, core.MapKind, req.Kind)
	require.Len(t, req.Fields(), 1)
	assert.Equal(t, "path", req.Fields()[0].Key)
}

func TestSlogLevelToPriority(t *testing.T) {
	tests := []struct {
		level slog.Level
		want  core.Priority
	}{
		{slog.LevelDebug, core.Debug},
		{slog.LevelDebug + 2, core.Debug},
		{slog.LevelInfo, core.Info},
		{slog.LevelWarn, core.Warn},
		{slog.LevelError, core.Err},
		{slog.LevelError + 4, core.Err},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, slogLevelToPriority(tt.level), tt.level.String())
	}
}
