package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/simplelog/core"
	"github.com/philipp01105/simplelog/formatter"
	"github.com/philipp01105/simplelog/handler"
)

var fixedTime = time.Date(2012, 8, 28, 18, 15, 0, 0, time.UTC)

func newTestLogger(template string) (*Builder, *bytes.Buffer) {
	var buf bytes.Buffer
	h := handler.NewStream(handler.StreamConfig{
		Writer:    &buf,
		Formatter: formatter.NewSimpleFormat(template),
	})
	b := NewBuilder().
		WithHandler(h).
		WithClock(func() time.Time { return fixedTime })
	return b, &buf
}

func TestLogger_DefaultTemplate(t *testing.T) {
	b, buf := newTestLogger("")
	log := b.Build()

	log.Crit("Application error", errors.New("custom message"))

	assert.Equal(t, "2012-08-28T18:15:00+00:00 CRIT (2): Application error [custom message]\n", buf.String())
}

func TestLogger_AllPrioritiesAreEmitted(t *testing.T) {
	b, buf := newTestLogger("%priority%:%priorityName%")
	log := b.Build()

	log.Emerg("m")
	log.Alert("m")
	log.Crit("m")
	log.Error("m")
	log.Warn("m")
	log.Notice("m")
	log.Info("m")
	log.Debug("m")

	assert.Equal(t, []string{
		"0:EMERG", "1:ALERT", "2:CRIT", "3:ERR",
		"4:WARN", "5:NOTICE", "6:INFO", "7:DEBUG",
	}, strings.Fields(buf.String()))
}

func TestLogger_Fields(t *testing.T) {
	b, buf := newTestLogger("%message% user=%user% ok=%ok% took=%took%")
	log := b.Build()

	log.Info("login",
		String("user", "alice"),
		Bool("ok", true),
		Duration("took", 150*time.Millisecond),
	)

	assert.Equal(t, "login user=alice ok=1 took=150ms\n", buf.String())
}

func TestLogger_With(t *testing.T) {
	b, buf := newTestLogger("%app% %request_id% %message%")
	log := b.WithFields(String("app", "test")).Build()

	child := log.With(String("request_id", "123"))
	child.Info("test message")
	assert.Equal(t, "test 123 test message\n", buf.String())

	buf.Reset()
	log.Info("parent")
	assert.Equal(t, "test %request_id% parent\n", buf.String())
}

func TestLogger_BuilderIsolation(t *testing.T) {
	b, buf := newTestLogger("%a%%b%")
	first := b.WithFields(String("a", "1")).Build()
	b.WithFields(String("b", "2"))

	first.Info("m")
	assert.Equal(t, "1%b%\n", buf.String())
}

func TestLogger_ExtraValues(t *testing.T) {
	b, buf := newTestLogger("%message%")
	log := b.Build()

	log.Warn("retrying", 3, "backend down", nil)

	assert.Equal(t, "retrying [3, backend down, null]\n", buf.String())
}

func TestLogger_Logf(t *testing.T) {
	b, buf := newTestLogger("%priorityName% %message%")
	log := b.Build()

	log.Logf(core.Notice, "%d users online", 42)

	assert.Equal(t, "NOTICE 42 users online\n", buf.String())
}

func TestLogger_Caller(t *testing.T) {
	b, buf := newTestLogger("%file% %message%")
	log := b.WithCaller(true).Build()

	log.Info("here")

	assert.Equal(t, "logger_test.go here\n", buf.String())
}

func TestLogger_NoHandler(t *testing.T) {
	log := NewBuilder().Build()
	assert.NotPanics(t, func() { log.Info("nowhere") })
	assert.NoError(t, log.Close())
}

func TestDefaultLogger(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	b, buf := newTestLogger("%file% %priorityName% %message% %user%")
	SetDefault(b.WithCaller(true).Build())

	Notice("package level")
	With(String("user", "bob")).Info("child")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "logger_test.go NOTICE package level %user%", lines[0])
	assert.Equal(t, "logger_test.go INFO child bob", lines[1])
}

func TestParsePriority(t *testing.T) {
	assert.Equal(t, ErrPriority, ParsePriority("error"))
	assert.Equal(t, DebugPriority, ParsePriority("debug"))
}

func BenchmarkInfoNoFields(b *testing.B) {
	var buf bytes.Buffer
	h := handler.NewStream(handler.StreamConfig{Writer: &buf})
	log := NewBuilder().WithHandler(h).Build()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		log.Info("test message")
	}
}

func BenchmarkInfoWith2Fields(b *testing.B) {
	var buf bytes.Buffer
	h := handler.NewStream(handler.StreamConfig{Writer: &buf})
	log := NewBuilder().WithHandler(h).Build()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		log.Info("test message", String("key1", "value1"), String("key2", "value2"))
	}
}
