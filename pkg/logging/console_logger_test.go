package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestConsole(buf *bytes.Buffer, verbose bool) *ConsoleLogger {
	return NewConsoleLoggerWriter(buf, verbose, true)
}

func TestConsoleLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(l *ConsoleLogger)
		level string
		msg   string
	}{
		{"info", func(l *ConsoleLogger) { l.Info("hello world") }, "INFO", "hello world"},
		{"warn", func(l *ConsoleLogger) { l.Warn("warning message") }, "WARN", "warning message"},
		{"error", func(l *ConsoleLogger) { l.Error("error occurred") }, "ERROR", "error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(newTestConsole(&buf, false))

			output := buf.String()
			assert.Contains(t, output, tt.level)
			assert.Contains(t, output, tt.msg)
		})
	}
}

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestConsole(&buf, true)
	logger.SetLevel(LevelError)

	logger.Debug("hidden debug")
	logger.Info("hidden info")
	logger.Warn("hidden warn")
	logger.Error("shown error")

	output := buf.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, "shown error")
	assert.Equal(t, LevelError, logger.Level())

	child := logger.WithFields(LogField("k", "v")).(*ConsoleLogger)
	assert.Equal(t, LevelError, child.Level())
}

func TestConsoleLogger_NoColorHasNoEscapes(t *testing.T) {
	var buf bytes.Buffer
	newTestConsole(&buf, false).Error("plain")

	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestConsoleLogger_ColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	NewConsoleLoggerWriter(&buf, false, false).Error("colored")

	assert.Contains(t, buf.String(), "\x1b[")
}

func TestConsoleLogger_Debug_Verbose(t *testing.T) {
	var buf bytes.Buffer
	newTestConsole(&buf, true).Debug("debug info")
	assert.Contains(t, buf.String(), "debug info")
}

func TestConsoleLogger_Debug_NotVerbose(t *testing.T) {
	var buf bytes.Buffer
	newTestConsole(&buf, false).Debug("debug info")
	assert.Empty(t, buf.String())
}

func TestConsoleLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestConsole(&buf, false)

	child := logger.WithFields(LogField("env", "test"))

	cl, ok := child.(*ConsoleLogger)
	assert.True(t, ok)
	assert.Equal(t, "test", cl.fields["env"])
	assert.Empty(t, logger.fields)

	child.Info("msg", LogField("key", "val"))
	assert.Contains(t, buf.String(), "{env=test, key=val}")
}

func TestConsoleLogger_LogFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestConsole(&buf, false)

	logger.LogFailure(FailureLog{
		Test:    "TestX",
		Check:   "equals",
		Message: "Expected 1 but got 2",
		Detail:  "expected: 1\nactual:   2\n",
	})

	output := buf.String()
	assert.Contains(t, output, "ERROR")
	assert.Contains(t, output, "Expected 1 but got 2")
	assert.Contains(t, output, "check=equals")
	assert.Contains(t, output, "test=TestX")
	assert.Contains(t, output, "    expected: 1\n")
	assert.Contains(t, output, "    actual:   2\n")
}

func TestConsoleLogger_Close(t *testing.T) {
	logger := NewConsoleLogger(false)
	assert.NoError(t, logger.Close())
}
