package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLogger_NewJSONLogger_Stdout(t *testing.T) {
	logger, err := NewJSONLogger(LoggerConfig{
		Level: LevelInfo,
	})
	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.NoError(t, logger.Close())
}

func TestJSONLogger_NewJSONLogger_File(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "nested", "test.log")

	logger, err := NewJSONLogger(LoggerConfig{
		OutputPath: logPath,
		Level:      LevelDebug,
		Verbose:    true,
	})
	require.NoError(t, err)

	logger.Info("hello", LogField("key", "val"))
	logger.Debug("debug msg")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	lines := splitNonEmpty(string(data))
	require.Len(t, lines, 2)

	var entry LogEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "hello", entry.Message)
	assert.Equal(t, "val", entry.Fields["key"])
}

func TestJSONLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLoggerWriter(&buf, LevelWarn)
	logger.verbose = true

	logger.Debug("should not appear")
	logger.Info("should not appear")
	logger.Warn("should appear")
	logger.Error("should appear")

	assert.Len(t, splitNonEmpty(buf.String()), 2)
}

func TestJSONLogger_DebugRequiresVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLoggerWriter(&buf, LevelDebug)

	logger.Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestJSONLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLoggerWriter(&buf, LevelInfo)
	logger.fields["base"] = "value"

	child := logger.WithFields(LogField("child", "yes"))
	child.Info("child message")

	var entry LogEntry
	require.NoError(t, json.Unmarshal(
		[]byte(splitNonEmpty(buf.String())[0]), &entry,
	))
	assert.Equal(t, "value", entry.Fields["base"])
	assert.Equal(t, "yes", entry.Fields["child"])
	assert.NotContains(t, logger.fields, "child")
}

func TestJSONLogger_LogFailure_File(t *testing.T) {
	dir := t.TempDir()
	failPath := filepath.Join(dir, "failures.log")

	logger, err := NewJSONLogger(LoggerConfig{
		OutputPath:  filepath.Join(dir, "out.log"),
		FailurePath: failPath,
		Level:       LevelInfo,
	})
	require.NoError(t, err)

	logger.LogFailure(FailureLog{
		Test:     "TestEquals",
		Check:    "equals",
		Message:  "Expected 1 but got 2",
		Expected: "1",
		Actual:   "2",
	})
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(failPath)
	require.NoError(t, err)

	var failure FailureLog
	require.NoError(t, json.Unmarshal(
		[]byte(splitNonEmpty(string(data))[0]), &failure,
	))
	assert.Equal(t, "equals", failure.Check)
	assert.Equal(t, "Expected 1 but got 2", failure.Message)
	assert.NotEmpty(t, failure.Timestamp)
}

func TestJSONLogger_LogFailure_FallsBackToError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLoggerWriter(&buf, LevelInfo)

	logger.LogFailure(FailureLog{
		Check:   "assert",
		Message: "Assertion failed: x",
	})

	var entry LogEntry
	require.NoError(t, json.Unmarshal(
		[]byte(splitNonEmpty(buf.String())[0]), &entry,
	))
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "Assertion failed: x", entry.Message)
	assert.Equal(t, "assert", entry.Fields["check"])
}

func TestJSONLogger_ClosedLoggerNoop(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "closed.log")

	logger, err := NewJSONLogger(LoggerConfig{
		OutputPath: logPath,
		Level:      LevelInfo,
	})
	require.NoError(t, err)
	require.NoError(t, logger.Close())

	logger.Info("after close")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Empty(t, splitNonEmpty(string(data)))
}

func TestJSONLogger_MarshalError(t *testing.T) {
	orig := jsonMarshal
	jsonMarshal = func(any) ([]byte, error) {
		return nil, errors.New("marshal failed")
	}
	defer func() { jsonMarshal = orig }()

	var buf bytes.Buffer
	logger := NewJSONLoggerWriter(&buf, LevelInfo)
	logger.Info("dropped")

	assert.Empty(t, buf.String())
}

func splitNonEmpty(s string) []string {
	var result []string
	for _, line := range strings.Split(s, "\n") {
		if line != "" {
			result = append(result, line)
		}
	}
	return result
}
