package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// jsonMarshal is a variable for dependency injection in tests.
var jsonMarshal = json.Marshal

// LogEntry represents a single JSON log entry.
type LogEntry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// LoggerConfig configures the JSONLogger.
type LoggerConfig struct {
	// OutputPath is the log file. Empty means stdout.
	OutputPath string
	// FailurePath receives one FailureLog per line. Empty
	// disables the failure log.
	FailurePath string
	Level       LogLevel
	Verbose     bool
	Fields      map[string]any
}

// JSONLogger implements Logger with JSON Lines output.
type JSONLogger struct {
	mu         sync.Mutex
	output     io.Writer
	failureLog io.Writer
	level      LogLevel
	fields     map[string]any
	verbose    bool
	closed     bool
}

// NewJSONLogger creates a new JSON logger. If OutputPath is
// empty, logs are written to stdout.
func NewJSONLogger(config LoggerConfig) (*JSONLogger, error) {
	logger := &JSONLogger{
		level:   config.Level,
		verbose: config.Verbose,
		fields:  config.Fields,
		output:  os.Stdout,
	}

	if logger.fields == nil {
		logger.fields = make(map[string]any)
	}

	if config.OutputPath != "" {
		file, err := openAppend(config.OutputPath)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		logger.output = file
	}

	if config.FailurePath != "" {
		file, err := openAppend(config.FailurePath)
		if err != nil {
			logger.Close()
			return nil, fmt.Errorf("open failure log: %w", err)
		}
		logger.failureLog = file
	}

	return logger, nil
}

// NewJSONLoggerWriter creates a JSON logger that writes entries
// to w. Failures are written to w as regular error entries.
func NewJSONLoggerWriter(w io.Writer, level LogLevel) *JSONLogger {
	return &JSONLogger{
		output: w,
		level:  level,
		fields: make(map[string]any),
	}
}

func openAppend(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(
		path,
		os.O_CREATE|os.O_WRONLY|os.O_APPEND,
		0644,
	)
}

func (l *JSONLogger) log(
	level LogLevel, msg string, fields ...Field,
) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().Format(time.RFC3339Nano),
		Level:     level.String(),
		Message:   msg,
		Fields:    make(map[string]any, len(l.fields)+len(fields)),
	}

	for k, v := range l.fields {
		entry.Fields[k] = v
	}
	for _, f := range fields {
		entry.Fields[f.Key] = f.Value
	}

	data, err := jsonMarshal(entry)
	if err != nil {
		return
	}

	fmt.Fprintln(l.output, string(data))
}

// Info logs an informational message.
func (l *JSONLogger) Info(msg string, fields ...Field) {
	l.log(LevelInfo, msg, fields...)
}

// Warn logs a warning message.
func (l *JSONLogger) Warn(msg string, fields ...Field) {
	l.log(LevelWarn, msg, fields...)
}

// Error logs an error message.
func (l *JSONLogger) Error(msg string, fields ...Field) {
	l.log(LevelError, msg, fields...)
}

// Debug logs a debug message only if verbose is enabled.
func (l *JSONLogger) Debug(msg string, fields ...Field) {
	if l.verbose {
		l.log(LevelDebug, msg, fields...)
	}
}

// WithFields returns a new Logger with additional default
// fields. The child shares the parent's writers.
func (l *JSONLogger) WithFields(fields ...Field) Logger {
	newFields := make(map[string]any, len(l.fields)+len(fields))
	for k, v := range l.fields {
		newFields[k] = v
	}
	for _, f := range fields {
		newFields[f.Key] = f.Value
	}

	return &JSONLogger{
		output:     l.output,
		failureLog: l.failureLog,
		level:      l.level,
		verbose:    l.verbose,
		fields:     newFields,
	}
}

// LogFailure writes the failure to the dedicated failure log,
// or as an error entry when no failure log is configured.
func (l *JSONLogger) LogFailure(failure FailureLog) {
	if l.failureLog == nil {
		l.Error(failure.Message,
			StringField("check", failure.Check),
			StringField("test", failure.Test),
			StringField("expected", failure.Expected),
			StringField("actual", failure.Actual),
		)
		return
	}

	if failure.Timestamp == "" {
		failure.Timestamp = time.Now().Format(time.RFC3339Nano)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}

	data, err := jsonMarshal(failure)
	if err != nil {
		return
	}

	fmt.Fprintln(l.failureLog, string(data))
}

// Close flushes and closes all underlying files.
func (l *JSONLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true

	var firstErr error
	for _, w := range []io.Writer{l.output, l.failureLog} {
		if w == os.Stdout || w == os.Stderr {
			continue
		}
		if closer, ok := w.(io.Closer); ok {
			if err := closer.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
