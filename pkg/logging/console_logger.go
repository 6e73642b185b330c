package logging

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// ConsoleLogger provides colored console output.
type ConsoleLogger struct {
	mu      sync.Mutex
	output  io.Writer
	level   LogLevel
	verbose bool
	noColor bool
	fields  map[string]any
}

// NewConsoleLogger creates a console logger writing to stderr.
// When verbose is true, debug messages are emitted.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return NewConsoleLoggerWriter(os.Stderr, verbose, color.NoColor)
}

// NewConsoleLoggerWriter creates a console logger writing to w.
// It writes every level until SetLevel raises the minimum.
func NewConsoleLoggerWriter(
	w io.Writer, verbose, noColor bool,
) *ConsoleLogger {
	return &ConsoleLogger{
		output:  w,
		level:   LevelDebug,
		verbose: verbose,
		noColor: noColor,
		fields:  make(map[string]any),
	}
}

// SetLevel sets the minimum level written.
func (c *ConsoleLogger) SetLevel(level LogLevel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.level = level
}

// Level returns the minimum level written.
func (c *ConsoleLogger) Level() LogLevel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.level
}

func (c *ConsoleLogger) paint(attr color.Attribute) func(a ...any) string {
	p := color.New(attr)
	if c.noColor {
		p.DisableColor()
	} else {
		p.EnableColor()
	}
	return p.SprintFunc()
}

func (c *ConsoleLogger) log(
	level LogLevel, attr color.Attribute, msg string, fields ...Field,
) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if level < c.level {
		return
	}

	gray := c.paint(color.FgHiBlack)
	ts := time.Now().Format("15:04:05")

	merged := make(map[string]any, len(c.fields)+len(fields))
	for k, v := range c.fields {
		merged[k] = v
	}
	for _, f := range fields {
		merged[f.Key] = f.Value
	}

	var fieldStr string
	if len(merged) > 0 {
		keys := make([]string, 0, len(merged))
		for k := range merged {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%v", k, merged[k]))
		}
		fieldStr = " " + gray(fmt.Sprintf("{%s}", strings.Join(parts, ", ")))
	}

	fmt.Fprintf(
		c.output, "%s [%s] %s%s\n",
		gray(ts),
		c.paint(attr)(fmt.Sprintf("%-5s", level.String())),
		msg, fieldStr,
	)
}

// Info logs an informational message.
func (c *ConsoleLogger) Info(msg string, fields ...Field) {
	c.log(LevelInfo, color.FgBlue, msg, fields...)
}

// Warn logs a warning message.
func (c *ConsoleLogger) Warn(msg string, fields ...Field) {
	c.log(LevelWarn, color.FgYellow, msg, fields...)
}

// Error logs an error message.
func (c *ConsoleLogger) Error(msg string, fields ...Field) {
	c.log(LevelError, color.FgRed, msg, fields...)
}

// Debug logs a debug message only if verbose is enabled.
func (c *ConsoleLogger) Debug(msg string, fields ...Field) {
	if c.verbose {
		c.log(LevelDebug, color.FgHiBlack, msg, fields...)
	}
}

// WithFields returns a new Logger with additional default
// fields.
func (c *ConsoleLogger) WithFields(
	fields ...Field,
) Logger {
	newFields := make(map[string]any, len(c.fields)+len(fields))
	for k, v := range c.fields {
		newFields[k] = v
	}
	for _, f := range fields {
		newFields[f.Key] = f.Value
	}
	return &ConsoleLogger{
		output:  c.output,
		level:   c.level,
		verbose: c.verbose,
		noColor: c.noColor,
		fields:  newFields,
	}
}

// LogFailure prints the failure message, followed by the
// detail block when one is present.
func (c *ConsoleLogger) LogFailure(failure FailureLog) {
	fields := []Field{StringField("check", failure.Check)}
	if failure.Test != "" {
		fields = append(fields, StringField("test", failure.Test))
	}
	c.Error(failure.Message, fields...)

	if failure.Detail == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, line := range strings.Split(strings.TrimRight(failure.Detail, "\n"), "\n") {
		fmt.Fprintf(c.output, "    %s\n", line)
	}
}

// Close is a no-op for ConsoleLogger.
func (c *ConsoleLogger) Close() error {
	return nil
}
