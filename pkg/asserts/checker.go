package asserts

import (
	"fmt"

	"digital.vasic.asserts/pkg/config"
	"digital.vasic.asserts/pkg/kind"
	"digital.vasic.asserts/pkg/logging"
)

// TestingT is the subset of testing.TB a Checker needs.
type TestingT interface {
	Helper()
	Fatal(args ...any)
}

// Checker runs the primitives on behalf of a test. A failure is
// logged and then ends the test through Fatal.
type Checker struct {
	t      TestingT
	logger logging.Logger
	detail bool
}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets the logger that records failures.
func WithLogger(l logging.Logger) Option {
	return func(c *Checker) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDetail controls whether failures carry operand dumps.
func WithDetail(on bool) Option {
	return func(c *Checker) {
		c.detail = on
	}
}

// New creates a Checker for t. By default failures are not
// logged and carry detail.
func New(t TestingT, opts ...Option) *Checker {
	c := &Checker{
		t:      t,
		logger: logging.NullLogger{},
		detail: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	if name := testName(t); name != "" {
		c.logger = c.logger.WithFields(logging.StringField("test", name))
	}
	return c
}

// NewFromConfig creates a Checker whose logger and detail
// setting come from cfg. The caller owns the logger and should
// Close the Checker when done.
func NewFromConfig(t TestingT, cfg *config.Config) (*Checker, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		return nil, fmt.Errorf("build checker logger: %w", err)
	}
	return New(t, WithLogger(logger), WithDetail(cfg.Detail)), nil
}

// Assert is the checked form of Assert.
func (c *Checker) Assert(condition bool, message ...string) bool {
	c.t.Helper()
	return c.check(CheckAssert, func() { Assert(condition, message...) })
}

// Equals is the checked form of Equals.
func (c *Checker) Equals(actual, expected any) bool {
	c.t.Helper()
	return c.check(CheckEquals, func() { Equals(actual, expected) })
}

// InstanceOf is the checked form of InstanceOf.
func (c *Checker) InstanceOf(value any, k kind.Kind) bool {
	c.t.Helper()
	return c.check(CheckInstanceOf, func() { InstanceOf(value, k) })
}

// Throws is the checked form of Throws.
func (c *Checker) Throws(fn func() error, expected kind.Kind) bool {
	c.t.Helper()
	return c.check(CheckThrows, func() { Throws(fn, expected) })
}

// Close releases the logger.
func (c *Checker) Close() error {
	return c.logger.Close()
}

func (c *Checker) check(name Check, fn func()) bool {
	c.t.Helper()

	err := Capture(fn)
	if err == nil {
		c.logger.Debug("assertion passed",
			logging.StringField("check", string(name)))
		return true
	}

	c.fail(err.(*AssertionError))
	return false
}

func (c *Checker) fail(ae *AssertionError) {
	c.t.Helper()

	failure := logging.FailureLog{
		Test:     testName(c.t),
		Check:    string(ae.Check),
		Message:  ae.Message,
		Expected: operandString(ae.Expected),
		Actual:   operandString(ae.Actual),
	}
	if c.detail {
		failure.Detail = ae.Detail()
	}
	c.logger.LogFailure(failure)

	if failure.Detail != "" {
		c.t.Fatal(ae.Message + "\n" + failure.Detail)
		return
	}
	c.t.Fatal(ae.Message)
}

func operandString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case kind.Kind:
		return x.String()
	case error:
		return fmt.Sprintf("%T: %v", x, x)
	default:
		return fmt.Sprintf("%#v", x)
	}
}

func testName(t TestingT) string {
	if n, ok := t.(interface{ Name() string }); ok {
		return n.Name()
	}
	return ""
}
