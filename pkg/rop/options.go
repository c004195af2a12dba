package rop

import (
	"fmt"
	"sync/atomic"

	"github.com/neuronlabs/uni-logger"
)

type config struct {
	logger        unilogger.LeveledLogger
	historyLimit  int
	captureOrigin bool
}

func defaultConfig() *config {
	return &config{captureOrigin: true}
}

var current atomic.Pointer[config]

func init() {
	current.Store(defaultConfig())
}

func settings() *config {
	return current.Load()
}

// Option changes the package configuration.
type Option func(*config) error

// WithLogger sets the logger used to report escalations, recovered panics
// and misuse. A nil logger disables logging.
func WithLogger(l unilogger.LeveledLogger) Option {
	return func(c *config) error {
		c.logger = l
		return nil
	}
}

// WithHistoryLimit bounds the number of frames kept per escalated error.
// The capture frame is always kept; older escalation frames are dropped
// first. Zero means unlimited.
func WithHistoryLimit(n int) Option {
	return func(c *config) error {
		if n < 0 {
			return fmt.Errorf("%w: history limit must not be negative, got %d", ErrInvalidArgument, n)
		}
		c.historyLimit = n
		return nil
	}
}

// WithOriginCapture enables or disables recording the frame that constructs
// a partial or failed result.
func WithOriginCapture(enabled bool) Option {
	return func(c *config) error {
		c.captureOrigin = enabled
		return nil
	}
}

// Configure applies the options on top of the current configuration. Nothing
// is changed if any option fails.
func Configure(options ...Option) error {
	c := *settings()
	for _, option := range options {
		if err := option(&c); err != nil {
			return err
		}
	}
	current.Store(&c)
	return nil
}

// SetLogger is a shortcut for Configure(WithLogger(l)).
func SetLogger(l unilogger.LeveledLogger) {
	_ = Configure(WithLogger(l))
}

// ResetConfig restores the default configuration.
func ResetConfig() {
	current.Store(defaultConfig())
}

// packageLogger forwards to the configured logger and drops records when
// none is set.
type packageLogger struct {
	l unilogger.LeveledLogger
}

func logger() packageLogger {
	return packageLogger{l: settings().logger}
}

func (p packageLogger) Debugf(format string, args ...interface{}) {
	if p.l != nil {
		p.l.Debugf(format, args...)
	}
}

func (p packageLogger) Warningf(format string, args ...interface{}) {
	if p.l != nil {
		p.l.Warningf(format, args...)
	}
}

func (p packageLogger) Errorf(format string, args ...interface{}) {
	if p.l != nil {
		p.l.Errorf(format, args...)
	}
}
