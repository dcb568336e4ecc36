// Package console implements the interface's diagnostic log: a capped ring of
// tagged lines that mirrors the in-page console widget, fanned out to optional
// sinks for capture or terminal output.
package console

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"
)

type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeveritySuccess
	SeverityWarning
	SeverityError
	SeveritySystem
	SeverityCommand
)

func (s Severity) Label() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeveritySuccess:
		return "success"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeveritySystem:
		return "system"
	case SeverityCommand:
		return "command"
	}
	return "unknown"
}

// Line is one console entry. Timestamped is false for system notices, which the
// widget renders without a clock prefix.
type Line struct {
	Message     string    `json:"message"`
	Severity    Severity  `json:"severity"`
	Time        time.Time `json:"time"`
	Timestamped bool      `json:"timestamped"`
}

type Clock interface {
	Now() time.Time
}

type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

type Sink interface {
	Write(Line) error
}

type Config struct {
	MaxLines        int
	MinimumSeverity Severity
	Sinks           []Sink
}

const defaultMaxLines = 100

// Console keeps the most recent MaxLines entries and forwards each accepted
// line to every sink. A failing sink is reported on the fallback logger and
// does not block the others.
type Console struct {
	mu          sync.Mutex
	lines       []Line
	maxLines    int
	minSeverity Severity
	sinks       []Sink
	clock       Clock
	fallback    *log.Logger
}

func New(cfg Config) *Console {
	maxLines := cfg.MaxLines
	if maxLines <= 0 {
		maxLines = defaultMaxLines
	}
	return &Console{
		lines:       make([]Line, 0, maxLines),
		maxLines:    maxLines,
		minSeverity: cfg.MinimumSeverity,
		sinks:       cfg.Sinks,
		clock:       ClockFunc(time.Now),
		fallback:    log.New(os.Stderr, "[console] ", log.LstdFlags),
	}
}

// SetClock replaces the time source. Used by tests for deterministic lines.
func (c *Console) SetClock(clock Clock) {
	if clock == nil {
		return
	}
	c.mu.Lock()
	c.clock = clock
	c.mu.Unlock()
}

func (c *Console) Log(message string, severity Severity, timestamped bool) {
	if severity < c.minSeverity {
		return
	}
	line := Line{
		Message:     message,
		Severity:    severity,
		Timestamped: timestamped,
	}

	c.mu.Lock()
	line.Time = c.clock.Now()
	c.lines = append(c.lines, line)
	if over := len(c.lines) - c.maxLines; over > 0 {
		c.lines = append(c.lines[:0], c.lines[over:]...)
	}
	sinks := c.sinks
	c.mu.Unlock()

	for _, sink := range sinks {
		if err := sink.Write(line); err != nil {
			c.fallback.Printf("sink write failed: %v", err)
		}
	}
}

func (c *Console) Debug(format string, args ...any) {
	c.Log(fmt.Sprintf(format, args...), SeverityDebug, true)
}

func (c *Console) Info(format string, args ...any) {
	c.Log(fmt.Sprintf(format, args...), SeverityInfo, true)
}

func (c *Console) Success(format string, args ...any) {
	c.Log(fmt.Sprintf(format, args...), SeveritySuccess, true)
}

func (c *Console) Warning(format string, args ...any) {
	c.Log(fmt.Sprintf(format, args...), SeverityWarning, true)
}

func (c *Console) Error(format string, args ...any) {
	c.Log(fmt.Sprintf(format, args...), SeverityError, true)
}

// System lines carry no timestamp, matching the widget's banner style.
func (c *Console) System(format string, args ...any) {
	c.Log(fmt.Sprintf(format, args...), SeveritySystem, false)
}

func (c *Console) Command(command string) {
	c.Log("> "+command, SeverityCommand, true)
}

// Lines returns a copy of the retained entries, oldest first.
func (c *Console) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	copied := make([]Line, len(c.lines))
	copy(copied, c.lines)
	return copied
}

func (c *Console) Reset() {
	c.mu.Lock()
	c.lines = c.lines[:0]
	c.mu.Unlock()
}
