package console

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestRingTrimsToMaxLines(t *testing.T) {
	c := New(Config{MaxLines: 100})

	for i := 0; i < 150; i++ {
		c.Info("line %d", i)
	}

	lines := c.Lines()
	if len(lines) != 100 {
		t.Fatalf("expected 100 retained lines, got %d", len(lines))
	}
	if lines[0].Message != "line 50" {
		t.Fatalf("expected oldest retained line to be line 50, got %q", lines[0].Message)
	}
	if lines[99].Message != "line 149" {
		t.Fatalf("expected newest line to be line 149, got %q", lines[99].Message)
	}
}

func TestDefaultMaxLines(t *testing.T) {
	c := New(Config{})
	for i := 0; i < 120; i++ {
		c.Info("line %d", i)
	}
	if got := len(c.Lines()); got != defaultMaxLines {
		t.Fatalf("expected %d lines, got %d", defaultMaxLines, got)
	}
}

func TestSeverityLabels(t *testing.T) {
	cases := map[Severity]string{
		SeverityDebug:   "debug",
		SeverityInfo:    "info",
		SeveritySuccess: "success",
		SeverityWarning: "warning",
		SeverityError:   "error",
		SeveritySystem:  "system",
		SeverityCommand: "command",
	}
	for severity, want := range cases {
		if got := severity.Label(); got != want {
			t.Fatalf("severity %d: expected label %q, got %q", severity, want, got)
		}
	}
}

func TestMinimumSeverityFilters(t *testing.T) {
	c := New(Config{MinimumSeverity: SeverityInfo})

	c.Debug("hidden")
	c.Info("shown")

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Message != "shown" {
		t.Fatalf("expected the info line, got %q", lines[0].Message)
	}
}

func TestSystemLinesAreNotTimestamped(t *testing.T) {
	c := New(Config{})

	c.System("booting")
	c.Info("running")

	lines := c.Lines()
	if lines[0].Timestamped {
		t.Fatal("system line should not be timestamped")
	}
	if !lines[1].Timestamped {
		t.Fatal("info line should be timestamped")
	}
}

func TestCommandPrefix(t *testing.T) {
	c := New(Config{})
	c.Command("drop junk")

	lines := c.Lines()
	if lines[0].Message != "> drop junk" {
		t.Fatalf("expected command echo, got %q", lines[0].Message)
	}
	if lines[0].Severity != SeverityCommand {
		t.Fatalf("expected command severity, got %v", lines[0].Severity)
	}
}

func TestSinksReceiveLines(t *testing.T) {
	sink := NewMemorySink()
	c := New(Config{Sinks: []Sink{sink}})

	c.Success("done")

	lines := sink.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected sink to receive 1 line, got %d", len(lines))
	}
	if lines[0].Message != "done" {
		t.Fatalf("expected message %q, got %q", "done", lines[0].Message)
	}
}

func TestWriterSinkFormat(t *testing.T) {
	var sb strings.Builder
	sink := NewWriterSink(&sb)

	c := New(Config{Sinks: []Sink{sink}})
	c.SetClock(ClockFunc(func() time.Time {
		return time.Date(2026, time.March, 1, 9, 30, 15, 0, time.UTC)
	}))

	c.Warning("low on space")
	c.System("ready")

	want := "09:30:15 [warning] low on space\n[system] ready\n"
	if sb.String() != want {
		t.Fatalf("unexpected sink output:\n%s", sb.String())
	}
}

func TestReset(t *testing.T) {
	c := New(Config{})
	c.Info("a")
	c.Reset()
	if got := len(c.Lines()); got != 0 {
		t.Fatalf("expected empty console after reset, got %d lines", got)
	}
}

type failingSink struct{}

func (failingSink) Write(Line) error {
	return fmt.Errorf("disk full")
}

func TestFailingSinkDoesNotBlockOthers(t *testing.T) {
	good := NewMemorySink()
	c := New(Config{Sinks: []Sink{failingSink{}, good}})

	c.Info("still delivered")

	if len(good.Lines()) != 1 {
		t.Fatalf("expected healthy sink to receive the line")
	}
}
