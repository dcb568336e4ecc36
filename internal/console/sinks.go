package console

import (
	"fmt"
	"io"
	"sync"
)

// WriterSink renders lines as plain text, one per line, to an io.Writer.
type WriterSink struct {
	mu  sync.Mutex
	out io.Writer
}

func NewWriterSink(out io.Writer) *WriterSink {
	return &WriterSink{out: out}
}

func (s *WriterSink) Write(line Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if line.Timestamped {
		_, err := fmt.Fprintf(s.out, "%s [%s] %s\n", line.Time.Format("15:04:05"), line.Severity.Label(), line.Message)
		return err
	}
	_, err := fmt.Fprintf(s.out, "[%s] %s\n", line.Severity.Label(), line.Message)
	return err
}

// MemorySink retains every line it receives, for assertions in tests.
type MemorySink struct {
	mu    sync.RWMutex
	lines []Line
}

func NewMemorySink() *MemorySink {
	return &MemorySink{lines: make([]Line, 0)}
}

func (s *MemorySink) Write(line Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, line)
	return nil
}

func (s *MemorySink) Lines() []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()
	copied := make([]Line, len(s.lines))
	copy(copied, s.lines)
	return copied
}

func (s *MemorySink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = s.lines[:0]
}
