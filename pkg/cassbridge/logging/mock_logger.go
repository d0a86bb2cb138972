package logging

import (
	"fmt"
	"io"
	"sync"
)

// MockLogger writes plain messages to a single writer. Tests use it to assert on log output.
// Fatalf logs without exiting.
type MockLogger struct {
	mu    sync.Mutex
	level Level
	out   io.Writer
}

func NewMockLogger(level Level, out io.Writer) Logger {
	return &MockLogger{
		level: level,
		out:   out,
	}
}

func (m *MockLogger) logf(level Level, format string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if level < m.level {
		return
	}

	fmt.Fprintf(m.out, "%v\n", message(format, args))
}

func (m *MockLogger) Debug(args ...any)                 { m.logf(DEBUG, "", args...) }
func (m *MockLogger) Debugf(format string, args ...any) { m.logf(DEBUG, format, args...) }
func (m *MockLogger) Log(args ...any)                   { m.logf(INFO, "", args...) }
func (m *MockLogger) Logf(format string, args ...any)   { m.logf(INFO, format, args...) }
func (m *MockLogger) Infof(format string, args ...any)  { m.logf(INFO, format, args...) }
func (m *MockLogger) Warnf(format string, args ...any)  { m.logf(WARN, format, args...) }
func (m *MockLogger) Error(args ...any)                 { m.logf(ERROR, "", args...) }
func (m *MockLogger) Errorf(format string, args ...any) { m.logf(ERROR, format, args...) }
func (m *MockLogger) Fatalf(format string, args ...any) { m.logf(FATAL, format, args...) }

func (m *MockLogger) ChangeLevel(level Level) {
	m.mu.Lock()
	m.level = level
	m.mu.Unlock()
}
