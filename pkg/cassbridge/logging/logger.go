package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/term"

	"github.com/cassbridge/cassbridge/pkg/cassbridge/version"
)

// PrettyPrint is implemented by messages that render themselves on a terminal.
type PrettyPrint interface {
	PrettyPrint(writer io.Writer)
}

// Logger is the structured logger shared by the bridge, its metrics manager and config loader.
type Logger interface {
	Debug(args ...any)
	Debugf(format string, args ...any)
	Log(args ...any)
	Logf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
	ChangeLevel(level Level)
}

//nolint:gochecknoglobals // replaced in tests so Fatalf can be observed.
var exit = os.Exit

type logger struct {
	level      atomic.Int64
	mu         sync.Mutex
	out        io.Writer
	errOut     io.Writer
	isTerminal bool
}

type logEntry struct {
	Level             Level     `json:"level"`
	Time              time.Time `json:"time"`
	Message           any       `json:"message"`
	CassbridgeVersion string    `json:"cassbridgeVersion"`
}

// NewLogger writes JSON lines to stdout, ERROR and above to stderr. On a terminal entries are
// colored and messages implementing PrettyPrint render themselves.
func NewLogger(level Level) Logger {
	l := &logger{out: os.Stdout, errOut: os.Stderr, isTerminal: isTerminal(os.Stdout)}
	l.level.Store(int64(level))

	return l
}

// message picks what an entry carries: a lone argument as is, several as a list, or the formatted text.
func message(format string, args []any) any {
	switch {
	case format != "":
		return fmt.Sprintf(format, args...)
	case len(args) == 1:
		return args[0]
	default:
		return args
	}
}

func (l *logger) write(level Level, format string, args ...any) {
	if level < Level(l.level.Load()) {
		return
	}

	out := l.out
	if level >= ERROR {
		out = l.errOut
	}

	entry := logEntry{Level: level, Time: time.Now(), Message: message(format, args), CassbridgeVersion: version.Library}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.isTerminal {
		_ = json.NewEncoder(out).Encode(entry)

		return
	}

	fmt.Fprintf(out, "\u001B[38;5;%dm%s\u001B[0m [%s] ", level.color(), level.String()[0:4], entry.Time.Format(time.TimeOnly))

	if p, ok := entry.Message.(PrettyPrint); ok {
		p.PrettyPrint(out)

		return
	}

	fmt.Fprintf(out, "%v\n", entry.Message)
}

func (l *logger) Debug(args ...any)                 { l.write(DEBUG, "", args...) }
func (l *logger) Debugf(format string, args ...any) { l.write(DEBUG, format, args...) }
func (l *logger) Log(args ...any)                   { l.write(INFO, "", args...) }
func (l *logger) Logf(format string, args ...any)   { l.write(INFO, format, args...) }
func (l *logger) Infof(format string, args ...any)  { l.write(INFO, format, args...) }
func (l *logger) Warnf(format string, args ...any)  { l.write(WARN, format, args...) }
func (l *logger) Error(args ...any)                 { l.write(ERROR, "", args...) }
func (l *logger) Errorf(format string, args ...any) { l.write(ERROR, format, args...) }

// Fatalf logs at FATAL and exits with status 1.
func (l *logger) Fatalf(format string, args ...any) {
	l.write(FATAL, format, args...)

	exit(1)
}

func (l *logger) ChangeLevel(level Level) {
	l.level.Store(int64(level))
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
