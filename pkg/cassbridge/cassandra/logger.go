package cassandra

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gocql/gocql"

	"github.com/cassbridge/cassbridge/pkg/cassbridge/codec"
)

type QueryLog struct {
	Operation string `json:"operation"`
	Query     string `json:"query"`
	Duration  int64  `json:"duration"`
	Keyspace  string `json:"keyspace,omitempty"`
}

func (ql *QueryLog) PrettyPrint(writer io.Writer) {
	fmt.Fprintf(writer, "\u001B[38;5;8m%-32s \u001B[38;5;206m%-6s\u001B[0m %8d\u001B[38;5;8mµs\u001B[0m %-7s %s\n",
		clean(ql.Query), "CASS", ql.Duration, ql.Operation, clean(ql.Keyspace))
}

var whitespace = regexp.MustCompile(`\s+`)

// clean collapses runs of whitespace into one space and trims the ends.
func clean(query string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(query, " "))
}

// LogLevel is the threshold for diagnostics emitted by the driver.
type LogLevel int

const (
	LogDisabled LogLevel = iota
	LogCritical
	LogError
	LogWarn
	LogInfo
	LogDebug
	LogTrace
)

func (l LogLevel) String() string {
	switch l {
	case LogDisabled:
		return "disabled"
	case LogCritical:
		return "critical"
	case LogError:
		return "error"
	case LogWarn:
		return "warn"
	case LogInfo:
		return "info"
	case LogDebug:
		return "debug"
	case LogTrace:
		return "trace"
	default:
		return "unknown"
	}
}

// driverLogger receives the driver's messages and forwards those at or above the threshold.
// The driver does not attach levels, so they are inferred from the wording.
type driverLogger struct {
	level  atomic.Int64
	mu     sync.RWMutex
	logger Logger
}

//nolint:gochecknoglobals // the driver logs through a single package-level logger.
var (
	driverLog        = newDriverLogger()
	driverLoggerOnce sync.Once
	driverRouteOnce  sync.Once
)

func newDriverLogger() *driverLogger {
	d := &driverLogger{}
	d.level.Store(int64(LogError))

	return d
}

// SetLogLevel sets the threshold for driver diagnostics. The default is LogError.
func SetLogLevel(level LogLevel) error {
	if level < LogDisabled || level > LogTrace {
		return &codec.TypeError{Value: level, Reason: fmt.Sprintf("unknown log level %d", int(level))}
	}

	driverLog.level.Store(int64(level))

	return nil
}

// SetDriverLogger routes driver diagnostics to logger. It is safe to call while sessions are open:
// the driver's logger is installed once and only its target is swapped afterwards.
func SetDriverLogger(logger Logger) {
	driverLog.mu.Lock()
	driverLog.logger = logger
	driverLog.mu.Unlock()

	driverRouteOnce.Do(func() { gocql.Logger = driverLog })
}

// installDriverLogger routes driver diagnostics to the logger of the first Session opened.
func installDriverLogger(logger Logger) {
	driverLoggerOnce.Do(func() {
		driverLog.mu.RLock()
		set := driverLog.logger != nil
		driverLog.mu.RUnlock()

		if !set {
			SetDriverLogger(logger)
		}
	})
}

func classify(msg string) LogLevel {
	m := strings.ToLower(msg)

	switch {
	case strings.Contains(m, "error"), strings.Contains(m, "unable"), strings.Contains(m, "fail"):
		return LogError
	case strings.Contains(m, "warn"), strings.Contains(m, "deprecated"):
		return LogWarn
	default:
		return LogInfo
	}
}

func (d *driverLogger) emit(msg string) {
	level := classify(msg)
	if level > LogLevel(d.level.Load()) {
		return
	}

	d.mu.RLock()
	logger := d.logger
	d.mu.RUnlock()

	if logger == nil {
		return
	}

	msg = strings.TrimRight(msg, "\n")

	switch level { //nolint:exhaustive // classify only yields these levels.
	case LogError:
		logger.Errorf("%s", msg)
	case LogWarn:
		logger.Warnf("%s", msg)
	default:
		logger.Logf("%s", msg)
	}
}

func (d *driverLogger) Print(v ...any) {
	d.emit(fmt.Sprint(v...))
}

func (d *driverLogger) Printf(format string, v ...any) {
	d.emit(fmt.Sprintf(format, v...))
}

func (d *driverLogger) Println(v ...any) {
	d.emit(fmt.Sprintln(v...))
}
