package logging

import (
	"fmt"
	"runtime/debug"
)

type PanicLog struct {
	Error      string `json:"error,omitempty"`
	StackTrace string `json:"stack_trace,omitempty"`
}

// LogPanic logs a recovered value and the current stack trace at ERROR.
func LogPanic(re any, logger interface{ Error(args ...any) }) {
	if re == nil {
		return
	}

	var e string

	switch t := re.(type) {
	case string:
		e = t
	case error:
		e = t.Error()
	default:
		e = fmt.Sprintf("%v", t)
	}

	logger.Error(PanicLog{
		Error:      e,
		StackTrace: string(debug.Stack()),
	})
}
