package cassandra

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoHosts            = errors.New("no hosts configured")
	ErrHostsUnresolved    = errors.New("no host could be resolved")
	ErrCallbackRegistered = errors.New("callback already registered")
	ErrNilCallback        = errors.New("callback is nil")
	ErrNoExecutionContext = errors.New("context carries no execution context id")
	ErrContextEnded       = errors.New("execution context ended")
	ErrSessionClosed      = errors.New("session is closed")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInvalidOption      = errors.New("invalid option")
	ErrUnknownColumn      = errors.New("unknown column")
	ErrIndexOutOfRange    = errors.New("index out of range")
)

// ConnectError reports that no session could be established with the cluster.
type ConnectError struct {
	Hosts []string
	Err   error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("connecting to cassandra at [%s]: %v", strings.Join(e.Hosts, ","), e.Err)
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}

// ExecutionError reports a statement rejected by the server, a failed request or a misuse of a Future.
type ExecutionError struct {
	Query string
	Err   error
}

func (e *ExecutionError) Error() string {
	if e.Query == "" {
		return e.Err.Error()
	}

	return fmt.Sprintf("executing %q: %v", e.Query, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// StatementError reports a bind against a column name or index the statement does not have.
type StatementError struct {
	Query string
	Name  string
	Index int
	Err   error
}

func (e *StatementError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("statement %q: %v %q", e.Query, e.Err, e.Name)
	}

	return fmt.Sprintf("statement %q: %v %d", e.Query, e.Err, e.Index)
}

func (e *StatementError) Unwrap() error {
	return e.Err
}
