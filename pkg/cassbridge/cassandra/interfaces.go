package cassandra

import (
	"context"

	"github.com/gocql/gocql"
)

// The driver is reached only through these interfaces so that tests can replace it.

// clusterConfig creates driver sessions.
type clusterConfig interface {
	createSession() (session, error)
}

// session is one driver session and its connection pools.
type session interface {
	// prepare returns the bind markers of a DML statement without executing it.
	prepare(ctx context.Context, stmt string) ([]gocql.ColumnInfo, error)
	query(ctx context.Context, stmt string, opts queryOptions, values ...any) iterator
	close()
}

// iterator walks the rows of one page.
type iterator interface {
	columns() []gocql.ColumnInfo
	numRows() int
	scan(dest ...any) bool
	pageState() []byte
	close() error
}

type queryOptions struct {
	pageSize   int
	pageState  []byte
	idempotent bool
}

type Logger interface {
	Debug(args ...any)
	Debugf(pattern string, args ...any)
	Log(args ...any)
	Logf(pattern string, args ...any)
	Warnf(pattern string, args ...any)
	Error(args ...any)
	Errorf(pattern string, args ...any)
}

type Metrics interface {
	NewHistogram(name, desc string, buckets ...float64)
	NewUpDownCounter(name, desc string)
	NewCounter(name, desc string)

	RecordHistogram(ctx context.Context, name string, value float64, labels ...string)
	DeltaUpDownCounter(ctx context.Context, name string, value float64, labels ...string)
	IncrementCounter(ctx context.Context, name string, labels ...string)
}
