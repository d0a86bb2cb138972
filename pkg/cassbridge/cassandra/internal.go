package cassandra

import (
	"context"
	"errors"

	"github.com/gocql/gocql"
)

// errPrepared stops a bound query once the driver has prepared it, so nothing is executed.
var errPrepared = errors.New("statement prepared")

// cassandraIterator implements iterator interface.
type cassandraIterator struct {
	iter *gocql.Iter
}

func (c *cassandraIterator) columns() []gocql.ColumnInfo {
	return c.iter.Columns()
}

func (c *cassandraIterator) numRows() int {
	return c.iter.NumRows()
}

// scan fills dest with the next row. A nil destination skips its column.
func (c *cassandraIterator) scan(dest ...any) bool {
	return c.iter.Scan(dest...)
}

func (c *cassandraIterator) pageState() []byte {
	return c.iter.PageState()
}

// close releases the iterator and returns the error of the request, if any.
func (c *cassandraIterator) close() error {
	return c.iter.Close()
}

// cassandraClusterConfig implements clusterConfig interface.
type cassandraClusterConfig struct {
	clusterConfig *gocql.ClusterConfig
	speculative   gocql.SpeculativeExecutionPolicy
}

func newClusterConfig(config Config) clusterConfig {
	c := &cassandraClusterConfig{clusterConfig: gocql.NewCluster(config.Hosts...)}

	c.clusterConfig.Port = config.Port
	c.clusterConfig.Keyspace = config.Keyspace
	c.clusterConfig.ProtoVersion = config.ProtocolVersion.driverVersion()
	c.clusterConfig.ConnectTimeout = config.ConnectTimeout
	c.clusterConfig.Timeout = config.RequestTimeout

	if config.PageSize > 0 {
		c.clusterConfig.PageSize = config.PageSize
	}

	if se := config.SpeculativeExecution; se != nil && se.MaxExecutions > 0 {
		c.speculative = &gocql.SimpleSpeculativeExecution{NumAttempts: se.MaxExecutions, TimeoutDelay: se.Delay}
	}

	return c
}

func (c *cassandraClusterConfig) createSession() (session, error) {
	sess, err := c.clusterConfig.CreateSession()
	if err != nil {
		return nil, err
	}

	return &cassandraSession{session: sess, speculative: c.speculative}, nil
}

// cassandraSession implements session interface.
type cassandraSession struct {
	session     *gocql.Session
	speculative gocql.SpeculativeExecutionPolicy
}

// prepare asks the driver to prepare stmt and captures the bind markers from the binding callback,
// which the driver only calls after a successful prepare. Returning errPrepared from the callback
// aborts the request before an EXECUTE frame is written.
func (c *cassandraSession) prepare(ctx context.Context, stmt string) ([]gocql.ColumnInfo, error) {
	var params []gocql.ColumnInfo

	q := c.session.Bind(stmt, func(info *gocql.QueryInfo) ([]any, error) {
		params = info.Args

		return nil, errPrepared
	}).WithContext(ctx)
	defer q.Release()

	err := q.Exec()

	switch {
	case errors.Is(err, errPrepared):
		return params, nil
	case err != nil:
		return nil, err
	default:
		return params, nil
	}
}

func (c *cassandraSession) query(ctx context.Context, stmt string, opts queryOptions, values ...any) iterator {
	q := c.session.Query(stmt, values...).WithContext(ctx).PageState(opts.pageState)

	if opts.pageSize > 0 {
		q = q.PageSize(opts.pageSize)
	}

	if opts.idempotent {
		q = q.Idempotent(true)

		if c.speculative != nil {
			q = q.SetSpeculativeExecutionPolicy(c.speculative)
		}
	}

	return &cassandraIterator{iter: q.Iter()}
}

func (c *cassandraSession) close() {
	c.session.Close()
}
