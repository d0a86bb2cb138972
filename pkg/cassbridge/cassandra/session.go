// Package cassandra connects to Cassandra through gocql and exposes prepared statements with typed
// binding, paged results and Futures for asynchronous prepare and execute.
package cassandra

import (
	"context"
	"fmt"
	"net"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode"

	"github.com/gocql/gocql"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/cassbridge/cassbridge/pkg/cassbridge/codec"
	"github.com/cassbridge/cassbridge/pkg/cassbridge/logging"
)

const (
	metricStats    = "app_cassandra_stats"
	metricInflight = "app_cassandra_futures_inflight"
	metricErrors   = "app_cassandra_errors"
)

//nolint:gochecknoglobals // metric instruments are registered once per Metrics instance.
var registeredMetrics sync.Map

type resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// Session owns one driver session and its connection pools. It is safe for concurrent use.
type Session struct {
	config   Config
	cluster  clusterConfig
	session  session
	resolver resolver

	logger  Logger
	metrics Metrics
	tracer  trace.Tracer

	closeOnce sync.Once
	closed    atomic.Bool
}

type Option func(*Session)

func UseLogger(logger Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func UseMetrics(metrics Metrics) Option {
	return func(s *Session) {
		s.metrics = metrics
	}
}

func UseTracer(tracer trace.Tracer) Option {
	return func(s *Session) {
		s.tracer = tracer
	}
}

func withClusterConfig(c clusterConfig) Option {
	return func(s *Session) {
		s.cluster = c
	}
}

func withResolver(r resolver) Option {
	return func(s *Session) {
		s.resolver = r
	}
}

// Connect opens a new Session. Zero numeric fields of cfg take the driver defaults. It fails with a
// *ConnectError when cfg has no hosts (without any network I/O), when no host name resolves within
// ResolveTimeout, or when the driver cannot open a session.
func Connect(ctx context.Context, cfg Config, opts ...Option) (*Session, error) {
	cfg = cfg.clone().withDefaults()
	cfg.Hosts = splitHosts(cfg.Hosts)

	if len(cfg.Hosts) == 0 {
		return nil, &ConnectError{Err: ErrNoHosts}
	}

	if err := cfg.validate(); err != nil {
		return nil, &ConnectError{Hosts: cfg.Hosts, Err: err}
	}

	s := &Session{
		config:   cfg,
		resolver: net.DefaultResolver,
		logger:   logging.NewLogger(logging.INFO),
	}

	for _, opt := range opts {
		opt(s)
	}

	installDriverLogger(s.logger)

	if s.cluster == nil {
		s.cluster = newClusterConfig(cfg)
	}

	s.registerMetrics()

	hosts := strings.Join(cfg.Hosts, ",")

	s.logger.Logf("connecting to cassandra at %v on port %v to keyspace %v", hosts, cfg.Port, cfg.Keyspace)

	ctx, span := s.addTrace(ctx, "connect", hosts)
	start := time.Now()

	err := s.resolveHosts(ctx)
	if err == nil {
		s.session, err = s.createSession(ctx)
	}

	s.sendOperationStats(ctx, &QueryLog{Operation: "connect", Query: hosts, Keyspace: cfg.Keyspace}, start, span, err)

	if err != nil {
		s.logger.Errorf("error connecting to cassandra: %v", err)

		return nil, &ConnectError{Hosts: cfg.Hosts, Err: err}
	}

	s.logger.Logf("connected to '%s' keyspace at host '%s' and port '%d'", cfg.Keyspace, hosts, cfg.Port)

	return s, nil
}

func (s *Session) registerMetrics() {
	if s.metrics == nil {
		return
	}

	// a Metrics value that cannot be a map key registers with every Session.
	if reflect.ValueOf(s.metrics).Comparable() {
		if _, loaded := registeredMetrics.LoadOrStore(s.metrics, struct{}{}); loaded {
			return
		}
	}

	cassandraBuckets := []float64{.05, .075, .1, .125, .15, .2, .3, .5, .75, 1, 2, 3, 4, 5, 7.5, 10}
	s.metrics.NewHistogram(metricStats, "Response time of CASSANDRA queries in milliseconds.", cassandraBuckets...)
	s.metrics.NewUpDownCounter(metricInflight, "Number of CASSANDRA operations waiting for the driver.")
	s.metrics.NewCounter(metricErrors, "Number of failed CASSANDRA operations.")
}

func hostOnly(h string) string {
	if host, _, err := net.SplitHostPort(h); err == nil {
		return host
	}

	return strings.Trim(h, "[]")
}

// resolveHosts succeeds as soon as one host is an IP address or resolves within ResolveTimeout.
func (s *Session) resolveHosts(ctx context.Context) error {
	var lastErr error

	for _, h := range s.config.Hosts {
		host := hostOnly(h)
		if net.ParseIP(host) != nil {
			return nil
		}

		rctx, cancel := context.WithTimeout(ctx, s.config.ResolveTimeout)
		_, err := s.resolver.LookupHost(rctx, host)
		cancel()

		if err == nil {
			return nil
		}

		s.logger.Debugf("unable to resolve cassandra host %q: %v", h, err)

		lastErr = err
	}

	return fmt.Errorf("%w: %v", ErrHostsUnresolved, lastErr)
}

// createSession waits for the driver until ctx is done. A session the driver opens after that is closed.
func (s *Session) createSession(ctx context.Context) (session, error) {
	type created struct {
		sess session
		err  error
	}

	ch := make(chan created, 1)

	go func() {
		sess, err := s.cluster.createSession()
		ch <- created{sess: sess, err: err}
	}()

	select {
	case c := <-ch:
		if c.err != nil {
			return nil, errors.Wrap(c.err, "creating session")
		}

		return c.sess, nil
	case <-ctx.Done():
		go func() {
			if c := <-ch; c.sess != nil {
				c.sess.close()
			}
		}()

		return nil, ctx.Err()
	}
}

// Config returns the configuration the Session was opened with.
func (s *Session) Config() Config {
	return s.config.clone()
}

// Close closes the driver session. Closing twice is a no-op. Operations submitted afterwards fail.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		s.session.close()
		s.logger.Debugf("closed cassandra session to keyspace '%s'", s.config.Keyspace)
	})
}

func (s *Session) Closed() bool {
	return s.closed.Load()
}

// spawn runs fn on its own goroutine and settles the returned Future with its outcome.
func spawn[T any](ctx context.Context, s *Session, fn func(context.Context) (T, error)) *Future[T] {
	f := newFuture[T](s.logger)

	if s.closed.Load() {
		f.fail(&ExecutionError{Err: ErrSessionClosed})

		return f
	}

	s.inflight(ctx, 1)

	go func() {
		v, err := fn(ctx)

		s.inflight(ctx, -1)

		if err != nil {
			f.fail(err)

			return
		}

		f.succeed(v)
	}()

	return f
}

func (s *Session) inflight(ctx context.Context, delta float64) {
	if s.metrics != nil {
		s.metrics.DeltaUpDownCounter(ctx, metricInflight, delta, "keyspace", s.config.Keyspace)
	}
}

// Prepare prepares query on the server and blocks until it is done.
func (s *Session) Prepare(ctx context.Context, query string) (*Statement, error) {
	return s.PrepareAsync(ctx, query).Await(ctx)
}

// PrepareAsync prepares query without blocking. The Future fails with an *ExecutionError when the
// server rejects the query.
func (s *Session) PrepareAsync(ctx context.Context, query string) *Future[*Statement] {
	if strings.TrimSpace(query) == "" {
		return failedFuture[*Statement](s.logger, &codec.TypeError{Value: query, Reason: "query text is empty"})
	}

	return spawn(ctx, s, func(ctx context.Context) (*Statement, error) {
		return s.prepare(ctx, query)
	})
}

// preparable reports whether the driver prepares query before running it. The driver only prepares
// statements whose first word is select, insert, update, delete or batch, or a "begin ... batch" block.
// Anything else, including schema statements and text led by a comment, would run as a plain query
// from Prepare, so it is left to Execute and carries no bind markers.
func preparable(query string) bool {
	stmt := strings.TrimLeftFunc(strings.TrimRightFunc(query, func(r rune) bool {
		return unicode.IsSpace(r) || r == ';'
	}), unicode.IsSpace)

	n := strings.IndexFunc(stmt, unicode.IsSpace)
	if n < 0 {
		return false
	}

	kind := strings.ToLower(stmt[:n])
	if kind == "begin" {
		kind = strings.ToLower(stmt[strings.LastIndexFunc(stmt, unicode.IsSpace)+1:])
	}

	switch kind {
	case "select", "insert", "update", "delete", "batch":
		return true
	default:
		return false
	}
}

func (s *Session) prepare(ctx context.Context, query string) (*Statement, error) {
	ctx, span := s.addTrace(ctx, "prepare", query)
	start := time.Now()

	var (
		params []gocql.ColumnInfo
		err    error
	)

	if preparable(query) {
		params, err = s.session.prepare(ctx, query)
	}

	s.sendOperationStats(ctx, &QueryLog{Operation: "prepare", Query: query, Keyspace: s.config.Keyspace}, start, span, err)

	if err != nil {
		return nil, &ExecutionError{Query: query, Err: errors.Wrap(err, "prepare")}
	}

	return newStatement(s, query, codec.Columns(params)), nil
}

// Execute runs stmt and blocks until its first page is available.
func (s *Session) Execute(ctx context.Context, stmt *Statement) (*Result, error) {
	return s.ExecuteAsync(ctx, stmt).Await(ctx)
}

// ExecuteAsync runs stmt without blocking. The parameter buffer is copied before ExecuteAsync returns.
// Statements that do not come from Prepare fail with a *codec.TypeError.
func (s *Session) ExecuteAsync(ctx context.Context, stmt *Statement) *Future[*Result] {
	if stmt == nil || stmt.session == nil {
		return failedFuture[*Result](s.logger, &codec.TypeError{Value: stmt, Reason: "not a prepared statement"})
	}

	return s.submit(ctx, stmt.snapshot())
}

func (s *Session) submit(ctx context.Context, q boundQuery) *Future[*Result] {
	return spawn(ctx, s, func(ctx context.Context) (*Result, error) {
		return s.execute(ctx, q)
	})
}

func (s *Session) execute(ctx context.Context, q boundQuery) (*Result, error) {
	ctx, span := s.addTrace(ctx, "execute", q.query)
	start := time.Now()

	res, err := s.fetch(ctx, q)

	s.sendOperationStats(ctx, &QueryLog{Operation: "execute", Query: q.query, Keyspace: s.config.Keyspace}, start, span, err)

	if err != nil {
		return nil, &ExecutionError{Query: q.query, Err: errors.Wrap(err, "execute")}
	}

	return res, nil
}

// fetch reads one page. Columns of unsupported types, tuples included, are skipped by the driver and
// reported as codec.UnsupportedColumn.
func (s *Session) fetch(ctx context.Context, q boundQuery) (*Result, error) {
	iter := s.session.query(ctx, q.query, queryOptions{pageSize: q.pageSize, pageState: q.pageState, idempotent: q.idempotent},
		q.values...)

	infos := iter.columns()
	columns := codec.Columns(infos)

	// the driver wants one slot per tuple element but skips a nil column in a single slot,
	// so the extra tuple slots sit at the end and are never filled.
	dest := make([]any, len(columns)+tupleSlots(infos))
	for i, c := range columns {
		dest[i] = codec.Dest(c.Type)
	}

	rows := make([]Row, 0, iter.numRows())

	for iter.scan(dest...) {
		row := make(Row, len(columns))

		for i, c := range columns {
			row[c.Name] = codec.Decode(c.Type, dest[i])
		}

		rows = append(rows, row)
	}

	pageState := append([]byte(nil), iter.pageState()...)

	if err := iter.close(); err != nil {
		return nil, err
	}

	return &Result{session: s, query: q, columns: columns, rows: rows, pageState: pageState}, nil
}

func tupleSlots(infos []gocql.ColumnInfo) int {
	var n int

	for _, info := range infos {
		if tuple, ok := info.TypeInfo.(gocql.TupleTypeInfo); ok && len(tuple.Elems) > 1 {
			n += len(tuple.Elems) - 1
		}
	}

	return n
}

func (s *Session) addTrace(ctx context.Context, operation, query string) (context.Context, trace.Span) {
	if s.tracer == nil {
		return ctx, nil
	}

	ctx, span := s.tracer.Start(ctx, "cassandra-"+operation)

	span.SetAttributes(
		attribute.String("cassandra.query", query),
		attribute.String("cassandra.keyspace", s.config.Keyspace),
	)

	return ctx, span
}

func (s *Session) sendOperationStats(ctx context.Context, ql *QueryLog, start time.Time, span trace.Span, err error) {
	duration := time.Since(start)

	ql.Duration = duration.Microseconds()

	s.logger.Debug(ql)

	if span != nil {
		span.SetAttributes(attribute.Int64(fmt.Sprintf("cassandra.%s.duration", ql.Operation), ql.Duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		span.End()
	}

	if s.metrics == nil {
		return
	}

	hosts := strings.Join(s.config.Hosts, ",")

	s.metrics.RecordHistogram(ctx, metricStats, float64(duration.Microseconds())/float64(time.Millisecond/time.Microsecond),
		"hostname", hosts, "keyspace", s.config.Keyspace, "operation", ql.Operation)

	if err != nil {
		s.metrics.IncrementCounter(ctx, metricErrors, "hostname", hosts, "keyspace", s.config.Keyspace, "operation", ql.Operation)
	}
}
