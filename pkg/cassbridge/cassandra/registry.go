package cassandra

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

type execContextKey struct{}

type execContext struct {
	id       string
	lifetime context.Context
}

// WithExecutionContext tags ctx with an execution context id. Sessions obtained through
// SessionForContext for this id are closed when ctx is done or EndContext(id) is called.
func WithExecutionContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, execContextKey{}, &execContext{id: id, lifetime: ctx})
}

// ExecutionContextID returns the id stored by WithExecutionContext.
func ExecutionContextID(ctx context.Context) (string, bool) {
	ec, ok := ctx.Value(execContextKey{}).(*execContext)
	if !ok || ec.id == "" {
		return "", false
	}

	return ec.id, true
}

type connectFunc func(ctx context.Context, cfg Config, opts ...Option) (*Session, error)

// registry caches one Session per execution context id.
type registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	stops    map[string]func() bool
	// connecting holds the ids with a connect in flight; the value turns true when the id is ended meanwhile.
	connecting map[string]bool
	group      singleflight.Group
	connect    connectFunc
	options    []Option
}

func newRegistry(connect connectFunc) *registry {
	return &registry{
		sessions:   make(map[string]*Session),
		stops:      make(map[string]func() bool),
		connecting: make(map[string]bool),
		connect:    connect,
	}
}

//nolint:gochecknoglobals // process-wide session cache.
var sessions = newRegistry(Connect)

// SessionForContext returns the Session of the execution context carried by ctx, connecting with
// DefaultConfig on first use. Concurrent first uses of one context share a single connection attempt.
func SessionForContext(ctx context.Context) (*Session, error) {
	return sessions.get(ctx)
}

// EndContext closes and forgets the Session of execution context id, if any. A Session still being
// opened for id is closed as soon as it connects and its callers get ErrContextEnded.
func EndContext(id string) {
	sessions.end(id)
}

// SetSessionOptions sets the options used when SessionForContext opens a Session.
func SetSessionOptions(opts ...Option) {
	sessions.mu.Lock()
	sessions.options = append([]Option(nil), opts...)
	sessions.mu.Unlock()
}

func (r *registry) lookup(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]

	return s, ok
}

func (r *registry) get(ctx context.Context) (*Session, error) {
	ec, ok := ctx.Value(execContextKey{}).(*execContext)
	if !ok || ec.id == "" {
		return nil, ErrNoExecutionContext
	}

	if s, ok := r.lookup(ec.id); ok {
		return s, nil
	}

	v, err, _ := r.group.Do(ec.id, func() (any, error) {
		if s, ok := r.lookup(ec.id); ok {
			return s, nil
		}

		if err := ec.lifetime.Err(); err != nil {
			return nil, err
		}

		r.mu.Lock()
		opts := r.options
		r.connecting[ec.id] = false
		r.mu.Unlock()

		// the connection outlives the request that happened to open it.
		s, err := r.connect(context.WithoutCancel(ctx), DefaultConfig(), opts...)

		r.mu.Lock()
		ended := r.connecting[ec.id]
		delete(r.connecting, ec.id)

		if err != nil {
			r.mu.Unlock()

			return nil, err
		}

		if ended {
			r.mu.Unlock()
			s.Close()

			return nil, ErrContextEnded
		}

		r.sessions[ec.id] = s
		r.stops[ec.id] = context.AfterFunc(ec.lifetime, func() { r.end(ec.id) })
		r.mu.Unlock()

		return s, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*Session), nil
}

func (r *registry) end(id string) {
	r.mu.Lock()
	if _, pending := r.connecting[id]; pending {
		r.connecting[id] = true
	}

	s, ok := r.sessions[id]
	stop := r.stops[id]

	delete(r.sessions, id)
	delete(r.stops, id)
	r.mu.Unlock()

	if stop != nil {
		stop()
	}

	if ok {
		s.Close()
	}
}
