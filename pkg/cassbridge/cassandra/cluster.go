package cassandra

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
)

// Cluster builds a Config. Setters record invalid arguments instead of failing, and Build or Connect
// report all of them at once.
//
//	sess, err := cassandra.NewCluster().
//		Hosts("10.0.0.1", "10.0.0.2").
//		Keyspace("app").
//		ConstantSpeculativeExecution(100*time.Millisecond, 2).
//		Connect(ctx)
type Cluster struct {
	config Config
	errs   *multierror.Error
}

// NewCluster starts from the driver defaults: port 9042, protocol v4, 5s connect timeout, 12s request
// timeout, 2s resolve timeout and no speculative execution.
func NewCluster() *Cluster {
	return &Cluster{config: Config{}.withDefaults()}
}

func (c *Cluster) fail(format string, args ...any) *Cluster {
	c.errs = multierror.Append(c.errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...))

	return c
}

func (c *Cluster) Hosts(hosts ...string) *Cluster {
	h := splitHosts(hosts)
	if len(h) == 0 {
		return c.fail("at least one host is required")
	}

	c.config.Hosts = h

	return c
}

func (c *Cluster) Port(port int) *Cluster {
	if port <= 0 || port > maxPort {
		return c.fail("port %d out of range", port)
	}

	c.config.Port = port

	return c
}

func (c *Cluster) Keyspace(keyspace string) *Cluster {
	c.config.Keyspace = keyspace

	return c
}

func (c *Cluster) ProtocolVersion(v ProtocolVersion) *Cluster {
	if !v.valid() {
		return c.fail("protocol version %d", v)
	}

	c.config.ProtocolVersion = v

	return c
}

func (c *Cluster) ConnectTimeout(d time.Duration) *Cluster {
	if d <= 0 {
		return c.fail("connect timeout must be positive, got %v", d)
	}

	c.config.ConnectTimeout = d

	return c
}

func (c *Cluster) RequestTimeout(d time.Duration) *Cluster {
	if d <= 0 {
		return c.fail("request timeout must be positive, got %v", d)
	}

	c.config.RequestTimeout = d

	return c
}

func (c *Cluster) ResolveTimeout(d time.Duration) *Cluster {
	if d <= 0 {
		return c.fail("resolve timeout must be positive, got %v", d)
	}

	c.config.ResolveTimeout = d

	return c
}

// ConstantSpeculativeExecution enables speculative execution for idempotent statements.
func (c *Cluster) ConstantSpeculativeExecution(delay time.Duration, maxExecutions int) *Cluster {
	if delay < 0 || maxExecutions < 0 {
		return c.fail("speculative execution delay %v and max executions %d must not be negative", delay, maxExecutions)
	}

	c.config.SpeculativeExecution = &SpeculativeExecution{Delay: delay, MaxExecutions: maxExecutions}

	return c
}

func (c *Cluster) PageSize(n int) *Cluster {
	if n < 0 {
		return c.fail("page size %d is negative", n)
	}

	c.config.PageSize = n

	return c
}

// Build returns the accumulated Config, or every argument error recorded by the setters.
func (c *Cluster) Build() (Config, error) {
	if err := c.errs.ErrorOrNil(); err != nil {
		return Config{}, err
	}

	return c.config.clone(), nil
}

func (c *Cluster) Connect(ctx context.Context, opts ...Option) (*Session, error) {
	cfg, err := c.Build()
	if err != nil {
		return nil, err
	}

	return Connect(ctx, cfg, opts...)
}
