package cassandra

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/mapstructure"

	"github.com/cassbridge/cassbridge/pkg/cassbridge/config"
)

const (
	defaultPort           = 9042
	defaultConnectTimeout = 5 * time.Second
	defaultRequestTimeout = 12 * time.Second
	defaultResolveTimeout = 2 * time.Second
	maxPort               = 65535
)

type ProtocolVersion int

const (
	ProtocolV1 ProtocolVersion = iota + 1
	ProtocolV2
	ProtocolV3
	ProtocolV4
	ProtocolV5
	ProtocolDSEV1
	ProtocolDSEV2
)

func (p ProtocolVersion) String() string {
	switch p {
	case ProtocolV1, ProtocolV2, ProtocolV3, ProtocolV4, ProtocolV5:
		return "v" + strconv.Itoa(int(p))
	case ProtocolDSEV1:
		return "dse_v1"
	case ProtocolDSEV2:
		return "dse_v2"
	default:
		return "unknown"
	}
}

func (p ProtocolVersion) valid() bool {
	return p >= ProtocolV1 && p <= ProtocolDSEV2
}

// driverVersion is the native protocol version requested from gocql. The DSE protocols are
// negotiated as the Cassandra protocol they extend.
func (p ProtocolVersion) driverVersion() int {
	switch p {
	case ProtocolDSEV1:
		return int(ProtocolV4)
	case ProtocolDSEV2:
		return int(ProtocolV5)
	default:
		return int(p)
	}
}

// ParseProtocolVersion accepts "v1".."v5", "dse_v1", "dse_v2" or a bare number 1..5.
func ParseProtocolVersion(s string) (ProtocolVersion, error) {
	v := strings.ToLower(strings.TrimSpace(s))

	for p := ProtocolV1; p <= ProtocolDSEV2; p++ {
		if v == p.String() {
			return p, nil
		}
	}

	if n, err := strconv.Atoi(v); err == nil && n >= int(ProtocolV1) && n <= int(ProtocolV5) {
		return ProtocolVersion(n), nil
	}

	return 0, fmt.Errorf("%w: protocol version %q", ErrInvalidArgument, s)
}

// SpeculativeExecution issues up to MaxExecutions additional requests for an idempotent statement,
// each Delay after the previous one, while no response has arrived.
type SpeculativeExecution struct {
	Delay         time.Duration
	MaxExecutions int
}

type Config struct {
	Hosts           []string
	Port            int
	Keyspace        string
	ProtocolVersion ProtocolVersion
	ConnectTimeout  time.Duration
	RequestTimeout  time.Duration
	ResolveTimeout  time.Duration
	// SpeculativeExecution is nil when disabled.
	SpeculativeExecution *SpeculativeExecution
	// PageSize applies to statements that do not set their own; zero keeps the driver default.
	PageSize int
}

func (c Config) clone() Config {
	c.Hosts = append([]string(nil), c.Hosts...)

	if c.SpeculativeExecution != nil {
		se := *c.SpeculativeExecution
		c.SpeculativeExecution = &se
	}

	return c
}

// withDefaults fills unset numeric fields with the driver defaults.
func (c Config) withDefaults() Config {
	if c.Port == 0 {
		c.Port = defaultPort
	}

	if c.ProtocolVersion == 0 {
		c.ProtocolVersion = ProtocolV4
	}

	if c.ConnectTimeout == 0 {
		c.ConnectTimeout = defaultConnectTimeout
	}

	if c.RequestTimeout == 0 {
		c.RequestTimeout = defaultRequestTimeout
	}

	if c.ResolveTimeout == 0 {
		c.ResolveTimeout = defaultResolveTimeout
	}

	return c
}

// validate checks every field except the presence of hosts, which only matters when connecting.
func (c Config) validate() error {
	var errs *multierror.Error

	if c.Port <= 0 || c.Port > maxPort {
		errs = multierror.Append(errs, fmt.Errorf("%w: port %d out of range", ErrInvalidArgument, c.Port))
	}

	if !c.ProtocolVersion.valid() {
		errs = multierror.Append(errs, fmt.Errorf("%w: protocol version %d", ErrInvalidArgument, c.ProtocolVersion))
	}

	for name, d := range map[string]time.Duration{
		"connect timeout": c.ConnectTimeout,
		"request timeout": c.RequestTimeout,
		"resolve timeout": c.ResolveTimeout,
	} {
		if d <= 0 {
			errs = multierror.Append(errs, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidArgument, name, d))
		}
	}

	if se := c.SpeculativeExecution; se != nil && (se.Delay < 0 || se.MaxExecutions < 0) {
		errs = multierror.Append(errs, fmt.Errorf("%w: speculative execution delay %v and max executions %d must not be negative",
			ErrInvalidArgument, se.Delay, se.MaxExecutions))
	}

	if c.PageSize < 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: page size %d is negative", ErrInvalidArgument, c.PageSize))
	}

	return errs.ErrorOrNil()
}

//nolint:gochecknoglobals // process-wide defaults used by SessionForContext.
var (
	defaultsMu sync.RWMutex
	defaults   = initialDefaults()
)

func initialDefaults() Config {
	return Config{
		Hosts:           []string{"127.0.0.1"},
		Port:            defaultPort,
		ProtocolVersion: ProtocolV4,
		ConnectTimeout:  5000 * time.Millisecond,
		RequestTimeout:  5000 * time.Millisecond,
		ResolveTimeout:  2000 * time.Millisecond,
		SpeculativeExecution: &SpeculativeExecution{
			Delay:         15000 * time.Millisecond,
			MaxExecutions: 2,
		},
	}
}

// DefaultConfig returns a copy of the process-wide defaults.
func DefaultConfig() Config {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()

	return defaults.clone()
}

type speculativeOptions struct {
	DelayMS       *int `mapstructure:"delay_ms"`
	MaxExecutions *int `mapstructure:"max_executions"`
}

type options struct {
	Hosts            []string            `mapstructure:"hosts"`
	Port             *int                `mapstructure:"port"`
	Keyspace         *string             `mapstructure:"keyspace"`
	ProtocolVersion  *string             `mapstructure:"protocol_version"`
	ConnectTimeoutMS *int                `mapstructure:"connect_timeout_ms"`
	RequestTimeoutMS *int                `mapstructure:"request_timeout_ms"`
	ResolveTimeoutMS *int                `mapstructure:"resolve_timeout_ms"`
	Speculative      *speculativeOptions `mapstructure:"constant_speculative_execution"`
	PageSize         *int                `mapstructure:"page_size"`
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// Configure merges options into the process-wide defaults. Recognized keys are hosts, port, keyspace,
// protocol_version, connect_timeout_ms, request_timeout_ms, resolve_timeout_ms,
// constant_speculative_execution (delay_ms, max_executions) and page_size. Numbers may be given as
// strings. Nothing is merged when a key is unknown or a value is invalid.
func Configure(opts map[string]any) error {
	var o options

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &o,
	})
	if err != nil {
		return err
	}

	if err = dec.Decode(opts); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOption, err)
	}

	defaultsMu.Lock()
	defer defaultsMu.Unlock()

	merged, err := o.apply(defaults.clone())
	if err != nil {
		return err
	}

	if err = merged.validate(); err != nil {
		return err
	}

	defaults = merged

	return nil
}

func (o *options) apply(c Config) (Config, error) {
	if o.Hosts != nil {
		c.Hosts = splitHosts(o.Hosts)
	}

	if o.Port != nil {
		c.Port = *o.Port
	}

	if o.Keyspace != nil {
		c.Keyspace = *o.Keyspace
	}

	if o.ProtocolVersion != nil {
		p, err := ParseProtocolVersion(*o.ProtocolVersion)
		if err != nil {
			return c, err
		}

		c.ProtocolVersion = p
	}

	if o.ConnectTimeoutMS != nil {
		c.ConnectTimeout = ms(*o.ConnectTimeoutMS)
	}

	if o.RequestTimeoutMS != nil {
		c.RequestTimeout = ms(*o.RequestTimeoutMS)
	}

	if o.ResolveTimeoutMS != nil {
		c.ResolveTimeout = ms(*o.ResolveTimeoutMS)
	}

	if o.Speculative != nil {
		se := SpeculativeExecution{}
		if c.SpeculativeExecution != nil {
			se = *c.SpeculativeExecution
		}

		if o.Speculative.DelayMS != nil {
			se.Delay = ms(*o.Speculative.DelayMS)
		}

		if o.Speculative.MaxExecutions != nil {
			se.MaxExecutions = *o.Speculative.MaxExecutions
		}

		c.SpeculativeExecution = &se
	}

	if o.PageSize != nil {
		c.PageSize = *o.PageSize
	}

	return c, nil
}

// splitHosts trims every entry and drops empty ones.
func splitHosts(hosts []string) []string {
	out := make([]string, 0, len(hosts))

	for _, h := range hosts {
		for _, part := range strings.Split(h, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}

	return out
}

// ConfigFromEnv reads the CASSANDRA_* settings from conf into an options map for Configure. Unset
// settings are left out.
func ConfigFromEnv(conf config.Config) map[string]any {
	opts := make(map[string]any)

	for key, env := range map[string]string{
		"hosts":              "CASSANDRA_HOSTS",
		"port":               "CASSANDRA_PORT",
		"keyspace":           "CASSANDRA_KEYSPACE",
		"protocol_version":   "CASSANDRA_PROTOCOL_VERSION",
		"connect_timeout_ms": "CASSANDRA_CONNECT_TIMEOUT_MS",
		"request_timeout_ms": "CASSANDRA_REQUEST_TIMEOUT_MS",
		"resolve_timeout_ms": "CASSANDRA_RESOLVE_TIMEOUT_MS",
		"page_size":          "CASSANDRA_PAGE_SIZE",
	} {
		if v := conf.Get(env); v != "" {
			opts[key] = v
		}
	}

	speculative := make(map[string]any)

	if v := conf.Get("CASSANDRA_SPECULATIVE_DELAY_MS"); v != "" {
		speculative["delay_ms"] = v
	}

	if v := conf.Get("CASSANDRA_SPECULATIVE_MAX_EXECUTIONS"); v != "" {
		speculative["max_executions"] = v
	}

	if len(speculative) > 0 {
		opts["constant_speculative_execution"] = speculative
	}

	return opts
}
