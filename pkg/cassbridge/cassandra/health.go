package cassandra

import (
	"context"
	"strings"
)

const (
	statusDown  = "DOWN"
	statusUp    = "UP"
	healthQuery = "SELECT now() FROM system.local"
)

type Health struct {
	Status  string         `json:"status,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// HealthCheck runs a trivial query against the cluster and reports UP or DOWN.
func (s *Session) HealthCheck(ctx context.Context) any {
	h := Health{
		Details: map[string]any{
			"host":     strings.Join(s.config.Hosts, ","),
			"keyspace": s.config.Keyspace,
		},
	}

	if s.closed.Load() {
		h.Status = statusDown
		h.Details["message"] = "cassandra not connected"

		return &h
	}

	if err := s.session.query(ctx, healthQuery, queryOptions{}).close(); err != nil {
		h.Status = statusDown
		h.Details["message"] = err.Error()

		return &h
	}

	h.Status = statusUp

	return &h
}
