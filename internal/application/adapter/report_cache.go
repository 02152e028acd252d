package adapter

import (
	"context"
	"time"
)

// ReportCache caches rendered report payloads keyed by period and anchor.
// Implementations must treat a miss as (nil, nil), not as an error.
type ReportCache interface {
	// Get returns the cached payload for key, or nil on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores payload under key with the given TTL.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error

	// InvalidateAll drops every cached report. Called after any record mutation.
	InvalidateAll(ctx context.Context) error
}
