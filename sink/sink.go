// Package sink defines where encoded cache reports are shipped.
package sink

import (
	"context"

	"github.com/unkn0wn-root/rescache/report"
)

// Sink receives cache reports, typically once per frame or once per N
// collection sweeps. Publishing is diagnostic plumbing: it MUST NOT be
// required for cache correctness, and implementations decide durability
// and retention.
type Sink interface {
	Publish(ctx context.Context, r report.Report) error
	Close(ctx context.Context) error
}
