package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/rescache"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	UnderflowEvery uint64
	CollectedEvery uint64
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	underflowCtr atomic.Uint64
	collectedCtr atomic.Uint64
}

var _ rescache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) AddRejected(cache, reason string) {
	if h.l == nil {
		return
	}
	h.l.Warn("rescache.add_rejected",
		"cache", cache,
		"reason", reason)
}

func (h *Hooks) ConfigSealed(cache, field string) {
	if h.l == nil {
		return
	}
	h.l.Warn("rescache.config_sealed",
		"cache", cache,
		"field", field)
}

func (h *Hooks) InvalidateUnderflow(cache string) {
	if h.l == nil || !sample(h.opts.UnderflowEvery, &h.underflowCtr) {
		return
	}
	h.l.Warn("rescache.invalidate_underflow",
		"cache", cache)
}

func (h *Hooks) Collected(cache string, evicted, kept int) {
	if h.l == nil || !sample(h.opts.CollectedEvery, &h.collectedCtr) {
		return
	}
	h.l.Debug("rescache.collected",
		"cache", cache,
		"evicted", evicted,
		"kept", kept)
}
