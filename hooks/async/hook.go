// usage:
//
// import (
//
//	"log/slog"
//
//	"github.com/unkn0wn-root/rescache"
//	"github.com/unkn0wn-root/rescache/hooks/async"
//	"github.com/unkn0wn-root/rescache/keys"
//	"github.com/unkn0wn-root/rescache/ownership"
//	"github.com/unkn0wn-root/rescache/sloghooks"
//
// )
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    UnderflowEvery: 10, // sample logs: ~every 10th underflow
//	    CollectedEvery: 1,  // log every sweep
//	})
//
// hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
// defer hooks.Close()
//
//	glyphs := rescache.New[string, *Texture](rescache.Options[string, *Texture]{
//	    Name:      "glyphs",
//	    Keys:      keys.String(),
//	    Ownership: ownership.RefCounted(texRef, texUnref),
//	    Hooks:     hooks, // or `raw` if you don’t want async
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/rescache"
)

type Hooks struct {
	inner rescache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ rescache.Hooks = (*Hooks)(nil)

func New(inner rescache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) AddRejected(cache, reason string) { h.try(func() { h.inner.AddRejected(cache, reason) }) }
func (h *Hooks) ConfigSealed(cache, field string) { h.try(func() { h.inner.ConfigSealed(cache, field) }) }
func (h *Hooks) InvalidateUnderflow(cache string) { h.try(func() { h.inner.InvalidateUnderflow(cache) }) }
func (h *Hooks) Collected(cache string, evicted, kept int) {
	h.try(func() { h.inner.Collected(cache, evicted, kept) })
}
