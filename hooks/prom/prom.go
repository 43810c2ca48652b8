// Package promhook exports resource cache events as Prometheus metrics,
// labeled by cache name.
package promhook

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/unkn0wn-root/rescache"
)

type Hooks struct {
	rejects    *prometheus.CounterVec
	sealed     *prometheus.CounterVec
	underflows *prometheus.CounterVec
	evictions  *prometheus.CounterVec
	sweeps     *prometheus.CounterVec
	entries    *prometheus.GaugeVec
}

var _ rescache.Hooks = (*Hooks)(nil)

// New builds the metric set and registers it with reg.
func New(reg prometheus.Registerer) (*Hooks, error) {
	h := &Hooks{
		rejects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rescache_add_rejected_total",
			Help: "Add calls rejected before an entry was created.",
		}, []string{"cache", "reason"}),
		sealed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rescache_config_sealed_total",
			Help: "Configuration setters rejected after the first Add.",
		}, []string{"cache", "field"}),
		underflows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rescache_invalidate_underflow_total",
			Help: "Invalidate calls on entries whose age was already 0.",
		}, []string{"cache"}),
		evictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rescache_evictions_total",
			Help: "Entries removed by collection sweeps.",
		}, []string{"cache"}),
		sweeps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rescache_sweeps_total",
			Help: "Collection sweeps performed.",
		}, []string{"cache"}),
		entries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "rescache_entries",
			Help: "Live entries after the most recent sweep.",
		}, []string{"cache"}),
	}

	for _, c := range []prometheus.Collector{
		h.rejects, h.sealed, h.underflows, h.evictions, h.sweeps, h.entries,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func (h *Hooks) AddRejected(cache, reason string) {
	h.rejects.WithLabelValues(cache, reason).Inc()
}

func (h *Hooks) ConfigSealed(cache, field string) {
	h.sealed.WithLabelValues(cache, field).Inc()
}

func (h *Hooks) InvalidateUnderflow(cache string) {
	h.underflows.WithLabelValues(cache).Inc()
}

func (h *Hooks) Collected(cache string, evicted, kept int) {
	h.sweeps.WithLabelValues(cache).Inc()
	h.evictions.WithLabelValues(cache).Add(float64(evicted))
	h.entries.WithLabelValues(cache).Set(float64(kept))
}
