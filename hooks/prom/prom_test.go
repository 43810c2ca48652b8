package promhook

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetricsTrackEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	h, err := New(reg)
	require.NoError(t, err)

	h.AddRejected("glyphs", "no_ownership")
	h.InvalidateUnderflow("glyphs")
	h.InvalidateUnderflow("glyphs")
	h.Collected("glyphs", 3, 12)
	h.Collected("glyphs", 1, 11)

	require.Equal(t, 1.0, testutil.ToFloat64(h.rejects.WithLabelValues("glyphs", "no_ownership")))
	require.Equal(t, 2.0, testutil.ToFloat64(h.underflows.WithLabelValues("glyphs")))
	require.Equal(t, 4.0, testutil.ToFloat64(h.evictions.WithLabelValues("glyphs")))
	require.Equal(t, 2.0, testutil.ToFloat64(h.sweeps.WithLabelValues("glyphs")))
	require.Equal(t, 11.0, testutil.ToFloat64(h.entries.WithLabelValues("glyphs")))
}

func TestDoubleRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)
	_, err = New(reg)
	require.Error(t, err)
}
