package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRegisterOnFreshRegistry(t *testing.T) {
	m := NewMetricsForTesting()
	reg := prometheus.NewRegistry()
	for _, c := range m.collectors() {
		require.NoError(t, reg.Register(c))
	}

	m.Lookups.WithLabelValues("alias").Inc()
	m.Lookups.WithLabelValues("none").Add(2)
	m.CatalogEntries.Set(28)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Lookups.WithLabelValues("alias")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Lookups.WithLabelValues("none")))
	assert.Equal(t, 28.0, testutil.ToFloat64(m.CatalogEntries))
	assert.Equal(t, 2, testutil.CollectAndCount(m.Lookups))
}

func TestNewMetricsForTestingIsIndependent(t *testing.T) {
	a := NewMetricsForTesting()
	b := NewMetricsForTesting()

	a.ListingsConsumed.Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(a.ListingsConsumed))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.ListingsConsumed))
}
