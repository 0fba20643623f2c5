package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-charsheet/internal/metrics"
)

func TestHTTPObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewHTTP(reg)

	m.Observe("/api/v1/characters", "GET", "200", 0.01)
	m.Observe("/api/v1/characters", "GET", "200", 0.02)
	m.Observe("/api/v1/characters/:id", "GET", "404", 0.01)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/api/v1/characters", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/api/v1/characters/:id", "GET", "404")))

	count, err := testutil.GatherAndCount(reg, "charsheet_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNewHTTPTwiceOnSameRegistryPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewHTTP(reg)

	assert.Panics(t, func() { metrics.NewHTTP(reg) })
}
