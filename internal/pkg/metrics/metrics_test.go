package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveGeocode(t *testing.T) {
	m := New()

	m.ObserveGeocode("ok")
	m.ObserveGeocode("ok")
	m.ObserveGeocode("zero_results")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.GeocoderResults.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GeocoderResults.WithLabelValues("zero_results")))
}

func TestObserveSearch(t *testing.T) {
	m := New()

	m.ObserveSearch("nearby", 3)
	m.ObserveSearch("search", 0)

	assert.Equal(t, 2, testutil.CollectAndCount(m.SearchResults))
}

func TestNilMetricsAreNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveSearch("nearby", 1)
		m.ObserveGeocode("ok")
	})
}
