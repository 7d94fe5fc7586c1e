package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager_RegistersAll(t *testing.T) {
	m, reg := NewTestManagerAndRegistry()

	m.CounterEvaluations.WithLabelValues("user").Inc()
	m.CounterEvaluations.WithLabelValues("supplied").Add(2)
	m.CounterSummaryCacheHits.Inc()
	m.GaugeLifeSignal.Set(1)
	m.HistogramEvaluatedRecords.Observe(42)

	families, err := reg.Gather()
	require.NoError(t, err)

	byName := make(map[string]*dto.MetricFamily)
	for _, f := range families {
		byName[f.GetName()] = f
	}

	evaluations, ok := byName["gymprogress_test_server_progress_evaluations"]
	require.True(t, ok)
	assert.Equal(t, dto.MetricType_COUNTER, evaluations.GetType())
	assert.Len(t, evaluations.GetMetric(), 2)

	records, ok := byName["gymprogress_test_server_evaluated_records"]
	require.True(t, ok)
	require.Len(t, records.GetMetric(), 1)
	assert.Equal(t, uint64(1), records.GetMetric()[0].GetHistogram().GetSampleCount())

	assert.Equal(t, float64(1), testutil.ToFloat64(m.CounterSummaryCacheHits))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.GaugeLifeSignal))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.CounterEvaluations.WithLabelValues("supplied")))
}

func TestSetupPrometheus_ExtraCollectors(t *testing.T) {
	extra := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gymprogress",
		Name:      "extra_total",
	})
	promRegistry := SetupPrometheus(extra)
	m := NewManager("gymprogress", "test_server", promRegistry)
	m.CounterRequests.WithLabelValues("GET", "200").Inc()
	extra.Inc()

	families, err := promRegistry.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["gymprogress_extra_total"])
	assert.True(t, names["go_goroutines"])
	assert.True(t, names["go_build_info"])
	assert.Equal(t, 1, testutil.CollectAndCount(m.CounterRequests))
}
