package metrics

import (
	"context"
	"testing"

	"github.com/homework-evaluation/backend/internal/testhelper"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventCollector_Collect(t *testing.T) {
	client := testhelper.NewEntSqliteClient(t)
	ctx := context.Background()

	// 3 answer_submitted events
	for range 3 {
		_, err := client.Event.Create().
			SetType("answer_submitted").
			SetAccountID(1).
			Save(ctx)
		require.NoError(t, err)
	}

	// 2 submission_graded events
	for range 2 {
		_, err := client.Event.Create().
			SetType("submission_graded").
			SetAccountID(2).
			Save(ctx)
		require.NoError(t, err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(NewEventCollector(client))

	metrics, err := registry.Gather()
	require.NoError(t, err)
	require.Len(t, metrics, 1)

	metric := metrics[0]
	assert.Equal(t, "hwe_events_total", metric.GetName())

	metricMap := make(map[string]float64)
	for _, m := range metric.GetMetric() {
		require.Len(t, m.GetLabel(), 1)
		metricMap[m.GetLabel()[0].GetValue()] = m.GetGauge().GetValue()
	}

	assert.Equal(t, 3.0, metricMap["answer_submitted"])
	assert.Equal(t, 2.0, metricMap["submission_graded"])
}

func TestEventCollector_Collect_EmptyDatabase(t *testing.T) {
	client := testhelper.NewEntSqliteClient(t)

	registry := prometheus.NewRegistry()
	registry.MustRegister(NewEventCollector(client))

	metrics, err := registry.Gather()
	require.NoError(t, err, "Gather should not error even with empty database")
	require.Empty(t, metrics, "should have no metrics when database is empty")
}

func TestEventCollector_Describe(t *testing.T) {
	client := testhelper.NewEntSqliteClient(t)
	collector := NewEventCollector(client)

	ch := make(chan *prometheus.Desc, 1)
	collector.Describe(ch)
	close(ch)

	desc := <-ch
	require.NotNil(t, desc)
	assert.Contains(t, desc.String(), "hwe_events_total")
}
