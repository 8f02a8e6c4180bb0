package report

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sells-group/realty-insights/internal/dataset"
	"github.com/sells-group/realty-insights/internal/model"
)

// metricsFor builds metrics for one area from (price, demand) pairs starting in 2020.
func metricsFor(t *testing.T, area string, points ...[2]float64) dataset.AreaMetrics {
	t.Helper()
	records := make([]model.Record, 0, len(points))
	for i, p := range points {
		records = append(records, model.Record{Year: 2020 + i, Area: area, Price: p[0], Demand: p[1]})
	}
	m, ok := dataset.ComputeMetrics(area, records)
	require.True(t, ok)
	return m
}

func seedMetrics(t *testing.T, area string) dataset.AreaMetrics {
	t.Helper()
	m, ok := dataset.NewStore().Snapshot().Metrics(area)
	require.True(t, ok)
	return m
}
