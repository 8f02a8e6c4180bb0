package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/realty-insights/internal/dataset"
)

func TestRecommend_Seed(t *testing.T) {
	ranked := Recommend(dataset.NewStore().Snapshot().AllMetrics())

	require.Len(t, ranked, 3)
	assert.Equal(t, "Wakad", ranked[0].Area)
	assert.Equal(t, "Akurdi", ranked[1].Area)
	assert.Equal(t, "Aundh", ranked[2].Area)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
	assert.InDelta(t, RecommendationScore(ranked[0].Growth, ranked[0].AvgDemand), ranked[0].Score, 0.0001)
}

func TestRecommend_AtMostThree(t *testing.T) {
	areas := []dataset.AreaMetrics{
		metricsFor(t, "A", [2]float64{1, 1}),
		metricsFor(t, "B", [2]float64{1, 5}),
		metricsFor(t, "C", [2]float64{1, 3}),
		metricsFor(t, "D", [2]float64{1, 9}),
		metricsFor(t, "E", [2]float64{1, 7}),
	}

	ranked := Recommend(areas)
	require.Len(t, ranked, 3)
	assert.Equal(t, "D", ranked[0].Area)
	assert.Equal(t, "E", ranked[1].Area)
	assert.Equal(t, "B", ranked[2].Area)
}

func TestRecommend_TiesKeepInputOrder(t *testing.T) {
	areas := []dataset.AreaMetrics{
		metricsFor(t, "First", [2]float64{1, 5}),
		metricsFor(t, "Second", [2]float64{1, 5}),
	}

	ranked := Recommend(areas)
	require.Len(t, ranked, 2)
	assert.Equal(t, "First", ranked[0].Area)
}

func TestRecommend_Empty(t *testing.T) {
	assert.Empty(t, Recommend(nil))
	assert.Empty(t, Recommend([]dataset.AreaMetrics{{Area: "Nothing"}}))
}

func TestRecommendationReport_Render(t *testing.T) {
	r := NewRecommendationReport(dataset.NewStore().Snapshot().AllMetrics())

	lines := r.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "• Wakad: ₹6,450,000 avg | +36.4% growth | "+Score(8.25)+" demand", lines[0])

	out := r.Render()
	assert.Contains(t, out, "TOP RECOMMENDATIONS")
	assert.Contains(t, out, lines[2])
}
