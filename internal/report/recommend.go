package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sells-group/realty-insights/internal/dataset"
)

// Recommendation score weights and list length.
const (
	recommendGrowthWeight = 0.4
	recommendDemandWeight = 6
	maxRecommendations    = 3
)

// RankedArea is one area in the recommendation list.
type RankedArea struct {
	Area      string  `json:"area"`
	Score     float64 `json:"score"`
	Growth    float64 `json:"growth"`
	AvgDemand float64 `json:"avg_demand"`
	AvgPrice  float64 `json:"avg_price"`
}

// RecommendationScore ranks an area by growth and average demand.
func RecommendationScore(growth, avgDemand float64) float64 {
	return growth*recommendGrowthWeight + avgDemand*recommendDemandWeight
}

// Recommend scores every area and returns the top three by descending score.
// Ties keep the input order.
func Recommend(areas []dataset.AreaMetrics) []RankedArea {
	ranked := make([]RankedArea, 0, len(areas))
	for _, m := range areas {
		if m.Years == 0 {
			continue
		}
		ranked = append(ranked, RankedArea{
			Area:      m.Area,
			Score:     RecommendationScore(m.Growth, m.AvgDemand),
			Growth:    m.Growth,
			AvgDemand: m.AvgDemand,
			AvgPrice:  m.AvgPrice,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if len(ranked) > maxRecommendations {
		ranked = ranked[:maxRecommendations]
	}
	return ranked
}

// RecommendationReport wraps the ranked list.
type RecommendationReport struct {
	Areas []RankedArea `json:"areas"`
}

// NewRecommendationReport ranks areas into a RecommendationReport.
func NewRecommendationReport(areas []dataset.AreaMetrics) RecommendationReport {
	return RecommendationReport{Areas: Recommend(areas)}
}

// Lines renders one bullet per ranked area.
func (r RecommendationReport) Lines() []string {
	lines := make([]string, 0, len(r.Areas))
	for _, a := range r.Areas {
		lines = append(lines, fmt.Sprintf("• %s: %s avg | %s growth | %s demand",
			a.Area, Money(a.AvgPrice), Percent(a.Growth), Score(a.AvgDemand)))
	}
	return lines
}

func (r RecommendationReport) Render() string {
	var b strings.Builder
	b.WriteString("🏆 **TOP RECOMMENDATIONS**\n\n")
	b.WriteString("Based on current market data:\n\n")
	b.WriteString(strings.Join(r.Lines(), "\n"))
	b.WriteString("\n\n💡 Ask about specific areas for detailed analysis!")
	return b.String()
}
