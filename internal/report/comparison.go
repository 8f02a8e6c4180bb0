package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/sells-group/realty-insights/internal/dataset"
)

// valuePriceGap is the largest average price premium the first area may carry
// and still be called the better value.
const valuePriceGap = 1_000_000

// ComparisonReport compares two areas' averages.
type ComparisonReport struct {
	First            string  `json:"first"`
	Second           string  `json:"second"`
	FirstAvgPrice    float64 `json:"first_avg_price"`
	SecondAvgPrice   float64 `json:"second_avg_price"`
	FirstAvgDemand   float64 `json:"first_avg_demand"`
	SecondAvgDemand  float64 `json:"second_avg_demand"`
	PriceDifference  float64 `json:"price_difference"`  // first minus second, rupees
	DemandDifference float64 `json:"demand_difference"` // first minus second, points
	BetterValue      string  `json:"better_value"`
}

// NewComparisonReport computes a ComparisonReport. The first area is the
// better value only when it has strictly higher average demand and its
// average price exceeds the second's by less than 1,000,000.
func NewComparisonReport(a, b dataset.AreaMetrics) ComparisonReport {
	r := ComparisonReport{
		First:            a.Area,
		Second:           b.Area,
		FirstAvgPrice:    a.AvgPrice,
		SecondAvgPrice:   b.AvgPrice,
		FirstAvgDemand:   a.AvgDemand,
		SecondAvgDemand:  b.AvgDemand,
		PriceDifference:  a.AvgPrice - b.AvgPrice,
		DemandDifference: a.AvgDemand - b.AvgDemand,
	}
	if a.AvgDemand > b.AvgDemand && r.PriceDifference < valuePriceGap {
		r.BetterValue = a.Area
	} else {
		r.BetterValue = b.Area
	}
	return r
}

// PriceInsight names the pricier area and by how much.
func (r ComparisonReport) PriceInsight() string {
	if r.PriceDifference > 0 {
		return fmt.Sprintf("%s is %s more expensive than %s", r.First, Money(r.PriceDifference), r.Second)
	}
	return fmt.Sprintf("%s is %s more expensive than %s", r.Second, Money(math.Abs(r.PriceDifference)), r.First)
}

// DemandInsight names the area with higher demand.
func (r ComparisonReport) DemandInsight() string {
	if r.DemandDifference > 0 {
		return fmt.Sprintf("%s has higher demand (+%.1f points)", r.First, r.DemandDifference)
	}
	return fmt.Sprintf("%s has higher demand (+%.1f points)", r.Second, math.Abs(r.DemandDifference))
}

func (r ComparisonReport) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "🏢 **COMPARISON REPORT: %s vs %s**\n\n", strings.ToUpper(r.First), strings.ToUpper(r.Second))

	b.WriteString("💰 **PRICING ANALYSIS**\n")
	fmt.Fprintf(&b, "• %s: %s (average)\n", r.First, Money(r.FirstAvgPrice))
	fmt.Fprintf(&b, "• %s: %s (average)\n", r.Second, Money(r.SecondAvgPrice))
	fmt.Fprintf(&b, "• %s\n\n", r.PriceInsight())

	b.WriteString("📊 **DEMAND METRICS**\n")
	fmt.Fprintf(&b, "• %s: %s (average demand)\n", r.First, Score(r.FirstAvgDemand))
	fmt.Fprintf(&b, "• %s: %s (average demand)\n", r.Second, Score(r.SecondAvgDemand))
	fmt.Fprintf(&b, "• %s\n\n", r.DemandInsight())

	b.WriteString("🎯 **RECOMMENDATION**\n")
	fmt.Fprintf(&b, "%s appears to offer better value based on current metrics.\n", r.BetterValue)
	return b.String()
}
