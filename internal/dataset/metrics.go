package dataset

import (
	"sort"

	"github.com/sells-group/realty-insights/internal/model"
)

// AreaMetrics aggregates one area's year-sorted records.
type AreaMetrics struct {
	Area      string         `json:"area"`
	Records   []model.Record `json:"records"`
	Years     int            `json:"years"`
	First     model.Record   `json:"first"`
	Latest    model.Record   `json:"latest"`
	AvgPrice  float64        `json:"avg_price"`
	AvgDemand float64        `json:"avg_demand"`
	MinPrice  float64        `json:"min_price"`
	MaxPrice  float64        `json:"max_price"`
	Growth    float64        `json:"growth"` // percent, first to latest year
}

// ComputeMetrics sorts records by year and aggregates them. It returns false
// when records is empty.
func ComputeMetrics(area string, records []model.Record) (AreaMetrics, bool) {
	if len(records) == 0 {
		return AreaMetrics{Area: area}, false
	}

	sorted := sortByYear(records)
	m := AreaMetrics{
		Area:     area,
		Records:  sorted,
		Years:    len(sorted),
		First:    sorted[0],
		Latest:   sorted[len(sorted)-1],
		MinPrice: sorted[0].Price,
		MaxPrice: sorted[0].Price,
	}

	var priceSum, demandSum float64
	for _, r := range sorted {
		priceSum += r.Price
		demandSum += r.Demand
		if r.Price < m.MinPrice {
			m.MinPrice = r.Price
		}
		if r.Price > m.MaxPrice {
			m.MaxPrice = r.Price
		}
	}
	n := float64(len(sorted))
	m.AvgPrice = priceSum / n
	m.AvgDemand = demandSum / n
	m.Growth = Growth(m.First.Price, m.Latest.Price)

	return m, true
}

// Growth returns the percentage change from first to latest. A zero first
// price has no defined growth and yields 0.
func Growth(first, latest float64) float64 {
	if first == 0 {
		return 0
	}
	return (latest - first) / first * 100
}

// sortByYear returns a copy of records ordered by ascending year. Records of
// the same year keep their stored order.
func sortByYear(records []model.Record) []model.Record {
	sorted := make([]model.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Year < sorted[j].Year
	})
	return sorted
}
