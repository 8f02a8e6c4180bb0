package report

import (
	"fmt"
	"strings"

	"github.com/sells-group/realty-insights/internal/dataset"
)

// PriceReport focuses on an area's pricing.
type PriceReport struct {
	Area    string     `json:"area"`
	Latest  float64    `json:"latest"`
	Average float64    `json:"average"`
	Min     float64    `json:"min"`
	Max     float64    `json:"max"`
	Growth  float64    `json:"growth"`
	Trend   PriceTrend `json:"trend"`
	Segment Segment    `json:"segment"`
}

// NewPriceReport computes a PriceReport.
func NewPriceReport(m dataset.AreaMetrics) PriceReport {
	return PriceReport{
		Area:    m.Area,
		Latest:  m.Latest.Price,
		Average: m.AvgPrice,
		Min:     m.MinPrice,
		Max:     m.MaxPrice,
		Growth:  m.Growth,
		Trend:   PriceTrendFor(m.Growth),
		Segment: SegmentFor(m.AvgPrice),
	}
}

func (r PriceReport) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "💰 **PRICE ANALYSIS: %s**\n\n", strings.ToUpper(r.Area))

	b.WriteString("📊 **Current Market Price**\n")
	fmt.Fprintf(&b, "• Latest: %s\n", Money(r.Latest))
	fmt.Fprintf(&b, "• Average: %s\n", Money(r.Average))
	fmt.Fprintf(&b, "• Range: %s - %s\n\n", Money(r.Min), Money(r.Max))

	b.WriteString("📈 **Price Performance**\n")
	fmt.Fprintf(&b, "• Growth: %s over time\n", Percent(r.Growth))
	fmt.Fprintf(&b, "• Trend: %s\n\n", r.Trend)

	b.WriteString("💡 **Market Position**\n")
	fmt.Fprintf(&b, "%s is in the %s segment.\n", r.Area, r.Segment)
	return b.String()
}

// DemandReport focuses on an area's demand score.
type DemandReport struct {
	Area        string       `json:"area"`
	Current     float64      `json:"current"`
	Average     float64      `json:"average"`
	Trend       Direction    `json:"trend"`
	Status      DemandStatus `json:"status"`
	Competition Level        `json:"competition"`
}

// NewDemandReport computes a DemandReport.
func NewDemandReport(m dataset.AreaMetrics) DemandReport {
	current := m.Latest.Demand
	return DemandReport{
		Area:        m.Area,
		Current:     current,
		Average:     m.AvgDemand,
		Trend:       DirectionFor(current, m.AvgDemand),
		Status:      DemandStatusFor(current),
		Competition: levelAtLeast(current, 8, 6),
	}
}

func (r DemandReport) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 **DEMAND ANALYSIS: %s**\n\n", strings.ToUpper(r.Area))

	b.WriteString("🔥 **Current Demand Level**\n")
	fmt.Fprintf(&b, "• Current: %s\n", Score(r.Current))
	fmt.Fprintf(&b, "• Average: %s\n", Score(r.Average))
	fmt.Fprintf(&b, "• Trend: %s\n\n", r.Trend)

	b.WriteString("🎯 **Market Popularity**\n")
	fmt.Fprintf(&b, "• Status: %s\n", r.Status)
	fmt.Fprintf(&b, "• Competition: %s\n\n", r.Competition)

	b.WriteString("💡 **Insight**\n")
	fmt.Fprintf(&b, "This area shows %s market interest.\n", r.Trend)
	return b.String()
}

// GrowthReport focuses on price appreciation.
type GrowthReport struct {
	Area       string       `json:"area"`
	Growth     float64      `json:"growth"`
	Annualized float64      `json:"annualized"`
	Years      int          `json:"years"`
	Rating     GrowthRating `json:"rating"`
	Outlook    Outlook      `json:"outlook"`
}

// NewGrowthReport computes a GrowthReport. Annualized growth is total growth
// divided by the number of yearly records.
func NewGrowthReport(m dataset.AreaMetrics) GrowthReport {
	var annualized float64
	if m.Years > 0 {
		annualized = m.Growth / float64(m.Years)
	}
	return GrowthReport{
		Area:       m.Area,
		Growth:     m.Growth,
		Annualized: annualized,
		Years:      m.Years,
		Rating:     GrowthRatingFor(m.Growth),
		Outlook:    OutlookFor(m.Growth),
	}
}

func (r GrowthReport) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "📈 **GROWTH ANALYSIS: %s**\n\n", strings.ToUpper(r.Area))

	b.WriteString("🚀 **Performance Metrics**\n")
	fmt.Fprintf(&b, "• Total Growth: %s\n", Percent(r.Growth))
	fmt.Fprintf(&b, "• Annualized: %s per year\n", Percent(r.Annualized))
	fmt.Fprintf(&b, "• Data Period: %d years\n\n", r.Years)

	b.WriteString("📊 **Growth Rating**\n")
	fmt.Fprintf(&b, "• Trend: %s\n", r.Rating)
	fmt.Fprintf(&b, "• Outlook: %s\n\n", r.Outlook)

	b.WriteString("💡 **Investment Perspective**\n")
	fmt.Fprintf(&b, "This area has shown %s appreciation historically.\n", Percent(r.Growth))
	return b.String()
}

// Investment score weights.
const (
	investmentGrowthWeight = 0.6
	investmentDemandWeight = 4
)

// InvestmentScore combines growth and average demand into a rough 0-100 score.
func InvestmentScore(growth, avgDemand float64) float64 {
	return growth*investmentGrowthWeight + avgDemand*investmentDemandWeight
}

// InvestmentReport scores an area as an investment.
type InvestmentReport struct {
	Area           string         `json:"area"`
	Score          float64        `json:"score"`
	Growth         float64        `json:"growth"`
	AvgDemand      float64        `json:"avg_demand"`
	Stability      Level          `json:"stability"`
	Recommendation Recommendation `json:"recommendation"`
}

// NewInvestmentReport computes an InvestmentReport.
func NewInvestmentReport(m dataset.AreaMetrics) InvestmentReport {
	score := InvestmentScore(m.Growth, m.AvgDemand)
	return InvestmentReport{
		Area:           m.Area,
		Score:          score,
		Growth:         m.Growth,
		AvgDemand:      m.AvgDemand,
		Stability:      levelAtLeast(m.AvgDemand, 7, 5),
		Recommendation: RecommendationFor(score),
	}
}

func (r InvestmentReport) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "💼 **INVESTMENT ANALYSIS: %s**\n\n", strings.ToUpper(r.Area))
	fmt.Fprintf(&b, "⭐ **Investment Score: %.1f/100**\n\n", r.Score)

	b.WriteString("📊 **Key Metrics**\n")
	fmt.Fprintf(&b, "• Price Growth: %s\n", Percent(r.Growth))
	fmt.Fprintf(&b, "• Demand Level: %s\n", Score(r.AvgDemand))
	fmt.Fprintf(&b, "• Market Stability: %s\n\n", r.Stability)

	b.WriteString("🎯 **Recommendation**\n")
	fmt.Fprintf(&b, "%s\n\n", r.Recommendation)

	b.WriteString("💡 **Why Invest Here?**\n")
	b.WriteString("• Strong historical performance\n")
	fmt.Fprintf(&b, "• %s demand indicates good liquidity\n", Score(r.AvgDemand))
	fmt.Fprintf(&b, "• %s growth shows market confidence\n", Percent(r.Growth))
	return b.String()
}

// ComprehensiveReport combines pricing, demand, and market readings.
type ComprehensiveReport struct {
	Area            string    `json:"area"`
	LatestPrice     float64   `json:"latest_price"`
	AvgPrice        float64   `json:"avg_price"`
	Growth          float64   `json:"growth"`
	CurrentDemand   float64   `json:"current_demand"`
	AvgDemand       float64   `json:"avg_demand"`
	DemandDirection Direction `json:"demand_direction"`
	Segment         Segment   `json:"segment"`
	Stability       Stability `json:"stability"`
	Years           int       `json:"years"`
	Size            *float64  `json:"size,omitempty"` // latest record's property size
	Outcome         Outcome   `json:"outcome"`
}

// NewComprehensiveReport computes a ComprehensiveReport.
func NewComprehensiveReport(m dataset.AreaMetrics) ComprehensiveReport {
	return ComprehensiveReport{
		Area:            m.Area,
		LatestPrice:     m.Latest.Price,
		AvgPrice:        m.AvgPrice,
		Growth:          m.Growth,
		CurrentDemand:   m.Latest.Demand,
		AvgDemand:       m.AvgDemand,
		DemandDirection: DirectionFor(m.Latest.Demand, m.AvgDemand),
		Segment:         SegmentFor(m.AvgPrice),
		Stability:       StabilityFor(m.Growth, m.AvgDemand),
		Years:           m.Years,
		Size:            m.Latest.Size,
		Outcome:         OutcomeFor(m.Growth, m.AvgDemand),
	}
}

func (r ComprehensiveReport) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "🏢 **COMPREHENSIVE ANALYSIS: %s**\n\n", strings.ToUpper(r.Area))

	b.WriteString("💰 **PRICING**\n")
	fmt.Fprintf(&b, "• Current: %s\n", Money(r.LatestPrice))
	fmt.Fprintf(&b, "• Average: %s\n", Money(r.AvgPrice))
	fmt.Fprintf(&b, "• Growth: %s\n\n", Percent(r.Growth))

	b.WriteString("📊 **DEMAND & POPULARITY**\n")
	fmt.Fprintf(&b, "• Current: %s\n", Score(r.CurrentDemand))
	fmt.Fprintf(&b, "• Average: %s\n", Score(r.AvgDemand))
	fmt.Fprintf(&b, "• Trend: %s\n\n", demandArrow(r.DemandDirection))

	b.WriteString("📈 **MARKET INSIGHTS**\n")
	fmt.Fprintf(&b, "• Segment: %s\n", r.Segment.Label())
	fmt.Fprintf(&b, "• Stability: %s\n", r.Stability)
	fmt.Fprintf(&b, "• Data Coverage: %d years\n", r.Years)
	if r.Size != nil {
		fmt.Fprintf(&b, "• Property Size: %.0f sq.ft\n", *r.Size)
	}
	b.WriteString("\n")

	b.WriteString("💡 **OVERVIEW**\n")
	fmt.Fprintf(&b, "%s presents a %s demand market with %s historical growth, positioning it as a %s real estate market.\n",
		r.Area, Score(r.AvgDemand), Percent(r.Growth), r.Outcome)
	return b.String()
}

func demandArrow(d Direction) string {
	switch d {
	case DirectionIncreasing:
		return "📈 Rising"
	case DirectionDecreasing:
		return "📉 Falling"
	default:
		return "➡️ Stable"
	}
}
