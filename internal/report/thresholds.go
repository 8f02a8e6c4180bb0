package report

// Segment buckets an area by average price.
type Segment string

const (
	SegmentPremium    Segment = "premium"
	SegmentMidRange   Segment = "mid-range"
	SegmentAffordable Segment = "affordable"
)

const (
	premiumPrice  = 8_000_000
	midRangePrice = 5_000_000
)

// SegmentFor classifies an average price.
func SegmentFor(avgPrice float64) Segment {
	switch {
	case avgPrice > premiumPrice:
		return SegmentPremium
	case avgPrice > midRangePrice:
		return SegmentMidRange
	default:
		return SegmentAffordable
	}
}

// Label returns the capitalized segment name.
func (s Segment) Label() string {
	switch s {
	case SegmentPremium:
		return "Premium"
	case SegmentMidRange:
		return "Mid-range"
	default:
		return "Affordable"
	}
}

// PriceTrend buckets total price growth.
type PriceTrend string

const (
	PriceTrendBullish PriceTrend = "Bullish"
	PriceTrendStable  PriceTrend = "Stable"
	PriceTrendBearish PriceTrend = "Bearish"
)

// PriceTrendFor classifies growth: >15 bullish, >0 stable, else bearish.
func PriceTrendFor(growth float64) PriceTrend {
	switch {
	case growth > 15:
		return PriceTrendBullish
	case growth > 0:
		return PriceTrendStable
	default:
		return PriceTrendBearish
	}
}

// Direction compares a current value with its average.
type Direction string

const (
	DirectionIncreasing Direction = "increasing"
	DirectionDecreasing Direction = "decreasing"
	DirectionStable     Direction = "stable"
)

// DirectionFor compares current against average directly.
func DirectionFor(current, average float64) Direction {
	switch {
	case current > average:
		return DirectionIncreasing
	case current < average:
		return DirectionDecreasing
	default:
		return DirectionStable
	}
}

// Level is a three-step high/medium/low rating.
type Level string

const (
	LevelHigh   Level = "High"
	LevelMedium Level = "Medium"
	LevelLow    Level = "Low"
)

func levelAtLeast(v, high, medium float64) Level {
	switch {
	case v >= high:
		return LevelHigh
	case v >= medium:
		return LevelMedium
	default:
		return LevelLow
	}
}

// DemandStatus buckets a current demand score.
type DemandStatus string

const (
	DemandHot     DemandStatus = "Hot Market"
	DemandGrowing DemandStatus = "Growing"
	DemandStable  DemandStatus = "Stable"
)

// DemandStatusFor classifies demand: >=8 hot, >=6 growing, else stable.
func DemandStatusFor(demand float64) DemandStatus {
	switch {
	case demand >= 8:
		return DemandHot
	case demand >= 6:
		return DemandGrowing
	default:
		return DemandStable
	}
}

// GrowthRating buckets total growth.
type GrowthRating string

const (
	GrowthStrong   GrowthRating = "Strong Growth"
	GrowthModerate GrowthRating = "Moderate Growth"
	GrowthStable   GrowthRating = "Stable"
)

// GrowthRatingFor classifies growth: >20 strong, >10 moderate, else stable.
func GrowthRatingFor(growth float64) GrowthRating {
	switch {
	case growth > 20:
		return GrowthStrong
	case growth > 10:
		return GrowthModerate
	default:
		return GrowthStable
	}
}

// Outlook is the forward-looking reading of growth.
type Outlook string

const (
	OutlookPositive Outlook = "Positive"
	OutlookNeutral  Outlook = "Neutral"
	OutlookCautious Outlook = "Cautious"
)

// OutlookFor classifies growth: >15 positive, >5 neutral, else cautious.
func OutlookFor(growth float64) Outlook {
	switch {
	case growth > 15:
		return OutlookPositive
	case growth > 5:
		return OutlookNeutral
	default:
		return OutlookCautious
	}
}

// Recommendation buckets an investment score.
type Recommendation string

const (
	RecommendExcellent Recommendation = "Excellent Opportunity"
	RecommendGood      Recommendation = "Good Potential"
	RecommendResearch  Recommendation = "Consider Research"
)

// RecommendationFor classifies a score: >70 excellent, >50 good, else research.
func RecommendationFor(score float64) Recommendation {
	switch {
	case score > 70:
		return RecommendExcellent
	case score > 50:
		return RecommendGood
	default:
		return RecommendResearch
	}
}

// Stability is the comprehensive report's market stability reading.
type Stability string

const (
	StabilityHigh     Stability = "High"
	StabilityMedium   Stability = "Medium"
	StabilityVolatile Stability = "Volatile"
)

// StabilityFor is high with positive growth and demand above 7, medium with
// demand above 5, else volatile.
func StabilityFor(growth, avgDemand float64) Stability {
	switch {
	case growth > 0 && avgDemand > 7:
		return StabilityHigh
	case avgDemand > 5:
		return StabilityMedium
	default:
		return StabilityVolatile
	}
}

// Outcome is the one-word narrative classification of a market.
type Outcome string

const (
	OutcomeHighPotential Outcome = "high-potential"
	OutcomeStable        Outcome = "stable"
	OutcomeDeveloping    Outcome = "developing"
)

// OutcomeFor is high-potential with demand >=7 and growth >15, stable with
// demand >=5 and growth >5, else developing.
func OutcomeFor(growth, avgDemand float64) Outcome {
	switch {
	case avgDemand >= 7 && growth > 15:
		return OutcomeHighPotential
	case avgDemand >= 5 && growth > 5:
		return OutcomeStable
	default:
		return OutcomeDeveloping
	}
}
