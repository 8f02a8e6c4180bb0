package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentFor(t *testing.T) {
	assert.Equal(t, SegmentPremium, SegmentFor(8_000_001))
	assert.Equal(t, SegmentMidRange, SegmentFor(8_000_000))
	assert.Equal(t, SegmentMidRange, SegmentFor(5_000_001))
	assert.Equal(t, SegmentAffordable, SegmentFor(5_000_000))
	assert.Equal(t, "Mid-range", SegmentMidRange.Label())
}

func TestPriceTrendFor(t *testing.T) {
	assert.Equal(t, PriceTrendBullish, PriceTrendFor(15.1))
	assert.Equal(t, PriceTrendStable, PriceTrendFor(15))
	assert.Equal(t, PriceTrendStable, PriceTrendFor(0.1))
	assert.Equal(t, PriceTrendBearish, PriceTrendFor(0))
	assert.Equal(t, PriceTrendBearish, PriceTrendFor(-3))
}

func TestDirectionFor(t *testing.T) {
	assert.Equal(t, DirectionIncreasing, DirectionFor(9, 8))
	assert.Equal(t, DirectionDecreasing, DirectionFor(7, 8))
	assert.Equal(t, DirectionStable, DirectionFor(8, 8))
}

func TestDemandStatusFor(t *testing.T) {
	assert.Equal(t, DemandHot, DemandStatusFor(8))
	assert.Equal(t, DemandGrowing, DemandStatusFor(6))
	assert.Equal(t, DemandStable, DemandStatusFor(5.9))
}

func TestGrowthRatingAndOutlook(t *testing.T) {
	assert.Equal(t, GrowthStrong, GrowthRatingFor(20.5))
	assert.Equal(t, GrowthModerate, GrowthRatingFor(20))
	assert.Equal(t, GrowthStable, GrowthRatingFor(10))

	assert.Equal(t, OutlookPositive, OutlookFor(16))
	assert.Equal(t, OutlookNeutral, OutlookFor(15))
	assert.Equal(t, OutlookCautious, OutlookFor(5))
}

func TestRecommendationFor(t *testing.T) {
	assert.Equal(t, RecommendExcellent, RecommendationFor(70.1))
	assert.Equal(t, RecommendGood, RecommendationFor(70))
	assert.Equal(t, RecommendResearch, RecommendationFor(50))
}

func TestStabilityFor(t *testing.T) {
	assert.Equal(t, StabilityHigh, StabilityFor(1, 7.1))
	assert.Equal(t, StabilityMedium, StabilityFor(0, 7.1))
	assert.Equal(t, StabilityMedium, StabilityFor(10, 5.1))
	assert.Equal(t, StabilityVolatile, StabilityFor(10, 5))
}

func TestOutcomeFor(t *testing.T) {
	assert.Equal(t, OutcomeHighPotential, OutcomeFor(15.1, 7))
	assert.Equal(t, OutcomeStable, OutcomeFor(15, 7))
	assert.Equal(t, OutcomeStable, OutcomeFor(5.1, 5))
	assert.Equal(t, OutcomeDeveloping, OutcomeFor(5, 9))
	assert.Equal(t, OutcomeDeveloping, OutcomeFor(30, 4.9))
}
