package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/ougirez/planstat/internal/domain"
	"github.com/shopspring/decimal"
)

// EmptyResult is the record returned when no fact matches a request.
func EmptyResult() domain.StatisticsResult {
	return domain.StatisticsResult{
		TrendDirection:  domain.TrendStable,
		TrendAssessment: domain.AssessmentStable,
	}
}

// Calculate reduces yearly facts into a statistics record. entry supplies the
// reference and target values and may be nil. facts is not modified.
func Calculate(facts []*domain.Followup, entry *domain.DataEntry) domain.StatisticsResult {
	if len(facts) == 0 {
		return EmptyResult()
	}

	sorted := make([]*domain.Followup, len(facts))
	copy(sorted, facts)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Year < sorted[j].Year })

	earliest, latest := sorted[0], sorted[len(sorted)-1]
	yearRange := fmt.Sprintf("%d–%d", earliest.Year, latest.Year)

	res := domain.StatisticsResult{
		TotalDataPoints: len(sorted),
		LatestValue:     latest.Value,
		YearRange:       &yearRange,
		TrendDirection:  domain.TrendStable,
		TrendAssessment: domain.AssessmentStable,
	}

	if len(sorted) >= 2 {
		previous := sorted[len(sorted)-2]
		change := latest.Value - previous.Value
		res.ChangeFromPrevious = round2(change)
		res.PercentChangeFromPrevious = round2(ratioPercent(change, previous.Value))

		switch {
		case change > 0:
			res.TrendDirection = domain.TrendUp
		case change < 0:
			res.TrendDirection = domain.TrendDown
		}

		span := latest.Year - earliest.Year
		if span > 0 && earliest.Value != 0 {
			cagr := (math.Pow(latest.Value/earliest.Value, 1/float64(span)) - 1) * 100
			res.YearlyGrowthRate = round2(cagr)
		}
	}

	if entry != nil {
		res.ReferenceValue = entry.ReferenceValue
		res.ReferenceYear = entry.ReferenceYear
		res.TargetValue = entry.TargetValue
		res.TargetYear = entry.TargetYear

		// A zero target cannot be told apart from a missing one.
		if entry.TargetValue != 0 {
			gap := latest.Value - entry.TargetValue
			res.GapToTarget = round2(gap)
			res.PercentGapToTarget = round2(ratioPercent(gap, entry.TargetValue))
		}
	}

	return res
}

func ratioPercent(num, denom float64) float64 {
	if denom == 0 {
		return 0
	}
	return num / denom * 100
}

// round2 rounds half away from zero to two decimals. Non-finite values become 0.
func round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
