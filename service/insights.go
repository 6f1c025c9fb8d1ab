package service

import (
	"math"

	"partner-revenue/domain"
)

// BuildInsights aggregates a simulated run into the headline figures shown
// next to the charts.
func BuildInsights(
	records []domain.PeriodRecord,
	input domain.ProjectionInput,
	comparison domain.ComparisonMetrics,
) domain.Insights {
	insights := domain.Insights{
		CurrentRevenuePerUser: input.CurrentAvgRevenuePerUser,
		TotalRevenuePerUser:   input.CurrentAvgRevenuePerUser + comparison.AdditionalRevenuePerUser,
	}

	if months, ok := MonthsToReachTier(input.MonthlyNewUsers, input.ConversionRate, PartnerTierThreshold); ok {
		insights.MonthsToPartnerTier = &months
	}

	if len(records) == 0 {
		insights.FinalTier, insights.FinalSharePercent = TierFor(0)
		return insights
	}

	first := records[0]
	last := records[len(records)-1]

	sum := 0.0
	for _, r := range records {
		sum += r.PartnerRevenue
	}
	avg := sum / float64(len(records))

	insights.TotalPartnerRevenue = last.CumulativePartnerRevenue
	insights.AverageMonthlyRevenue = avg
	insights.FinalTier = last.Tier
	insights.FinalSharePercent = last.SharePercent
	insights.TotalConvertedUsers = int(math.Floor(last.CumulativeConverted))
	insights.TuningPeriodRevenue = first.PartnerRevenue
	insights.FinalPeriodRevenue = last.PartnerRevenue
	insights.ProjectedAnnualRevenue = avg * FirstYearPeriods

	// Ingresos del primer año: mes 12 si existe, si no el último
	if len(records) >= FirstYearPeriods {
		insights.FirstYearRevenue = records[FirstYearPeriods-1].CumulativePartnerRevenue
	} else {
		insights.FirstYearRevenue = last.CumulativePartnerRevenue
	}

	return insights
}
