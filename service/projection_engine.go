package service

import (
	"fmt"
	"math"

	"partner-revenue/domain"
)

// Simulate projects month-by-month growth of the converted cohort and the
// partner revenue it earns. Inputs are assumed valid (see ValidateInput).
//
// The cumulative converted accumulator keeps full float precision; only the
// *Display fields are floored, so tier crossings are never shifted by
// truncation.
func Simulate(
	monthlyNewUsers int,
	conversionRate float64,
	numPeriods int,
	unitPrice float64,
) []domain.PeriodRecord {
	if numPeriods <= 0 {
		return []domain.PeriodRecord{}
	}
	records := make([]domain.PeriodRecord, 0, numPeriods)

	newUsers := float64(monthlyNewUsers)
	cumulativeUsers := 0
	cumulativeConverted := 0.0
	cumulativeRevenue := 0.0

	for p := 1; p <= numPeriods; p++ {
		cumulativeUsers += monthlyNewUsers

		// Primer mes: periodo de ajuste, la mitad de la conversión
		effectiveRate := conversionRate / 100
		if p == 1 {
			effectiveRate *= TuningPeriodFactor
		}

		converted := newUsers * effectiveRate
		cumulativeConverted += converted

		// El tier se evalúa con el acumulado posterior al periodo
		tierName, share := TierFor(cumulativeConverted)

		gross := converted * unitPrice
		partner := gross * (share / 100)
		cumulativeRevenue += partner

		records = append(records, domain.PeriodRecord{
			Period:                     p,
			Label:                      fmt.Sprintf("Month %d", p),
			NewUsers:                   monthlyNewUsers,
			CumulativeUsers:            cumulativeUsers,
			ConvertedUsers:             converted,
			CumulativeConverted:        cumulativeConverted,
			ConvertedUsersDisplay:      int(math.Floor(converted)),
			CumulativeConvertedDisplay: int(math.Floor(cumulativeConverted)),
			Tier:                       tierName,
			SharePercent:               share,
			GrossRevenue:               gross,
			PartnerRevenue:             partner,
			CumulativePartnerRevenue:   cumulativeRevenue,
			FiftyPercentTarget:         cumulativeRevenue * FiftyPercentRatio,
		})
	}

	return records
}

// ComparisonMetrics estimates the steady-state additional revenue per user at
// the run's final tier. It ignores the tuning-period discount on purpose.
// A zero baseline yields a zero percent instead of dividing by zero.
func ComparisonMetrics(
	records []domain.PeriodRecord,
	conversionRate float64,
	currentAvgRevenuePerUser float64,
	unitPrice float64,
) domain.ComparisonMetrics {
	var finalShare float64
	if len(records) > 0 {
		finalShare = records[len(records)-1].SharePercent
	} else {
		_, finalShare = TierFor(0)
	}

	perUser := unitPrice * (conversionRate / 100) * (finalShare / 100)

	percent := 0.0
	if currentAvgRevenuePerUser > 0 {
		percent = perUser / currentAvgRevenuePerUser * 100
	}

	return domain.ComparisonMetrics{
		AdditionalRevenuePerUser: perUser,
		AdditionalRevenuePercent: percent,
	}
}

// MonthsToReachTier is a rough estimate of the periods needed to reach
// targetThreshold converted users at the full conversion rate. It reports
// false when nothing converts and the threshold can never be reached.
func MonthsToReachTier(
	monthlyNewUsers int,
	conversionRate float64,
	targetThreshold float64,
) (int, bool) {
	perPeriod := float64(monthlyNewUsers) * conversionRate / 100
	if perPeriod <= 0 {
		return 0, false
	}
	return int(math.Ceil(targetThreshold / perPeriod)), true
}
