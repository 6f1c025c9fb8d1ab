package service

const (
	DefaultUnitPrice = 39.0 // precio por usuario convertido y periodo

	// Conversion applied during the first (tuning) period, as a fraction of the nominal rate.
	TuningPeriodFactor = 0.5

	// Cumulative converted users needed for the Partner tier.
	PartnerTierThreshold = 1000.0

	MaxConversionRate  = 100.0
	MaxMonthlyNewUsers = 10_000_000  // 10 millones por mes
	MaxUnitPrice       = 1_000_000.0 // precio máximo por usuario convertido
	DefaultMaxPeriods  = 600         // 50 años
	FirstYearPeriods   = 12
	FiftyPercentRatio  = 0.5
)
