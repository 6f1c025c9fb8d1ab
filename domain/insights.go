package domain

// Insights summarizes a projection for dashboards and reports.
type Insights struct {
	TotalPartnerRevenue    float64 `json:"total_partner_revenue"`
	AverageMonthlyRevenue  float64 `json:"average_monthly_revenue"`
	FinalTier              string  `json:"final_tier"`
	FinalSharePercent      float64 `json:"final_share_percent"`
	TotalConvertedUsers    int     `json:"total_converted_users"`
	MonthsToPartnerTier    *int    `json:"months_to_partner_tier"` // nil when unreachable
	TuningPeriodRevenue    float64 `json:"tuning_period_revenue"`
	FinalPeriodRevenue     float64 `json:"final_period_revenue"`
	FirstYearRevenue       float64 `json:"first_year_revenue"`
	ProjectedAnnualRevenue float64 `json:"projected_annual_revenue"`
	CurrentRevenuePerUser  float64 `json:"current_revenue_per_user"`
	TotalRevenuePerUser    float64 `json:"total_revenue_per_user"`
}
