package domain

// ProjectionInput holds the scalar assumptions for a single projection run.
type ProjectionInput struct {
	MonthlyNewUsers          int     `json:"monthly_new_users"`
	ConversionRate           float64 `json:"conversion_rate"` // percent, 0-100
	NumPeriods               int     `json:"num_periods"`
	UnitPrice                float64 `json:"unit_price,omitempty"` // 0 means the default price
	CurrentAvgRevenuePerUser float64 `json:"current_avg_revenue_per_user"`
}

// PeriodRecord is one simulated month. The float fields keep full precision;
// the *Display fields are floored for presentation only.
type PeriodRecord struct {
	Period                     int     `json:"period"`
	Label                      string  `json:"label"`
	NewUsers                   int     `json:"new_users"`
	CumulativeUsers            int     `json:"cumulative_users"`
	ConvertedUsers             float64 `json:"converted_users"`
	CumulativeConverted        float64 `json:"cumulative_converted"`
	ConvertedUsersDisplay      int     `json:"converted_users_display"`
	CumulativeConvertedDisplay int     `json:"cumulative_converted_display"`
	Tier                       string  `json:"tier"`
	SharePercent               float64 `json:"share_percent"`
	GrossRevenue               float64 `json:"gross_revenue"`
	PartnerRevenue             float64 `json:"partner_revenue"`
	CumulativePartnerRevenue   float64 `json:"cumulative_partner_revenue"`
	FiftyPercentTarget         float64 `json:"fifty_percent_target"`
}

type ComparisonMetrics struct {
	AdditionalRevenuePerUser float64 `json:"additional_revenue_per_user"`
	AdditionalRevenuePercent float64 `json:"additional_revenue_percent"`
}

type ProjectionResult struct {
	Input      ProjectionInput   `json:"input"`
	Records    []PeriodRecord    `json:"records"`
	Comparison ComparisonMetrics `json:"comparison"`
	Insights   Insights          `json:"insights"`
}
