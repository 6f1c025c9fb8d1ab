package service

import (
	"errors"
	"math"
	"testing"

	"partner-revenue/domain"
)

func validInput() domain.ProjectionInput {
	return domain.ProjectionInput{
		MonthlyNewUsers:          100,
		ConversionRate:           10,
		NumPeriods:               12,
		CurrentAvgRevenuePerUser: 25,
	}
}

func TestValidateInput_Valid(t *testing.T) {
	if err := ValidateInput(validInput(), DefaultMaxPeriods); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	edge := domain.ProjectionInput{MonthlyNewUsers: 0, ConversionRate: 100, NumPeriods: 1}
	if err := ValidateInput(edge, DefaultMaxPeriods); err != nil {
		t.Fatalf("unexpected error for edge input: %v", err)
	}

	upper := domain.ProjectionInput{
		MonthlyNewUsers: MaxMonthlyNewUsers,
		ConversionRate:  100,
		NumPeriods:      DefaultMaxPeriods,
		UnitPrice:       MaxUnitPrice,
	}
	if err := ValidateInput(upper, DefaultMaxPeriods); err != nil {
		t.Fatalf("unexpected error at upper bounds: %v", err)
	}
}

func TestValidateInput_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.ProjectionInput)
	}{
		{"negative users", func(in *domain.ProjectionInput) { in.MonthlyNewUsers = -1 }},
		{"negative rate", func(in *domain.ProjectionInput) { in.ConversionRate = -0.5 }},
		{"rate above 100", func(in *domain.ProjectionInput) { in.ConversionRate = 100.5 }},
		{"NaN rate", func(in *domain.ProjectionInput) { in.ConversionRate = math.NaN() }},
		{"zero periods", func(in *domain.ProjectionInput) { in.NumPeriods = 0 }},
		{"negative periods", func(in *domain.ProjectionInput) { in.NumPeriods = -3 }},
		{"too many periods", func(in *domain.ProjectionInput) { in.NumPeriods = DefaultMaxPeriods + 1 }},
		{"too many users", func(in *domain.ProjectionInput) { in.MonthlyNewUsers = MaxMonthlyNewUsers + 1 }},
		{"overflowing users", func(in *domain.ProjectionInput) { in.MonthlyNewUsers = math.MaxInt64 / 2 }},
		{"price above max", func(in *domain.ProjectionInput) { in.UnitPrice = MaxUnitPrice + 0.01 }},
		{"huge price", func(in *domain.ProjectionInput) { in.UnitPrice = 1e308 }},
		{"negative price", func(in *domain.ProjectionInput) { in.UnitPrice = -39 }},
		{"infinite price", func(in *domain.ProjectionInput) { in.UnitPrice = math.Inf(1) }},
		{"negative baseline", func(in *domain.ProjectionInput) { in.CurrentAvgRevenuePerUser = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			err := ValidateInput(in, DefaultMaxPeriods)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestNormalize_DefaultPrice(t *testing.T) {
	in := normalize(validInput())
	if in.UnitPrice != DefaultUnitPrice {
		t.Errorf("expected default price %.2f, got %.2f", DefaultUnitPrice, in.UnitPrice)
	}

	custom := validInput()
	custom.UnitPrice = 49
	if got := normalize(custom).UnitPrice; got != 49 {
		t.Errorf("expected explicit price to be kept, got %.2f", got)
	}
}
