package service

import (
	"errors"
	"fmt"
	"math"

	"partner-revenue/domain"
)

// ErrInvalidParameter marks any input outside its declared domain.
var ErrInvalidParameter = errors.New("invalid parameter")

// ValidateInput checks every field before the engine runs, so a projection is
// either computed in full or not at all.
func ValidateInput(input domain.ProjectionInput, maxPeriods int) error {
	if input.MonthlyNewUsers < 0 {
		return fmt.Errorf("%w: monthly new users must not be negative", ErrInvalidParameter)
	}
	if input.MonthlyNewUsers > MaxMonthlyNewUsers {
		return fmt.Errorf("%w: monthly new users exceeds the maximum of %d", ErrInvalidParameter, MaxMonthlyNewUsers)
	}
	if math.IsNaN(input.ConversionRate) || input.ConversionRate < 0 || input.ConversionRate > MaxConversionRate {
		return fmt.Errorf("%w: conversion rate must be between 0 and %.0f", ErrInvalidParameter, MaxConversionRate)
	}
	if input.NumPeriods <= 0 {
		return fmt.Errorf("%w: number of periods must be positive", ErrInvalidParameter)
	}
	if maxPeriods > 0 && input.NumPeriods > maxPeriods {
		return fmt.Errorf("%w: number of periods exceeds the maximum of %d", ErrInvalidParameter, maxPeriods)
	}
	if math.IsNaN(input.UnitPrice) || math.IsInf(input.UnitPrice, 0) || input.UnitPrice < 0 {
		return fmt.Errorf("%w: unit price must not be negative", ErrInvalidParameter)
	}
	if input.UnitPrice > MaxUnitPrice {
		return fmt.Errorf("%w: unit price exceeds the maximum of %.2f", ErrInvalidParameter, MaxUnitPrice)
	}
	if math.IsNaN(input.CurrentAvgRevenuePerUser) || math.IsInf(input.CurrentAvgRevenuePerUser, 0) || input.CurrentAvgRevenuePerUser < 0 {
		return fmt.Errorf("%w: current average revenue per user must not be negative", ErrInvalidParameter)
	}
	return nil
}

// normalize fills defaults for optional fields.
func normalize(input domain.ProjectionInput) domain.ProjectionInput {
	if input.UnitPrice == 0 {
		input.UnitPrice = DefaultUnitPrice
	}
	return input
}
