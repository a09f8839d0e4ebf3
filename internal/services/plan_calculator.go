package services

import (
	"math"
)

// PlanCalculator handles the arithmetic for splitting a total fee into a down
// payment and a monthly installment schedule.
type PlanCalculator struct {
}

// NewPlanCalculator creates a new plan calculator
func NewPlanCalculator() *PlanCalculator {
	return &PlanCalculator{}
}

// PlanBreakdown contains the result of a plan calculation
type PlanBreakdown struct {
	DownPaymentAmount float64 `json:"down_payment_amount"`
	Remaining         float64 `json:"remaining"`
	Monthly           float64 `json:"monthly"`
}

// CalculatePlan splits totalFee into a down payment and a monthly installment
// preview. The down payment is rounded to the nearest whole currency unit, so
// DownPaymentAmount + Remaining always equals totalFee exactly. The monthly
// preview is rounded to the nearest cent.
//
// Inputs are not range-checked: a termMonths of zero yields an infinite
// monthly preview, and downPercent is expected in [0,1] but not enforced.
func (pc *PlanCalculator) CalculatePlan(totalFee float64, termMonths int, downPercent float64) PlanBreakdown {
	downPaymentAmount := math.Round(totalFee * downPercent)
	remaining := totalFee - downPaymentAmount
	monthly := math.Round(remaining/float64(termMonths)*100) / 100

	return PlanBreakdown{
		DownPaymentAmount: downPaymentAmount,
		Remaining:         remaining,
		Monthly:           monthly,
	}
}

// CalculateAutopayMonthly computes the monthly amount actually charged on the
// recurring schedule: ceiling to the next whole currency unit. This is a
// different rounding policy than the nearest-cent preview from CalculatePlan,
// so the charged amount can exceed the previewed one by up to a dollar; the
// final installment correspondingly overshoots the remaining balance by at
// most termMonths - 1 whole units.
func (pc *PlanCalculator) CalculateAutopayMonthly(remaining float64, termMonths int) float64 {
	return math.Ceil(remaining / float64(termMonths))
}
