// Package finance implements the loan amortization calculator behind the
// finance options page.
package finance

import (
	"errors"
	"math"
)

// LoanInput are the five parameters of a vehicle finance quote.
type LoanInput struct {
	Price          float64 `json:"price"`
	Deposit        float64 `json:"deposit"`
	AnnualRate     float64 `json:"annualRate"`     // percent, e.g. 9.5
	TermMonths     int     `json:"termMonths"`
	BalloonPercent float64 `json:"balloonPercent"` // 0-100, percent of price due at term end
}

// LoanSummary is the computed cost breakdown of a quote.
type LoanSummary struct {
	MonthlyPayment float64 `json:"monthlyPayment"`
	BalloonAmount  float64 `json:"balloonAmount"`
	TotalPayments  float64 `json:"totalPayments"`
	TotalInterest  float64 `json:"totalInterest"`
	TotalCost      float64 `json:"totalCost"`
}

var (
	ErrInvalidTerm    = errors.New("loan term must be at least one month")
	ErrInvalidBalloon = errors.New("balloon percentage must be between 0 and 100")
)

// Calculate computes the monthly installment and totals for a loan. A balloon
// percentage reduces the financed principal and is added back into the total
// cost. A zero interest rate amortizes linearly (principal / term) instead of
// dividing by zero in the standard formula.
func Calculate(in LoanInput) (LoanSummary, error) {
	if in.TermMonths <= 0 {
		return LoanSummary{}, ErrInvalidTerm
	}

	if in.BalloonPercent < 0 || in.BalloonPercent > 100 {
		return LoanSummary{}, ErrInvalidBalloon
	}

	balloon := in.Price * (in.BalloonPercent / 100)
	principal := in.Price - in.Deposit
	if in.BalloonPercent > 0 {
		principal -= balloon
	}

	monthlyRate := in.AnnualRate / 100 / 12
	term := float64(in.TermMonths)

	var payment float64
	if monthlyRate == 0 {
		payment = principal / term
	} else {
		growth := math.Pow(1+monthlyRate, term)
		payment = principal * monthlyRate * growth / (growth - 1)
	}

	totalPayments := payment * term

	return LoanSummary{
		MonthlyPayment: payment,
		BalloonAmount:  balloon,
		TotalPayments:  totalPayments,
		TotalInterest:  totalPayments - principal,
		TotalCost:      totalPayments + in.Deposit + balloon,
	}, nil
}
