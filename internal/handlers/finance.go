package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karoo-dev/karoo/internal/finance"
)

type FinanceRequest struct {
	Price          float64 `json:"price" binding:"required"`
	Deposit        float64 `json:"deposit"`
	AnnualRate     float64 `json:"annualRate"`
	TermMonths     int     `json:"termMonths" binding:"required"`
	BalloonPercent float64 `json:"balloonPercent"`
}

// CalculateFinance returns the amortization breakdown for a quote. The
// calculation is pure; the endpoint exists so every client renders the same
// numbers.
func CalculateFinance(ctx *gin.Context) {
	var body FinanceRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	summary, err := finance.Calculate(finance.LoanInput{
		Price:          body.Price,
		Deposit:        body.Deposit,
		AnnualRate:     body.AnnualRate,
		TermMonths:     body.TermMonths,
		BalloonPercent: body.BalloonPercent,
	})

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, summary)
}
