package dto

import (
	"github.com/moneymap/backend/internal/application/usecase/report"
)

// ReportResponse represents the response for the report API.
type ReportResponse struct {
	Data ReportData `json:"data"`
}

// ReportData represents the data section of the report response.
type ReportData struct {
	Period     ReportPeriodResponse    `json:"period"`
	Totals     ReportTotalsResponse    `json:"totals"`
	Monthly    []MonthBucketResponse   `json:"monthly_series"`
	Balance    []BalancePointResponse  `json:"balance_series"`
	Categories []CategorySliceResponse `json:"category_series"`
}

// ReportPeriodResponse represents the resolved period bounds in the response.
type ReportPeriodResponse struct {
	Period    string `json:"period"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ReportTotalsResponse represents the period totals in the response.
type ReportTotalsResponse struct {
	Income    float64 `json:"income"`
	Expenses  float64 `json:"expenses"`
	Outgoings float64 `json:"outgoings"`
	Savings   float64 `json:"savings"`
	Balance   float64 `json:"balance"`
}

// MonthBucketResponse represents one bar of the monthly spending chart.
type MonthBucketResponse struct {
	Month string  `json:"month"`
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// BalancePointResponse represents one point of the balance line chart.
type BalancePointResponse struct {
	Date    string  `json:"date"`
	Label   string  `json:"label"`
	Balance float64 `json:"balance"`
}

// CategorySliceResponse represents one slice of the category pie chart.
type CategorySliceResponse struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ToReportResponse converts a GetReportOutput to ReportResponse DTO.
func ToReportResponse(output *report.GetReportOutput) ReportResponse {
	r := output.Report

	income, _ := r.Totals.Income.Float64()
	expenses, _ := r.Totals.Expenses.Float64()
	outgoings, _ := r.Totals.Outgoings.Float64()
	savings, _ := r.Totals.Savings.Float64()
	balance, _ := r.Totals.Balance.Float64()

	monthly := make([]MonthBucketResponse, len(r.Monthly))
	for i, b := range r.Monthly {
		total, _ := b.Total.Float64()
		monthly[i] = MonthBucketResponse{
			Month: b.Month,
			Date:  b.Date,
			Total: total,
		}
	}

	points := make([]BalancePointResponse, len(r.BalanceLine))
	for i, p := range r.BalanceLine {
		bal, _ := p.Balance.Float64()
		points[i] = BalancePointResponse{
			Date:    p.Date,
			Label:   p.Label,
			Balance: bal,
		}
	}

	categories := make([]CategorySliceResponse, len(r.Categories))
	for i, c := range r.Categories {
		value, _ := c.Value.Float64()
		categories[i] = CategorySliceResponse{
			Name:  c.Name,
			Value: value,
		}
	}

	return ReportResponse{
		Data: ReportData{
			Period: ReportPeriodResponse{
				Period:    string(r.Period),
				StartDate: r.PeriodStart.Format("2006-01-02"),
				EndDate:   r.PeriodEnd.Format("2006-01-02"),
			},
			Totals: ReportTotalsResponse{
				Income:    income,
				Expenses:  expenses,
				Outgoings: outgoings,
				Savings:   savings,
				Balance:   balance,
			},
			Monthly:    monthly,
			Balance:    points,
			Categories: categories,
		},
	}
}
