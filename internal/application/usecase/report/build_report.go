package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneymap/backend/internal/domain/entity"
)

// Totals holds the aggregated sums for the selected period.
type Totals struct {
	Income    decimal.Decimal
	Expenses  decimal.Decimal
	Outgoings decimal.Decimal
	Savings   decimal.Decimal
	Balance   decimal.Decimal
}

// Report is the full dashboard projection for one period selection:
// period-bounded totals plus the three chart series.
type Report struct {
	Period      Period
	PeriodStart time.Time
	PeriodEnd   time.Time
	Totals      Totals
	Monthly     []MonthBucket
	BalanceLine []BalancePoint
	Categories  []CategorySlice
}

// BuildReport composes the reporting facade. Totals are computed over the
// period-bounded subset; the monthly series covers the anchor's calendar
// year; the balance and category series always operate on the full
// record set. The input slice is never mutated.
func BuildReport(records []*entity.Record, period Period, anchor time.Time) *Report {
	start, end := PeriodBounds(anchor, period)
	inPeriod := FilterByPeriod(records, period, anchor)

	return &Report{
		Period:      period,
		PeriodStart: start,
		PeriodEnd:   end,
		Totals: Totals{
			Income:    TotalIncome(inPeriod),
			Expenses:  TotalExpenses(inPeriod),
			Outgoings: TotalOutgoings(inPeriod),
			Savings:   TotalSavings(inPeriod),
			Balance:   Balance(inPeriod),
		},
		Monthly:     MonthlySeries(records, anchor.Year()),
		BalanceLine: BalanceSeries(records),
		Categories:  CategoryBreakdown(records),
	}
}
