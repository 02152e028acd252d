package report

import (
	"github.com/shopspring/decimal"

	"github.com/moneymap/backend/internal/domain/entity"
)

// TotalIncome sums the amounts of all income records.
func TotalIncome(records []*entity.Record) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if r.Type == entity.RecordTypeIncome {
			total = total.Add(r.Amount)
		}
	}
	return total
}

// TotalExpenses sums the amounts of all spending records (expense, bill,
// installment). Savings is excluded: this total feeds the spending
// displays, not the balance.
func TotalExpenses(records []*entity.Record) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if entity.IsSpendingType(r.Type) {
			total = total.Add(r.Amount)
		}
	}
	return total
}

// TotalOutgoings sums the amounts of all outflow records (expense, bill,
// savings, installment). Savings is included because money moved to
// savings reduces the spendable balance.
func TotalOutgoings(records []*entity.Record) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if entity.IsOutflowType(r.Type) {
			total = total.Add(r.Amount)
		}
	}
	return total
}

// TotalSavings sums the amounts of all savings records.
func TotalSavings(records []*entity.Record) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if r.Type == entity.RecordTypeSavings {
			total = total.Add(r.Amount)
		}
	}
	return total
}

// Balance returns income minus outgoings. May be negative.
func Balance(records []*entity.Record) decimal.Decimal {
	return TotalIncome(records).Sub(TotalOutgoings(records))
}
