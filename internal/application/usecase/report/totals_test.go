package report

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/moneymap/backend/internal/domain/entity"
)

func TestTotals(t *testing.T) {
	records := []*entity.Record{
		testRecord(entity.RecordTypeIncome, "1000.00", "", "2024-03-01"),
		testRecord(entity.RecordTypeExpense, "200.00", "Food", "2024-03-05"),
		testRecord(entity.RecordTypeBill, "100.00", "Utilities", "2024-03-10"),
		testRecord(entity.RecordTypeSavings, "150.00", "", "2024-03-12"),
		testRecord(entity.RecordTypeInstallment, "50.00", "Electronics", "2024-03-20"),
	}

	t.Run("income sums only income records", func(t *testing.T) {
		if got := TotalIncome(records); !got.Equal(decimal.RequireFromString("1000")) {
			t.Errorf("expected 1000, got %s", got)
		}
	})

	t.Run("expenses sum expense, bill and installment", func(t *testing.T) {
		if got := TotalExpenses(records); !got.Equal(decimal.RequireFromString("350")) {
			t.Errorf("expected 350, got %s", got)
		}
	})

	t.Run("outgoings additionally include savings", func(t *testing.T) {
		if got := TotalOutgoings(records); !got.Equal(decimal.RequireFromString("500")) {
			t.Errorf("expected 500, got %s", got)
		}
	})

	t.Run("savings sums only savings records", func(t *testing.T) {
		if got := TotalSavings(records); !got.Equal(decimal.RequireFromString("150")) {
			t.Errorf("expected 150, got %s", got)
		}
	})

	t.Run("balance is income minus outgoings", func(t *testing.T) {
		if got := Balance(records); !got.Equal(decimal.RequireFromString("500")) {
			t.Errorf("expected 500, got %s", got)
		}
	})

	t.Run("outgoings equal expenses plus savings", func(t *testing.T) {
		want := TotalExpenses(records).Add(TotalSavings(records))
		if got := TotalOutgoings(records); !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})
}

func TestTotals_EdgeCases(t *testing.T) {
	t.Run("empty record set yields zero totals", func(t *testing.T) {
		var records []*entity.Record

		for name, got := range map[string]decimal.Decimal{
			"income":    TotalIncome(records),
			"expenses":  TotalExpenses(records),
			"outgoings": TotalOutgoings(records),
			"savings":   TotalSavings(records),
			"balance":   Balance(records),
		} {
			if !got.IsZero() {
				t.Errorf("%s: expected zero, got %s", name, got)
			}
		}
	})

	t.Run("unknown types contribute to no total", func(t *testing.T) {
		records := []*entity.Record{
			testRecord(entity.RecordType("transfer"), "500.00", "", "2024-03-01"),
		}

		if !TotalIncome(records).IsZero() || !TotalOutgoings(records).IsZero() || !Balance(records).IsZero() {
			t.Error("expected unknown type to be excluded from all totals")
		}
	})

	t.Run("balance can go negative", func(t *testing.T) {
		records := []*entity.Record{
			testRecord(entity.RecordTypeIncome, "100.00", "", "2024-03-01"),
			testRecord(entity.RecordTypeExpense, "250.00", "Food", "2024-03-02"),
		}

		if got := Balance(records); !got.Equal(decimal.RequireFromString("-150")) {
			t.Errorf("expected -150, got %s", got)
		}
	})

	t.Run("decimal amounts sum without float drift", func(t *testing.T) {
		records := []*entity.Record{
			testRecord(entity.RecordTypeExpense, "0.10", "Food", "2024-03-01"),
			testRecord(entity.RecordTypeExpense, "0.20", "Food", "2024-03-02"),
		}

		if got := TotalExpenses(records); !got.Equal(decimal.RequireFromString("0.30")) {
			t.Errorf("expected 0.30, got %s", got)
		}
	})
}
