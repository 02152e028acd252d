package steps

import (
	"context"
	"testing"

	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"

	"github.com/moneymap/backend/internal/domain/entity"
	"github.com/moneymap/backend/internal/integration/persistence"
	"github.com/moneymap/backend/test/integration/mock"
)

// newTable builds a godog table from rows of cell values. godog tables are
// messages.PickleTable values, so the rows use the pickle row/cell types.
func newTable(rows ...[]string) *godog.Table {
	table := &godog.Table{}
	for _, row := range rows {
		cells := make([]*messages.PickleTableCell, 0, len(row))
		for _, value := range row {
			cells = append(cells, &messages.PickleTableCell{Value: value})
		}
		table.Rows = append(table.Rows, &messages.PickleTableRow{Cells: cells})
	}
	return table
}

func newStepTestContext(t *testing.T) (context.Context, *TestContext) {
	t.Helper()

	db := mock.NewDb()
	if err := mock.ResetDb(db); err != nil {
		t.Fatalf("failed to reset database: %v", err)
	}

	tc := &TestContext{db: db}
	return SetTestContext(context.Background(), tc), tc
}

func TestTheFollowingRecordsExist(t *testing.T) {
	t.Run("seeds every data row from the table", func(t *testing.T) {
		ctx, tc := newStepTestContext(t)

		table := newTable(
			[]string{"type", "amount", "category", "label", "date"},
			[]string{"income", "1000.00", "", "Salary", "2024-03-01"},
			[]string{"expense", "42.50", "Food", "Groceries", "2024-03-05"},
		)

		ctx, err := theFollowingRecordsExist(ctx, table)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		repo := persistence.NewRecordRepository(tc.db)
		records, err := repo.FindAll(ctx)
		if err != nil {
			t.Fatalf("failed to read back records: %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}

		byLabel := make(map[string]*entity.Record, len(records))
		for _, record := range records {
			byLabel[record.Label] = record
		}

		salary, ok := byLabel["Salary"]
		if !ok {
			t.Fatal("seeded income record not found")
		}
		if salary.Type != entity.RecordTypeIncome {
			t.Errorf("expected income type, got %q", salary.Type)
		}
		if salary.Amount.String() != "1000" {
			t.Errorf("expected amount 1000, got %s", salary.Amount.String())
		}

		groceries, ok := byLabel["Groceries"]
		if !ok {
			t.Fatal("seeded expense record not found")
		}
		if groceries.Category != "Food" {
			t.Errorf("expected category Food, got %q", groceries.Category)
		}
		if groceries.Date != "2024-03-05" {
			t.Errorf("expected date 2024-03-05, got %q", groceries.Date)
		}
	})

	t.Run("remembers the last seeded record id", func(t *testing.T) {
		ctx, _ := newStepTestContext(t)

		table := newTable(
			[]string{"type", "amount", "category", "label", "date"},
			[]string{"expense", "10.00", "Food", "Lunch", "2024-03-05"},
		)

		ctx, err := theFollowingRecordsExist(ctx, table)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		tc := GetTestContext(ctx)
		if tc.lastRecordID == "" {
			t.Error("expected lastRecordID to be set after seeding")
		}
	})

	t.Run("tolerates reordered columns", func(t *testing.T) {
		ctx, tc := newStepTestContext(t)

		table := newTable(
			[]string{"date", "label", "amount", "type"},
			[]string{"2024-04-01", "Rent", "800.00", "bill"},
		)

		if _, err := theFollowingRecordsExist(ctx, table); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		repo := persistence.NewRecordRepository(tc.db)
		records, err := repo.FindAll(context.Background())
		if err != nil {
			t.Fatalf("failed to read back records: %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("expected 1 record, got %d", len(records))
		}
		if records[0].Type != entity.RecordTypeBill || records[0].Label != "Rent" {
			t.Errorf("columns mapped incorrectly: %+v", records[0])
		}
	})

	t.Run("fails when a required column is missing", func(t *testing.T) {
		ctx, _ := newStepTestContext(t)

		table := newTable(
			[]string{"type", "category", "label", "date"},
			[]string{"expense", "Food", "Lunch", "2024-03-05"},
		)

		if _, err := theFollowingRecordsExist(ctx, table); err == nil {
			t.Error("expected an error for a table without an amount column")
		}
	})

	t.Run("fails when the amount is not a number", func(t *testing.T) {
		ctx, _ := newStepTestContext(t)

		table := newTable(
			[]string{"type", "amount", "date"},
			[]string{"expense", "not-a-number", "2024-03-05"},
		)

		if _, err := theFollowingRecordsExist(ctx, table); err == nil {
			t.Error("expected an error for a non-numeric amount")
		}
	})

	t.Run("fails without a data row", func(t *testing.T) {
		ctx, _ := newStepTestContext(t)

		table := newTable([]string{"type", "amount", "date"})

		if _, err := theFollowingRecordsExist(ctx, table); err == nil {
			t.Error("expected an error for a header-only table")
		}
	})
}
