package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"
	"github.com/shopspring/decimal"

	"github.com/moneymap/backend/internal/domain/entity"
	"github.com/moneymap/backend/internal/integration/persistence"
)

// registerRecordSteps registers record seeding steps.
func registerRecordSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the following records exist:$`, theFollowingRecordsExist)
	ctx.Step(`^no records exist$`, noRecordsExist)
}

// theFollowingRecordsExist seeds records from a table with a header row
// of: type, amount, category, label, date.
func theFollowingRecordsExist(ctx context.Context, table *godog.Table) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if len(table.Rows) < 2 {
		return ctx, fmt.Errorf("expected a header row and at least one data row")
	}

	columns := make(map[string]int, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		columns[cell.Value] = i
	}
	for _, required := range []string{"type", "amount", "date"} {
		if _, ok := columns[required]; !ok {
			return ctx, fmt.Errorf("missing required column %q", required)
		}
	}

	cellValue := func(row *messages.PickleTableRow, column string) string {
		index, ok := columns[column]
		if !ok || index >= len(row.Cells) {
			return ""
		}
		return row.Cells[index].Value
	}

	repo := persistence.NewRecordRepository(tc.db)
	for _, row := range table.Rows[1:] {
		amount, err := decimal.NewFromString(cellValue(row, "amount"))
		if err != nil {
			return ctx, fmt.Errorf("invalid amount %q: %w", cellValue(row, "amount"), err)
		}

		record := entity.NewRecord(
			entity.RecordType(cellValue(row, "type")),
			amount,
			cellValue(row, "category"),
			cellValue(row, "label"),
			cellValue(row, "date"),
		)
		if err := repo.Create(ctx, record); err != nil {
			return ctx, fmt.Errorf("failed to seed record: %w", err)
		}
		tc.lastRecordID = record.ID.String()
	}

	return SetTestContext(ctx, tc), nil
}

func noRecordsExist(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return nil
}
