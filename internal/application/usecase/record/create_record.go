// Package record contains record-related use cases.
package record

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneymap/backend/internal/application/adapter"
	"github.com/moneymap/backend/internal/domain/entity"
	domainerror "github.com/moneymap/backend/internal/domain/error"
)

const (
	// MaxLabelLength is the maximum allowed length for record labels.
	MaxLabelLength = 255
	// MaxCategoryLength is the maximum allowed length for record categories.
	MaxCategoryLength = 100
)

// CreateRecordInput represents the input for record creation.
type CreateRecordInput struct {
	Type     entity.RecordType
	Amount   decimal.Decimal
	Category string
	Label    string
	Date     string // "YYYY-MM-DD"
}

// CreateRecordOutput represents the output of record creation.
type CreateRecordOutput struct {
	Record *RecordOutput
}

// CreateRecordUseCase handles record creation logic.
type CreateRecordUseCase struct {
	recordRepo  adapter.RecordRepository
	reportCache adapter.ReportCache
}

// NewCreateRecordUseCase creates a new CreateRecordUseCase instance.
func NewCreateRecordUseCase(
	recordRepo adapter.RecordRepository,
	reportCache adapter.ReportCache,
) *CreateRecordUseCase {
	return &CreateRecordUseCase{
		recordRepo:  recordRepo,
		reportCache: reportCache,
	}
}

// Execute performs the record creation.
func (uc *CreateRecordUseCase) Execute(ctx context.Context, input CreateRecordInput) (*CreateRecordOutput, error) {
	if !entity.IsValidRecordType(input.Type) {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidRecordType,
			"record type must be one of: income, expense, bill, savings, installment",
			domainerror.ErrInvalidRecordType,
		)
	}

	// Amounts are stored unsigned; sign is derived from type at
	// aggregation time.
	if input.Amount.IsNegative() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeNegativeRecordAmount,
			"amount must not be negative",
			domainerror.ErrNegativeRecordAmount,
		)
	}

	if err := validateRecordDate(input.Date); err != nil {
		return nil, err
	}

	if len(input.Label) > MaxLabelLength {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeLabelTooLong,
			fmt.Sprintf("label must not exceed %d characters", MaxLabelLength),
			domainerror.ErrLabelTooLong,
		)
	}

	if len(input.Category) > MaxCategoryLength {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeCategoryTooLong,
			fmt.Sprintf("category must not exceed %d characters", MaxCategoryLength),
			domainerror.ErrCategoryTooLong,
		)
	}

	record := entity.NewRecord(input.Type, input.Amount, input.Category, input.Label, input.Date)

	if err := uc.recordRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	invalidateReportCache(ctx, uc.reportCache)

	return &CreateRecordOutput{Record: toRecordOutput(record)}, nil
}

// validateRecordDate checks that the date is a well-formed calendar date.
func validateRecordDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return domainerror.NewRecordError(
			domainerror.ErrCodeInvalidRecordDate,
			"date must be a valid YYYY-MM-DD calendar date",
			domainerror.ErrInvalidRecordDate,
		)
	}
	return nil
}

// invalidateReportCache drops cached reports after a mutation. Cache
// failures are logged and swallowed: stale-for-TTL beats a failed write.
func invalidateReportCache(ctx context.Context, cache adapter.ReportCache) {
	if err := cache.InvalidateAll(ctx); err != nil {
		slog.Warn("Failed to invalidate report cache", "error", err)
	}
}
