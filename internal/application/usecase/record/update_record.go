package record

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneymap/backend/internal/application/adapter"
	"github.com/moneymap/backend/internal/domain/entity"
	domainerror "github.com/moneymap/backend/internal/domain/error"
)

// UpdateRecordInput represents the input for a partial record update.
// Nil fields are left unchanged.
type UpdateRecordInput struct {
	ID       uuid.UUID
	Type     *entity.RecordType
	Amount   *decimal.Decimal
	Category *string
	Label    *string
	Date     *string
}

// UpdateRecordOutput represents the output of a record update.
type UpdateRecordOutput struct {
	Record *RecordOutput
}

// UpdateRecordUseCase handles record update logic.
type UpdateRecordUseCase struct {
	recordRepo  adapter.RecordRepository
	reportCache adapter.ReportCache
}

// NewUpdateRecordUseCase creates a new UpdateRecordUseCase instance.
func NewUpdateRecordUseCase(
	recordRepo adapter.RecordRepository,
	reportCache adapter.ReportCache,
) *UpdateRecordUseCase {
	return &UpdateRecordUseCase{
		recordRepo:  recordRepo,
		reportCache: reportCache,
	}
}

// Execute performs the record update.
func (uc *UpdateRecordUseCase) Execute(ctx context.Context, input UpdateRecordInput) (*UpdateRecordOutput, error) {
	if input.Type == nil && input.Amount == nil && input.Category == nil &&
		input.Label == nil && input.Date == nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeEmptyRecordUpdate,
			"at least one field must be provided",
			domainerror.ErrEmptyRecordUpdate,
		)
	}

	if input.Type != nil && !entity.IsValidRecordType(*input.Type) {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidRecordType,
			"record type must be one of: income, expense, bill, savings, installment",
			domainerror.ErrInvalidRecordType,
		)
	}

	if input.Amount != nil && input.Amount.IsNegative() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeNegativeRecordAmount,
			"amount must not be negative",
			domainerror.ErrNegativeRecordAmount,
		)
	}

	if input.Date != nil {
		if err := validateRecordDate(*input.Date); err != nil {
			return nil, err
		}
	}

	if input.Label != nil && len(*input.Label) > MaxLabelLength {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeLabelTooLong,
			fmt.Sprintf("label must not exceed %d characters", MaxLabelLength),
			domainerror.ErrLabelTooLong,
		)
	}

	if input.Category != nil && len(*input.Category) > MaxCategoryLength {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeCategoryTooLong,
			fmt.Sprintf("category must not exceed %d characters", MaxCategoryLength),
			domainerror.ErrCategoryTooLong,
		)
	}

	record, err := uc.recordRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Type != nil {
		record.Type = *input.Type
	}
	if input.Amount != nil {
		record.Amount = *input.Amount
	}
	if input.Category != nil {
		record.Category = *input.Category
	}
	if input.Label != nil {
		record.Label = *input.Label
	}
	if input.Date != nil {
		record.Date = *input.Date
	}
	record.UpdatedAt = time.Now().UTC()

	if err := uc.recordRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}

	invalidateReportCache(ctx, uc.reportCache)

	return &UpdateRecordOutput{Record: toRecordOutput(record)}, nil
}
