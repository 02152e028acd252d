package record

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/moneymap/backend/internal/application/adapter"
)

// DeleteRecordInput represents the input for record deletion.
type DeleteRecordInput struct {
	ID uuid.UUID
}

// DeleteRecordUseCase handles record deletion logic.
type DeleteRecordUseCase struct {
	recordRepo  adapter.RecordRepository
	reportCache adapter.ReportCache
}

// NewDeleteRecordUseCase creates a new DeleteRecordUseCase instance.
func NewDeleteRecordUseCase(
	recordRepo adapter.RecordRepository,
	reportCache adapter.ReportCache,
) *DeleteRecordUseCase {
	return &DeleteRecordUseCase{
		recordRepo:  recordRepo,
		reportCache: reportCache,
	}
}

// Execute performs the record deletion.
func (uc *DeleteRecordUseCase) Execute(ctx context.Context, input DeleteRecordInput) error {
	// FindByID first so an unknown ID maps to ErrRecordNotFound.
	if _, err := uc.recordRepo.FindByID(ctx, input.ID); err != nil {
		return err
	}

	if err := uc.recordRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	invalidateReportCache(ctx, uc.reportCache)

	return nil
}
