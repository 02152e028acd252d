package record

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneymap/backend/internal/application/adapter"
	"github.com/moneymap/backend/internal/application/usecase/report"
	"github.com/moneymap/backend/internal/domain/entity"
)

// ListRecordsInput represents the input for listing records. Period and
// Anchor are optional; when both are set the list is restricted to the
// resolved period bounds.
type ListRecordsInput struct {
	Period *report.Period
	Anchor *time.Time
}

// RecordOutput represents a single record in use case outputs.
type RecordOutput struct {
	ID        uuid.UUID
	Type      entity.RecordType
	Amount    decimal.Decimal
	Category  string
	Label     string
	Date      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ListRecordsOutput represents the output of listing records.
type ListRecordsOutput struct {
	Records []*RecordOutput
	Total   int
}

// ListRecordsUseCase handles record listing logic.
type ListRecordsUseCase struct {
	recordRepo adapter.RecordRepository
}

// NewListRecordsUseCase creates a new ListRecordsUseCase instance.
func NewListRecordsUseCase(recordRepo adapter.RecordRepository) *ListRecordsUseCase {
	return &ListRecordsUseCase{
		recordRepo: recordRepo,
	}
}

// Execute performs the record listing.
func (uc *ListRecordsUseCase) Execute(ctx context.Context, input ListRecordsInput) (*ListRecordsOutput, error) {
	records, err := uc.recordRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if input.Period != nil && input.Anchor != nil {
		records = report.FilterByPeriod(records, *input.Period, *input.Anchor)
	}

	output := &ListRecordsOutput{
		Records: make([]*RecordOutput, len(records)),
		Total:   len(records),
	}
	for i, r := range records {
		output.Records[i] = toRecordOutput(r)
	}
	return output, nil
}

// toRecordOutput converts a record entity to its use case output shape.
func toRecordOutput(r *entity.Record) *RecordOutput {
	return &RecordOutput{
		ID:        r.ID,
		Type:      r.Type,
		Amount:    r.Amount,
		Category:  r.Category,
		Label:     r.Label,
		Date:      r.Date,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
