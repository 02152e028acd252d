// Package export contains record export use cases.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/moneymap/backend/internal/application/adapter"
)

// ExportRecordsOutput represents a rendered export document.
type ExportRecordsOutput struct {
	Document    []byte
	ContentType string
	Filename    string
}

// ExportRecordsUseCase renders the full record set through an exporter.
type ExportRecordsUseCase struct {
	recordRepo adapter.RecordRepository
	exporter   adapter.RecordExporter
}

// NewExportRecordsUseCase creates a new ExportRecordsUseCase instance.
func NewExportRecordsUseCase(
	recordRepo adapter.RecordRepository,
	exporter adapter.RecordExporter,
) *ExportRecordsUseCase {
	return &ExportRecordsUseCase{
		recordRepo: recordRepo,
		exporter:   exporter,
	}
}

// Execute fetches every record and renders the export document.
func (uc *ExportRecordsUseCase) Execute(ctx context.Context) (*ExportRecordsOutput, error) {
	records, err := uc.recordRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch records: %w", err)
	}

	document, err := uc.exporter.Export(records)
	if err != nil {
		return nil, fmt.Errorf("failed to render export: %w", err)
	}

	filename := fmt.Sprintf("finance-records-%s.%s",
		time.Now().Format("2006-01-02"),
		uc.exporter.FileExtension(),
	)

	return &ExportRecordsOutput{
		Document:    document,
		ContentType: uc.exporter.ContentType(),
		Filename:    filename,
	}, nil
}
