// Package export renders record collections into downloadable documents.
package export

import (
	"bytes"
	"encoding/csv"

	"github.com/moneymap/backend/internal/application/adapter"
	"github.com/moneymap/backend/internal/domain/entity"
)

// exportHeader is the column order shared by the CSV and PDF exports.
var exportHeader = []string{"Type", "Amount", "Category", "Label", "Date"}

// csvExporter renders records as RFC 4180 CSV with quoted fields.
type csvExporter struct{}

// NewCSVExporter creates a CSV record exporter.
func NewCSVExporter() adapter.RecordExporter {
	return csvExporter{}
}

// Export renders the records as CSV.
func (csvExporter) Export(records []*entity.Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, r := range records {
		row := []string{
			typeLabel(r.Type),
			r.Amount.StringFixed(2),
			r.Category,
			r.Label,
			r.Date,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ContentType returns the CSV MIME type.
func (csvExporter) ContentType() string {
	return "text/csv; charset=utf-8"
}

// FileExtension returns "csv".
func (csvExporter) FileExtension() string {
	return "csv"
}

// typeLabel returns the display label for a record type, falling back to
// the raw value for unknown types so exports never lose rows.
func typeLabel(t entity.RecordType) string {
	if label, ok := entity.RecordTypeLabels[t]; ok {
		return label
	}
	return string(t)
}
