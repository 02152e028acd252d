package adapter

import (
	"github.com/moneymap/backend/internal/domain/entity"
)

// RecordExporter renders a record collection into a downloadable document.
type RecordExporter interface {
	// Export renders the records and returns the document bytes.
	Export(records []*entity.Record) ([]byte, error)

	// ContentType returns the MIME type of the rendered document.
	ContentType() string

	// FileExtension returns the file extension without the leading dot.
	FileExtension() string
}
