package export

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneymap/backend/internal/domain/entity"
	domainerror "github.com/moneymap/backend/internal/domain/error"
)

type stubRepository struct {
	records []*entity.Record
	err     error
}

func (s *stubRepository) Create(_ context.Context, _ *entity.Record) error { return nil }

func (s *stubRepository) FindByID(_ context.Context, _ uuid.UUID) (*entity.Record, error) {
	return nil, domainerror.ErrRecordNotFound
}

func (s *stubRepository) FindAll(_ context.Context) ([]*entity.Record, error) {
	return s.records, s.err
}

func (s *stubRepository) Update(_ context.Context, _ *entity.Record) error { return nil }
func (s *stubRepository) Delete(_ context.Context, _ uuid.UUID) error      { return nil }

type stubExporter struct {
	document []byte
	err      error
	seen     int
}

func (s *stubExporter) Export(records []*entity.Record) ([]byte, error) {
	s.seen = len(records)
	return s.document, s.err
}

func (s *stubExporter) ContentType() string   { return "text/csv; charset=utf-8" }
func (s *stubExporter) FileExtension() string { return "csv" }

func TestExportRecordsUseCase_Execute(t *testing.T) {
	records := []*entity.Record{
		entity.NewRecord(entity.RecordTypeExpense, decimal.RequireFromString("42.50"), "Food", "Groceries", "2024-03-05"),
	}

	t.Run("renders the full record set through the exporter", func(t *testing.T) {
		exporter := &stubExporter{document: []byte("Type,Amount\n")}
		uc := NewExportRecordsUseCase(&stubRepository{records: records}, exporter)

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if exporter.seen != 1 {
			t.Errorf("expected exporter to see 1 record, got %d", exporter.seen)
		}
		if string(output.Document) != "Type,Amount\n" {
			t.Errorf("unexpected document: %q", output.Document)
		}
		if output.ContentType != "text/csv; charset=utf-8" {
			t.Errorf("unexpected content type: %s", output.ContentType)
		}
	})

	t.Run("filename carries the current date and extension", func(t *testing.T) {
		uc := NewExportRecordsUseCase(&stubRepository{}, &stubExporter{})

		output, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.HasPrefix(output.Filename, "finance-records-") || !strings.HasSuffix(output.Filename, ".csv") {
			t.Errorf("unexpected filename: %s", output.Filename)
		}
	})

	t.Run("repository failure is surfaced", func(t *testing.T) {
		uc := NewExportRecordsUseCase(&stubRepository{err: errors.New("db down")}, &stubExporter{})

		if _, err := uc.Execute(context.Background()); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("exporter failure is surfaced", func(t *testing.T) {
		uc := NewExportRecordsUseCase(&stubRepository{}, &stubExporter{err: errors.New("render failed")})

		if _, err := uc.Execute(context.Background()); err == nil {
			t.Fatal("expected error")
		}
	})
}
