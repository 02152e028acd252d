package export

import (
	"bytes"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/moneymap/backend/internal/application/adapter"
	"github.com/moneymap/backend/internal/application/usecase/report"
	"github.com/moneymap/backend/internal/domain/entity"
)

// pdfExporter renders records as a tabular A4 PDF document.
type pdfExporter struct{}

// NewPDFExporter creates a PDF record exporter.
func NewPDFExporter() adapter.RecordExporter {
	return pdfExporter{}
}

// Export renders the records as a PDF table with a totals summary row.
func (pdfExporter) Export(records []*entity.Record) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(20, 20, 20)
	pdf.Cell(0, 10, "Personal Finance Records")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, "Generated on "+time.Now().Format("Jan 2, 2006"))
	pdf.Ln(10)

	// Summary row: income, outgoings, balance over the full set.
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFillColor(248, 248, 248)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 11)

	sumW := []float64{60, 60, 62}
	pdf.CellFormat(sumW[0], 9, "Income", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[1], 9, "Outgoings", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[2], 9, "Balance", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(sumW[0], 9, report.TotalIncome(records).StringFixed(2), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[1], 9, report.TotalOutgoings(records).StringFixed(2), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[2], 9, report.Balance(records).StringFixed(2), "1", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(245, 245, 245)

	colW := []float64{34, 26, 40, 56, 26}
	for i, h := range exportHeader {
		align := "L"
		last := 0
		if h == "Amount" {
			align = "R"
		}
		if i == len(exportHeader)-1 {
			last = 1
		}
		pdf.CellFormat(colW[i], 8, h, "1", last, align, true, 0, "")
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, r := range records {
		pdf.CellFormat(colW[0], 7, typeLabel(r.Type), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[1], 7, r.Amount.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW[2], 7, r.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[3], 7, r.Label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[4], 7, r.Date, "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ContentType returns the PDF MIME type.
func (pdfExporter) ContentType() string {
	return "application/pdf"
}

// FileExtension returns "pdf".
func (pdfExporter) FileExtension() string {
	return "pdf"
}
