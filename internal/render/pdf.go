package render

import (
	"bytes"
	"fmt"

	"recipeshare-backend/internal/service"

	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer renders the shopping list as a printable PDF
type PDFRenderer struct{}

// Ensure PDFRenderer implements Renderer
var _ Renderer = (*PDFRenderer)(nil)

// NewPDFRenderer creates a new PDFRenderer
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render produces the PDF document
func (r *PDFRenderer) Render(title string, items []service.ShoppingListItem) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	for i, item := range items {
		line := fmt.Sprintf("%d. %s (%s) - %d", i+1, item.Name, item.MeasurementUnit, item.Amount)
		pdf.CellFormat(0, 8, line, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// ContentType returns the MIME type of the document
func (r *PDFRenderer) ContentType() string {
	return "application/pdf"
}

// Extension returns the file extension of the document
func (r *PDFRenderer) Extension() string {
	return "pdf"
}
