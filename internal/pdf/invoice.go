// Package pdf renders clinic documents. Layout is a fixed vertical flow of
// text blocks; there is no templating.
package pdf

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/medorahq/clinic-api/internal/model"
)

// RenderInvoice writes a single-page PDF for the joined invoice record.
func RenderInvoice(w io.Writer, invoice *model.InvoiceDetail) error {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(20, 20, 20)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 20)
	doc.CellFormat(0, 12, "Clinic Invoice", "", 1, "C", false, 0, "")
	doc.Ln(6)

	doc.SetFont("Helvetica", "", 12)
	writeLine(doc, fmt.Sprintf("Invoice #: %d", invoice.ID))
	writeLine(doc, fmt.Sprintf("Date: %s", invoice.CreatedAt.Format(time.RFC1123)))
	doc.Ln(6)

	writeLine(doc, fmt.Sprintf("Patient: %s", invoice.PatientName))
	writeLine(doc, fmt.Sprintf("Phone: %s", orDash(invoice.PatientPhone)))
	writeLine(doc, fmt.Sprintf("DOB: %s", orDash(invoice.PatientDOB)))
	doc.Ln(6)

	writeLine(doc, fmt.Sprintf("Description: %s", orDash(invoice.Description)))
	writeLine(doc, fmt.Sprintf("Amount: $%.2f", invoice.Amount))
	writeLine(doc, fmt.Sprintf("Status: %s", invoice.Status))
	doc.Ln(6)

	doc.CellFormat(0, 7, "Thank you for choosing our clinic.", "", 1, "C", false, 0, "")

	return doc.Output(w)
}

// Filename returns the attachment name for an invoice document.
func Filename(invoiceID int64) string {
	return fmt.Sprintf("invoice-%d.pdf", invoiceID)
}

func writeLine(doc *gofpdf.Fpdf, text string) {
	doc.CellFormat(0, 7, text, "", 1, "L", false, 0, "")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
