package pdf

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"hustlepro/internal/models"
)

// Generator renders downloadable PDFs (easy to mock in tests).
type Generator interface {
	GenerateInvoice(w io.Writer, data InvoiceData) error
	GenerateReport(w io.Writer, data ReportData) error
}

type DocumentGenerator struct {
	fontName string
}

type InvoiceData struct {
	Invoice      *models.Invoice
	Client       *models.Client
	BusinessName string
	UPIID        string
	GeneratedAt  time.Time
}

// ReportData is a generic titled table.
type ReportData struct {
	Title       string
	Headers     []string
	Rows        [][]string
	GeneratedAt time.Time
}

func NewDocumentGenerator() *DocumentGenerator {
	return &DocumentGenerator{fontName: "Helvetica"}
}

func (g *DocumentGenerator) GenerateInvoice(w io.Writer, data InvoiceData) error {
	inv := data.Invoice
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Invoice %s", inv.InvoiceNumber), false)
	pdf.SetAuthor(data.BusinessName, false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// ===== header
	pdf.SetFont(g.fontName, "B", 18)
	pdf.CellFormat(0, 10, data.BusinessName, "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 8, "INVOICE", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("No. %s", inv.InvoiceNumber), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Issued: %s", inv.IssueDate.Format("02 Jan 2006")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Due: %s", inv.DueDate.Format("02 Jan 2006")), "", 1, "L", false, 0, "")
	g.hr(pdf)

	// ===== bill to
	g.sectionTitle(pdf, "Bill To")
	pdf.CellFormat(0, 6, data.Client.Name, "", 1, "L", false, 0, "")
	if data.Client.Company != "" {
		pdf.CellFormat(0, 6, data.Client.Company, "", 1, "L", false, 0, "")
	}
	if data.Client.Email != "" {
		pdf.CellFormat(0, 6, data.Client.Email, "", 1, "L", false, 0, "")
	}
	if data.Client.Address != "" {
		pdf.MultiCell(0, 6, data.Client.Address, "", "L", false)
	}
	pdf.Ln(2)
	g.hr(pdf)

	// ===== items table
	g.sectionTitle(pdf, "Items")
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(120, 7, "Description", "B", 0, "L", false, 0, "")
	pdf.CellFormat(50, 7, "Amount (INR)", "B", 1, "R", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	for _, item := range inv.Items {
		pdf.CellFormat(120, 7, item.Description, "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, fmt.Sprintf("%.2f", item.Amount), "", 1, "R", false, 0, "")
	}
	pdf.Ln(2)

	// ===== totals
	g.totalLine(pdf, "Subtotal", inv.Subtotal, false)
	g.totalLine(pdf, fmt.Sprintf("Tax (%.0f%%)", inv.TaxRate*100), inv.TaxAmount, false)
	g.totalLine(pdf, "Total", inv.Total, true)
	if inv.PaidAmount > 0 {
		g.totalLine(pdf, "Paid", inv.PaidAmount, false)
		g.totalLine(pdf, "Balance Due", inv.PendingAmount(), true)
	}
	pdf.Ln(4)
	g.hr(pdf)

	// ===== payment note
	if data.UPIID != "" {
		g.sectionTitle(pdf, "Payment")
		pdf.MultiCell(0, 6, fmt.Sprintf("Pay via UPI to %s (%s). Please quote invoice number %s.",
			data.UPIID, data.BusinessName, inv.InvoiceNumber), "", "L", false)
	}
	if inv.Notes != "" {
		pdf.Ln(2)
		g.sectionTitle(pdf, "Notes")
		pdf.MultiCell(0, 6, inv.Notes, "", "L", false)
	}

	g.pageFooter(pdf, data.GeneratedAt)
	return pdf.Output(w)
}

func (g *DocumentGenerator) GenerateReport(w io.Writer, data ReportData) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(data.Title, false)
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 16)
	pdf.CellFormat(0, 10, data.Title, "", 1, "C", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated on %s", data.GeneratedAt.Format("02 Jan 2006")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	if len(data.Headers) == 0 {
		pdf.SetFont(g.fontName, "", 11)
		pdf.CellFormat(0, 8, "No data available", "", 1, "C", false, 0, "")
		return pdf.Output(w)
	}

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colW := (pageW - left - right) / float64(len(data.Headers))

	pdf.SetFont(g.fontName, "B", 10)
	for _, h := range data.Headers {
		pdf.CellFormat(colW, 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(g.fontName, "", 10)
	for _, row := range data.Rows {
		for i := 0; i < len(data.Headers); i++ {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			pdf.CellFormat(colW, 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	g.pageFooter(pdf, data.GeneratedAt)
	return pdf.Output(w)
}

// ===== helpers =====

func (g *DocumentGenerator) sectionTitle(pdf *gofpdf.Fpdf, s string) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 7, s, "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
}

func (g *DocumentGenerator) totalLine(pdf *gofpdf.Fpdf, label string, amount float64, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	pdf.SetFont(g.fontName, style, 11)
	pdf.CellFormat(120, 7, label, "", 0, "R", false, 0, "")
	pdf.CellFormat(50, 7, fmt.Sprintf("INR %.2f", amount), "", 1, "R", false, 0, "")
}

func (g *DocumentGenerator) hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1.5
	pdf.SetLineWidth(0.2)
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	pdf.Line(left, y, pageW-right, y)
	pdf.SetY(y + 2)
}

func (g *DocumentGenerator) pageFooter(pdf *gofpdf.Fpdf, generated time.Time) {
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(g.fontName, "", 9)
		pdf.CellFormat(0, 10,
			fmt.Sprintf("Page %d/{nb}", pdf.PageNo()),
			"", 0, "C", false, 0, "",
		)
	})
}
