package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"hustlepro/internal/analytics"
	"hustlepro/internal/models"
)

// CollectionsFetcher loads a user's four collections wholesale.
type CollectionsFetcher interface {
	Collections(ctx context.Context, userID string) (analytics.Collections, error)
}

// ExportService renders the eight CSV export types. Filtering and
// ordering match the on-screen reports exactly so a spreadsheet import
// lines up with the dashboard.
type ExportService struct {
	Reports CollectionsFetcher
}

func NewExportService(reports CollectionsFetcher) *ExportService {
	return &ExportService{Reports: reports}
}

var exportTypes = map[string]bool{
	"invoices":       true,
	"payments":       true,
	"clients":        true,
	"tasks":          true,
	"revenue":        true,
	"task-status":    true,
	"invoice-aging":  true,
	"client-summary": true,
}

func IsValidExportType(t string) bool { return exportTypes[t] }

// ExportFileName is the suggested attachment name for a download.
func ExportFileName(exportType string, now time.Time) string {
	return fmt.Sprintf("hustlepro-%s-%s.csv", exportType, now.Format("2006-01-02"))
}

func sameMonth(t, now time.Time) bool {
	return t.Year() == now.Year() && t.Month() == now.Month()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteCSV streams the requested export. dateRange is "current-month"
// or "all"; it only applies to the raw invoice and payment dumps, the
// report types always cover everything, like the dashboard.
func (s *ExportService) WriteCSV(ctx context.Context, w io.Writer, userID, exportType, dateRange string) error {
	if !IsValidExportType(exportType) {
		return fmt.Errorf("unknown export type %q", exportType)
	}
	c, err := s.Reports.Collections(ctx, userID)
	if err != nil {
		return err
	}
	now := time.Now()
	currentMonth := dateRange == "current-month"

	cw := csv.NewWriter(w)
	defer cw.Flush()

	switch exportType {
	case "invoices":
		if err := cw.Write([]string{"Invoice Number", "Client", "Amount", "Due Date", "Status", "Payment Status"}); err != nil {
			return err
		}
		for _, inv := range c.Invoices {
			if currentMonth && !sameMonth(inv.DueDate, now) {
				continue
			}
			if err := cw.Write([]string{
				inv.InvoiceNumber,
				lookupClientName(c.Clients, inv.ClientID),
				num(inv.Total),
				inv.DueDate.Format("2006-01-02"),
				string(inv.Status),
				string(inv.PaymentStatus),
			}); err != nil {
				return err
			}
		}

	case "payments":
		if err := cw.Write([]string{"Date", "Client", "Amount", "Method", "Status", "Invoice"}); err != nil {
			return err
		}
		for _, p := range c.Payments {
			if currentMonth && !sameMonth(p.Date, now) {
				continue
			}
			if err := cw.Write([]string{
				p.Date.Format("2006-01-02"),
				lookupClientName(c.Clients, p.ClientID),
				num(p.Amount),
				string(p.Method),
				string(p.Status),
				lookupInvoiceNumber(c.Invoices, p.InvoiceID),
			}); err != nil {
				return err
			}
		}

	case "clients":
		if err := cw.Write([]string{"Name", "Email", "Phone", "Address"}); err != nil {
			return err
		}
		for _, cl := range c.Clients {
			if err := cw.Write([]string{cl.Name, cl.Email, cl.Phone, cl.Address}); err != nil {
				return err
			}
		}

	case "tasks":
		if err := cw.Write([]string{"Title", "Client", "Price", "Deadline", "Priority", "Status"}); err != nil {
			return err
		}
		for _, t := range c.Tasks {
			if err := cw.Write([]string{
				t.Title,
				lookupClientName(c.Clients, t.ClientID),
				num(t.Price),
				t.Deadline.Format("2006-01-02"),
				string(t.Priority),
				string(t.Status),
			}); err != nil {
				return err
			}
		}

	case "revenue":
		if err := cw.Write([]string{"Client", "Total Revenue", "Total Invoiced", "Pending Amount", "Collection Rate"}); err != nil {
			return err
		}
		for _, row := range analytics.RevenueReport(c) {
			if err := cw.Write([]string{
				row.ClientName,
				num(row.TotalRevenue),
				num(row.TotalInvoiced),
				num(row.PendingAmount),
				fmt.Sprintf("%.1f%%", row.CollectionRate),
			}); err != nil {
				return err
			}
		}

	case "task-status":
		if err := cw.Write([]string{"Task", "Client", "Status", "Priority", "Deadline", "Price", "Overdue", "Days Overdue"}); err != nil {
			return err
		}
		for _, row := range analytics.TaskStatusReport(c, now) {
			overdue := "No"
			if row.IsOverdue {
				overdue = "Yes"
			}
			if err := cw.Write([]string{
				row.TaskTitle,
				row.ClientName,
				string(row.Status),
				string(row.Priority),
				row.Deadline.Format("2006-01-02"),
				num(row.Price),
				overdue,
				strconv.Itoa(row.DaysOverdue),
			}); err != nil {
				return err
			}
		}

	case "invoice-aging":
		if err := cw.Write([]string{"Invoice Number", "Client", "Total", "Paid Amount", "Pending Amount", "Due Date", "Status", "Days Overdue", "Aging Category"}); err != nil {
			return err
		}
		for _, row := range analytics.InvoiceAgingReport(c, now) {
			if err := cw.Write([]string{
				row.InvoiceNumber,
				row.ClientName,
				num(row.Total),
				num(row.PaidAmount),
				num(row.PendingAmount),
				row.DueDate.Format("2006-01-02"),
				string(row.PaymentStatus),
				strconv.Itoa(row.DaysOverdue),
				row.AgingCategory,
			}); err != nil {
				return err
			}
		}

	case "client-summary":
		if err := cw.Write([]string{"Client", "Email", "Phone", "Total Tasks", "Completed Tasks", "Completion Rate", "Total Invoices", "Total Revenue", "Pending Amount", "Avg Payment Delay", "Last Task Date"}); err != nil {
			return err
		}
		for _, row := range analytics.ClientSummaryReport(c, now) {
			if err := cw.Write([]string{
				row.ClientName,
				row.Email,
				row.Phone,
				strconv.Itoa(row.TotalTasks),
				strconv.Itoa(row.CompletedTasks),
				fmt.Sprintf("%.1f%%", row.CompletionRate),
				strconv.Itoa(row.TotalInvoices),
				num(row.TotalRevenue),
				num(row.PendingAmount),
				fmt.Sprintf("%.1f", row.AvgPaymentDelay),
				row.LastTaskDate,
			}); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func lookupClientName(clients []models.Client, id string) string {
	for _, c := range clients {
		if c.ID == id {
			return c.Name
		}
	}
	return "Unknown"
}

func lookupInvoiceNumber(invoices []models.Invoice, id string) string {
	for _, inv := range invoices {
		if inv.ID == id {
			return inv.InvoiceNumber
		}
	}
	return "N/A"
}
