package analytics

import (
	"sort"
	"time"

	"hustlepro/internal/models"
)

// Tabular report rows backing the CSV/PDF exports.

type RevenueReportRow struct {
	ClientName     string  `json:"client_name"`
	TotalRevenue   float64 `json:"total_revenue"`
	TotalInvoiced  float64 `json:"total_invoiced"`
	PendingAmount  float64 `json:"pending_amount"`
	CollectionRate float64 `json:"collection_rate"`
}

type TaskStatusRow struct {
	TaskTitle   string              `json:"task_title"`
	ClientName  string              `json:"client_name"`
	Status      models.TaskStatus   `json:"status"`
	Priority    models.TaskPriority `json:"priority"`
	Deadline    time.Time           `json:"deadline"`
	Price       float64             `json:"price"`
	IsOverdue   bool                `json:"is_overdue"`
	DaysOverdue int                 `json:"days_overdue"`
}

type InvoiceAgingRow struct {
	InvoiceNumber string               `json:"invoice_number"`
	ClientName    string               `json:"client_name"`
	Total         float64              `json:"total"`
	PaidAmount    float64              `json:"paid_amount"`
	PendingAmount float64              `json:"pending_amount"`
	DueDate       time.Time            `json:"due_date"`
	PaymentStatus models.PaymentStatus `json:"payment_status"`
	DaysOverdue   int                  `json:"days_overdue"`
	AgingCategory string               `json:"aging_category"`
}

type ClientSummaryRow struct {
	ClientName      string  `json:"client_name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	TotalTasks      int     `json:"total_tasks"`
	CompletedTasks  int     `json:"completed_tasks"`
	CompletionRate  float64 `json:"completion_rate"`
	TotalInvoices   int     `json:"total_invoices"`
	TotalRevenue    float64 `json:"total_revenue"`
	TotalInvoiced   float64 `json:"total_invoiced"`
	PendingAmount   float64 `json:"pending_amount"`
	AvgPaymentDelay float64 `json:"avg_payment_delay"`
	LastTaskDate    string  `json:"last_task_date"`
}

func clientName(clients []models.Client, id string) string {
	for _, c := range clients {
		if c.ID == id {
			return c.Name
		}
	}
	return "Unknown"
}

// RevenueReport ranks clients by collected revenue, descending.
func RevenueReport(c Collections) []RevenueReportRow {
	out := make([]RevenueReportRow, 0, len(c.Clients))
	for _, cl := range c.Clients {
		var row RevenueReportRow
		row.ClientName = cl.Name
		for _, p := range c.Payments {
			if p.ClientID == cl.ID {
				row.TotalRevenue += p.Amount
			}
		}
		for _, inv := range c.Invoices {
			if inv.ClientID != cl.ID {
				continue
			}
			row.TotalInvoiced += inv.Total
			if inv.PaymentStatus != models.PaymentPaid {
				row.PendingAmount += inv.PendingAmount()
			}
		}
		if row.TotalInvoiced > 0 {
			row.CollectionRate = row.TotalRevenue / row.TotalInvoiced * 100
		}
		out = append(out, row)
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].TotalRevenue > out[b].TotalRevenue })
	return out
}

// TaskStatusReport lists every task with overdue standing, soonest
// deadline first.
func TaskStatusReport(c Collections, now time.Time) []TaskStatusRow {
	out := make([]TaskStatusRow, 0, len(c.Tasks))
	for _, t := range c.Tasks {
		row := TaskStatusRow{
			TaskTitle:  t.Title,
			ClientName: clientName(c.Clients, t.ClientID),
			Status:     t.Status,
			Priority:   t.Priority,
			Deadline:   t.Deadline,
			Price:      t.Price,
			IsOverdue:  t.IsOverdue(now),
		}
		if row.IsOverdue {
			row.DaysOverdue = int(now.Sub(t.Deadline).Hours() / hoursPerDay)
		}
		out = append(out, row)
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Deadline.Before(out[b].Deadline) })
	return out
}

// InvoiceAgingReport buckets invoices by days past due, most overdue
// first.
func InvoiceAgingReport(c Collections, now time.Time) []InvoiceAgingRow {
	out := make([]InvoiceAgingRow, 0, len(c.Invoices))
	for _, inv := range c.Invoices {
		days := inv.DaysOverdue(now)
		out = append(out, InvoiceAgingRow{
			InvoiceNumber: inv.InvoiceNumber,
			ClientName:    clientName(c.Clients, inv.ClientID),
			Total:         inv.Total,
			PaidAmount:    inv.PaidAmount,
			PendingAmount: inv.PendingAmount(),
			DueDate:       inv.DueDate,
			PaymentStatus: inv.PaymentStatus,
			DaysOverdue:   days,
			AgingCategory: models.AgingCategory(days),
		})
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].DaysOverdue > out[b].DaysOverdue })
	return out
}

// ClientSummaryReport is the per-client rollup, top earners first.
// Payment delay carries the now() stand-in (see package doc).
func ClientSummaryReport(c Collections, now time.Time) []ClientSummaryRow {
	out := make([]ClientSummaryRow, 0, len(c.Clients))
	for _, cl := range c.Clients {
		row := ClientSummaryRow{ClientName: cl.Name, Email: cl.Email, Phone: cl.Phone, LastTaskDate: "N/A"}

		var lastDeadline time.Time
		for _, t := range c.Tasks {
			if t.ClientID != cl.ID {
				continue
			}
			row.TotalTasks++
			if t.Status == models.TaskCompleted {
				row.CompletedTasks++
			}
			if t.Deadline.After(lastDeadline) {
				lastDeadline = t.Deadline
			}
		}
		if row.TotalTasks > 0 {
			row.CompletionRate = float64(row.CompletedTasks) / float64(row.TotalTasks) * 100
			row.LastTaskDate = lastDeadline.Format("2006-01-02")
		}

		var delayTotal float64
		var paidCount int
		for _, inv := range c.Invoices {
			if inv.ClientID != cl.ID {
				continue
			}
			row.TotalInvoices++
			row.TotalInvoiced += inv.Total
			if inv.PaymentStatus != models.PaymentPaid {
				row.PendingAmount += inv.PendingAmount()
			} else {
				paidCount++
				if delay := now.Sub(inv.DueDate).Hours() / hoursPerDay; delay > 0 {
					delayTotal += delay
				}
			}
		}
		if paidCount > 0 {
			row.AvgPaymentDelay = delayTotal / float64(paidCount)
		}

		for _, p := range c.Payments {
			if p.ClientID == cl.ID {
				row.TotalRevenue += p.Amount
			}
		}
		out = append(out, row)
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].TotalRevenue > out[b].TotalRevenue })
	return out
}
