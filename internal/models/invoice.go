package models

import "time"

// InvoiceStatus is the invoice's own lifecycle, distinct from its
// derived PaymentStatus.
type InvoiceStatus string

const (
	InvoiceDraft InvoiceStatus = "draft"
	InvoiceSent  InvoiceStatus = "sent"
	InvoicePaid  InvoiceStatus = "paid"
)

func IsValidInvoiceStatus(s InvoiceStatus) bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePaid:
		return true
	}
	return false
}

// PaymentStatus is derived from PaidAmount vs Total.
type PaymentStatus string

const (
	PaymentPending       PaymentStatus = "pending"
	PaymentPartiallyPaid PaymentStatus = "partially-paid"
	PaymentPaid          PaymentStatus = "paid"
)

// DefaultTaxRate matches the GST rate the invoices were issued with.
const DefaultTaxRate = 0.18

// InvoiceItem is one billed line, optionally tied to a task.
type InvoiceItem struct {
	TaskID      string  `json:"task_id,omitempty"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type Invoice struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	ClientID      string        `json:"client_id"`
	InvoiceNumber string        `json:"invoice_number"`
	IssueDate     time.Time     `json:"issue_date"`
	DueDate       time.Time     `json:"due_date"`
	Status        InvoiceStatus `json:"status"`
	Items         []InvoiceItem `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	TaxRate       float64       `json:"tax_rate"`
	TaxAmount     float64       `json:"tax_amount"`
	Total         float64       `json:"total"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	PaidAmount    float64       `json:"paid_amount"`
	PaymentLink   string        `json:"payment_link,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// PendingAmount is what remains to be collected.
func (i Invoice) PendingAmount() float64 {
	return i.Total - i.PaidAmount
}

// ApplyPayment accumulates amount into PaidAmount and re-derives
// PaymentStatus. Reaching paid also flips the lifecycle Status to paid.
// PaidAmount is not clamped: an oversized payment simply overshoots,
// the derived status stays paid.
func (i *Invoice) ApplyPayment(amount float64) {
	i.PaidAmount += amount
	switch {
	case i.PaidAmount >= i.Total:
		i.PaymentStatus = PaymentPaid
		i.Status = InvoicePaid
	case i.PaidAmount > 0:
		i.PaymentStatus = PaymentPartiallyPaid
	default:
		i.PaymentStatus = PaymentPending
	}
}

// DaysOverdue is how many whole days the invoice is past due and still
// unpaid; 0 for paid or current invoices.
func (i Invoice) DaysOverdue(now time.Time) int {
	if i.PaymentStatus == PaymentPaid {
		return 0
	}
	days := int(now.Sub(i.DueDate).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// AgingCategory buckets an invoice by days past due.
func AgingCategory(daysOverdue int) string {
	switch {
	case daysOverdue <= 0:
		return "Current"
	case daysOverdue <= 30:
		return "1-30 days"
	case daysOverdue <= 60:
		return "31-60 days"
	case daysOverdue <= 90:
		return "61-90 days"
	default:
		return "90+ days"
	}
}
