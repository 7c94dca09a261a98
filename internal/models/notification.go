package models

import "time"

type NotificationType string

const (
	NotifPaymentReceived NotificationType = "payment_received"
	NotifInvoiceSent     NotificationType = "invoice_sent"
	NotifTaskCompleted   NotificationType = "task_completed"
	NotifReminder        NotificationType = "reminder"
)

// Notification is a persisted feed entry.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	ClientID  string           `json:"client_id,omitempty"`
	InvoiceID string           `json:"invoice_id,omitempty"`
	TaskID    string           `json:"task_id,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// Advisory is a transient banner derived from the current collections
// on every read. It is never stored; dismissing one only hides it until
// the underlying condition recurs.
type Advisory struct {
	ID       string `json:"id"`
	Severity string `json:"severity"` // success|error|info|warning
	Title    string `json:"title"`
	Message  string `json:"message"`
}
