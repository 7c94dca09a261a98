package models

import "time"

type PaymentMethod string

const (
	MethodCash PaymentMethod = "cash"
	MethodBank PaymentMethod = "bank"
	MethodUPI  PaymentMethod = "upi"
	MethodCard PaymentMethod = "card"
)

func IsValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case MethodCash, MethodBank, MethodUPI, MethodCard:
		return true
	}
	return false
}

type PaymentState string

const (
	PaymentStatePending   PaymentState = "pending"
	PaymentStateCompleted PaymentState = "completed"
	PaymentStateFailed    PaymentState = "failed"
)

func IsValidPaymentState(s PaymentState) bool {
	switch s {
	case PaymentStatePending, PaymentStateCompleted, PaymentStateFailed:
		return true
	}
	return false
}

// Payment records money received from a client, optionally against an
// invoice. Completed payments linked to an invoice are applied to it
// when recorded.
type Payment struct {
	ID              string        `json:"id"`
	UserID          string        `json:"user_id"`
	ClientID        string        `json:"client_id"`
	InvoiceID       string        `json:"invoice_id,omitempty"`
	Amount          float64       `json:"amount"`
	Date            time.Time     `json:"date"`
	Method          PaymentMethod `json:"method"`
	Status          PaymentState  `json:"status"`
	ReferenceNumber string        `json:"reference_number,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
