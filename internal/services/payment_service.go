package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"hustlepro/internal/models"
)

// Store interfaces are satisfied by the concrete repositories; the
// payment flow touches three tables, so it accepts them as interfaces.

type PaymentStore interface {
	Create(ctx context.Context, p *models.Payment) error
	Update(ctx context.Context, p *models.Payment) error
	GetByID(ctx context.Context, userID, id string) (*models.Payment, error)
	List(ctx context.Context, userID string) ([]models.Payment, error)
	Delete(ctx context.Context, userID, id string) error
}

type InvoiceStore interface {
	GetByID(ctx context.Context, userID, id string) (*models.Invoice, error)
	Update(ctx context.Context, inv *models.Invoice) error
}

type NotificationStore interface {
	Create(ctx context.Context, n *models.Notification) error
}

type PaymentService struct {
	Payments      PaymentStore
	Invoices      InvoiceStore
	Notifications NotificationStore
}

func NewPaymentService(payments PaymentStore, invoices InvoiceStore, notifications NotificationStore) *PaymentService {
	return &PaymentService{Payments: payments, Invoices: invoices, Notifications: notifications}
}

// Record persists the payment and, when it is completed and linked to
// an invoice, applies the amount to that invoice. A feed entry is
// written either way.
func (s *PaymentService) Record(ctx context.Context, p *models.Payment) error {
	if p.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	if p.Method == "" {
		p.Method = models.MethodUPI
	}
	if !models.IsValidPaymentMethod(p.Method) {
		return errors.New("invalid payment method")
	}
	if p.Status == "" {
		p.Status = models.PaymentStateCompleted
	}
	if !models.IsValidPaymentState(p.Status) {
		return errors.New("invalid payment status")
	}
	now := time.Now()
	if p.Date.IsZero() {
		p.Date = now
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.Payments.Create(ctx, p); err != nil {
		return err
	}

	if p.Status == models.PaymentStateCompleted && p.InvoiceID != "" {
		inv, err := s.Invoices.GetByID(ctx, p.UserID, p.InvoiceID)
		if err != nil {
			return err
		}
		if inv == nil {
			return errors.New("invoice not found")
		}
		inv.ApplyPayment(p.Amount)
		inv.UpdatedAt = now
		if err := s.Invoices.Update(ctx, inv); err != nil {
			return err
		}
	}

	n := &models.Notification{
		ID:        uuid.NewString(),
		UserID:    p.UserID,
		Type:      models.NotifPaymentReceived,
		Title:     "Payment Received",
		Message:   fmt.Sprintf("Payment of ₹%.2f received", p.Amount),
		ClientID:  p.ClientID,
		InvoiceID: p.InvoiceID,
		CreatedAt: now,
	}
	return s.Notifications.Create(ctx, n)
}

// Update edits the payment row only; amounts already applied to an
// invoice are not rolled back.
func (s *PaymentService) Update(ctx context.Context, p *models.Payment) error {
	if p.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	if !models.IsValidPaymentMethod(p.Method) {
		return errors.New("invalid payment method")
	}
	if !models.IsValidPaymentState(p.Status) {
		return errors.New("invalid payment status")
	}
	p.UpdatedAt = time.Now()
	return s.Payments.Update(ctx, p)
}

func (s *PaymentService) GetByID(ctx context.Context, userID, id string) (*models.Payment, error) {
	return s.Payments.GetByID(ctx, userID, id)
}

func (s *PaymentService) List(ctx context.Context, userID string) ([]models.Payment, error) {
	return s.Payments.List(ctx, userID)
}

func (s *PaymentService) Delete(ctx context.Context, userID, id string) error {
	return s.Payments.Delete(ctx, userID, id)
}
