package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"hustlepro/internal/models"
	"hustlepro/internal/repositories"
	"hustlepro/internal/utils"
)

type InvoiceService struct {
	Repo          *repositories.InvoiceRepository
	Clients       *repositories.ClientRepository
	Users         *repositories.UserRepository
	Notifications *repositories.NotificationRepository

	// payee defaults used when the user has no business profile yet
	BusinessName string
	BusinessUPI  string
}

func NewInvoiceService(repo *repositories.InvoiceRepository, clients *repositories.ClientRepository,
	users *repositories.UserRepository, notifications *repositories.NotificationRepository,
	businessName, businessUPI string) *InvoiceService {
	return &InvoiceService{
		Repo:          repo,
		Clients:       clients,
		Users:         users,
		Notifications: notifications,
		BusinessName:  businessName,
		BusinessUPI:   businessUPI,
	}
}

// formatInvoiceNumber renders the INV-YYYY-NNNN display number.
func formatInvoiceNumber(year, seq int) string {
	return fmt.Sprintf("INV-%d-%04d", year, seq)
}

// nextInvoiceNumber derives the number from the user's invoice count.
func (s *InvoiceService) nextInvoiceNumber(ctx context.Context, userID string, issued time.Time) (string, error) {
	n, err := s.Repo.CountByUser(ctx, userID)
	if err != nil {
		return "", err
	}
	return formatInvoiceNumber(issued.Year(), n+1), nil
}

func (s *InvoiceService) computeTotals(inv *models.Invoice) {
	inv.Subtotal = 0
	for _, item := range inv.Items {
		inv.Subtotal += item.Amount
	}
	if inv.TaxRate == 0 {
		inv.TaxRate = models.DefaultTaxRate
	}
	inv.TaxAmount = inv.Subtotal * inv.TaxRate
	inv.Total = inv.Subtotal + inv.TaxAmount
}

func (s *InvoiceService) payee(ctx context.Context, userID string) (name, vpa string) {
	name, vpa = s.BusinessName, s.BusinessUPI
	user, err := s.Users.GetByID(ctx, userID)
	if err != nil || user == nil {
		return name, vpa
	}
	if user.BusinessName != "" {
		name = user.BusinessName
	}
	if user.UPIID != "" {
		vpa = user.UPIID
	}
	return name, vpa
}

func (s *InvoiceService) Create(ctx context.Context, inv *models.Invoice) error {
	if len(inv.Items) == 0 {
		return errors.New("at least one item is required")
	}
	for _, item := range inv.Items {
		if item.Amount < 0 {
			return errors.New("item amount must not be negative")
		}
	}
	if inv.DueDate.IsZero() {
		return errors.New("due date is required")
	}
	client, err := s.Clients.GetByID(ctx, inv.UserID, inv.ClientID)
	if err != nil {
		return err
	}
	if client == nil {
		return errors.New("client not found")
	}

	now := time.Now()
	if inv.IssueDate.IsZero() {
		inv.IssueDate = now
	}
	number, err := s.nextInvoiceNumber(ctx, inv.UserID, inv.IssueDate)
	if err != nil {
		return err
	}
	inv.ID = uuid.NewString()
	inv.InvoiceNumber = number
	if inv.Status == "" {
		inv.Status = models.InvoiceDraft
	}
	if !models.IsValidInvoiceStatus(inv.Status) {
		return errors.New("invalid invoice status")
	}
	s.computeTotals(inv)
	inv.PaidAmount = 0
	inv.PaymentStatus = models.PaymentPending

	name, vpa := s.payee(ctx, inv.UserID)
	if vpa != "" {
		inv.PaymentLink = utils.BuildUPILink(vpa, name, inv.Total, inv.InvoiceNumber)
	}

	inv.CreatedAt = now
	inv.UpdatedAt = now
	return s.Repo.Create(ctx, inv)
}

// Update recomputes totals and re-derives the payment status against
// the new total. Invoice number and paid amount are never edited here.
func (s *InvoiceService) Update(ctx context.Context, inv *models.Invoice) error {
	existing, err := s.Repo.GetByID(ctx, inv.UserID, inv.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.New("invoice not found")
	}
	if len(inv.Items) == 0 {
		return errors.New("at least one item is required")
	}
	if !models.IsValidInvoiceStatus(inv.Status) {
		return errors.New("invalid invoice status")
	}
	inv.InvoiceNumber = existing.InvoiceNumber
	inv.IssueDate = existing.IssueDate
	inv.PaidAmount = existing.PaidAmount
	s.computeTotals(inv)
	inv.ApplyPayment(0)
	inv.UpdatedAt = time.Now()
	return s.Repo.Update(ctx, inv)
}

// MarkSent moves a draft invoice to sent and records a feed entry.
func (s *InvoiceService) MarkSent(ctx context.Context, userID, id string) (*models.Invoice, error) {
	inv, err := s.Repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, errors.New("invoice not found")
	}
	if inv.Status == models.InvoicePaid {
		return nil, errors.New("invoice already paid")
	}
	inv.Status = models.InvoiceSent
	inv.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, inv); err != nil {
		return nil, err
	}

	clientLabel := clientDisplayName(ctx, s.Clients, userID, inv.ClientID)
	n := &models.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      models.NotifInvoiceSent,
		Title:     "Invoice Sent",
		Message:   fmt.Sprintf("Invoice %s sent to %s", inv.InvoiceNumber, clientLabel),
		ClientID:  inv.ClientID,
		InvoiceID: inv.ID,
		CreatedAt: time.Now(),
	}
	if err := s.Notifications.Create(ctx, n); err != nil {
		return nil, err
	}
	return inv, nil
}

// GeneratePaymentLink builds (or rebuilds) the UPI deep link for the
// invoice, persists it, and returns it.
func (s *InvoiceService) GeneratePaymentLink(ctx context.Context, userID, id string) (string, error) {
	inv, err := s.Repo.GetByID(ctx, userID, id)
	if err != nil {
		return "", err
	}
	if inv == nil {
		return "", errors.New("invoice not found")
	}
	name, vpa := s.payee(ctx, userID)
	if vpa == "" {
		return "", errors.New("no UPI id configured")
	}
	inv.PaymentLink = utils.BuildUPILink(vpa, name, inv.Total, inv.InvoiceNumber)
	inv.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, inv); err != nil {
		return "", err
	}
	return inv.PaymentLink, nil
}

func (s *InvoiceService) GetByID(ctx context.Context, userID, id string) (*models.Invoice, error) {
	return s.Repo.GetByID(ctx, userID, id)
}

func (s *InvoiceService) List(ctx context.Context, userID string) ([]models.Invoice, error) {
	return s.Repo.List(ctx, userID)
}

func (s *InvoiceService) Delete(ctx context.Context, userID, id string) error {
	return s.Repo.Delete(ctx, userID, id)
}

func clientDisplayName(ctx context.Context, clients *repositories.ClientRepository, userID, clientID string) string {
	client, err := clients.GetByID(ctx, userID, clientID)
	if err != nil || client == nil {
		return "Unknown"
	}
	return client.Name
}
