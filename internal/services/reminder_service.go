package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"hustlepro/internal/models"
	"hustlepro/internal/repositories"
	"hustlepro/internal/utils"
)

// ReminderService builds payment reminder messages and delivers them
// either as an outbound deep link or over SMTP.
type ReminderService struct {
	Invoices      *repositories.InvoiceRepository
	Clients       *repositories.ClientRepository
	Notifications *repositories.NotificationRepository
	Email         EmailService
}

func NewReminderService(invoices *repositories.InvoiceRepository, clients *repositories.ClientRepository,
	notifications *repositories.NotificationRepository, email EmailService) *ReminderService {
	return &ReminderService{Invoices: invoices, Clients: clients, Notifications: notifications, Email: email}
}

func reminderMessage(inv *models.Invoice, clientName string) string {
	return fmt.Sprintf("Hi %s, this is a friendly reminder that invoice %s for ₹%.2f is due on %s. Outstanding amount: ₹%.2f.",
		clientName, inv.InvoiceNumber, inv.Total, inv.DueDate.Format("02 Jan 2006"), inv.PendingAmount())
}

// Send delivers a payment reminder via whatsapp, email, or sms-style
// link and records a reminder feed entry. For link methods the deep
// link is returned for the caller to open.
func (s *ReminderService) Send(ctx context.Context, userID, invoiceID, method string) (string, error) {
	inv, err := s.Invoices.GetByID(ctx, userID, invoiceID)
	if err != nil {
		return "", err
	}
	if inv == nil {
		return "", errors.New("invoice not found")
	}
	if inv.PaymentStatus == models.PaymentPaid {
		return "", errors.New("invoice already paid")
	}
	client, err := s.Clients.GetByID(ctx, userID, inv.ClientID)
	if err != nil {
		return "", err
	}
	if client == nil {
		return "", errors.New("client not found")
	}

	msg := reminderMessage(inv, client.Name)
	var link string
	switch method {
	case "whatsapp":
		if client.Phone == "" {
			return "", errors.New("client has no phone number")
		}
		link = utils.BuildWhatsAppLink(client.Phone, msg)
	case "email":
		if client.Email == "" {
			return "", errors.New("client has no email address")
		}
		subject := fmt.Sprintf("Payment reminder for invoice %s", inv.InvoiceNumber)
		if s.Email != nil {
			if err := s.Email.SendPaymentReminder(client.Email, inv, client.Name); err != nil {
				// fall back to a compose link when SMTP is down
				log.Printf("[reminder][send] smtp send failed for invoice=%s: %v", inv.InvoiceNumber, err)
				link = utils.BuildMailtoLink(client.Email, subject, msg)
			}
		} else {
			link = utils.BuildMailtoLink(client.Email, subject, msg)
		}
	default:
		return "", fmt.Errorf("unsupported reminder method %q", method)
	}

	n := &models.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      models.NotifReminder,
		Title:     "Reminder Sent",
		Message:   fmt.Sprintf("Payment reminder sent to %s via %s", client.Name, method),
		ClientID:  client.ID,
		InvoiceID: inv.ID,
		CreatedAt: time.Now(),
	}
	if err := s.Notifications.Create(ctx, n); err != nil {
		return "", err
	}
	return link, nil
}
