package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"hustlepro/internal/models"
)

type EmailService interface {
	SendWelcomeEmail(email, name string) error
	SendPaymentReminder(email string, inv *models.Invoice, clientName string) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
	}
}

func (s *emailService) SendWelcomeEmail(email, name string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome to HustlePro!")

	body := fmt.Sprintf(`
		<h2>Welcome to HustlePro, %s!</h2>
		<p>Thank you for signing up. Your workspace is ready.</p>
		<p>Add your first client to get started.</p>
		<p>Best regards,<br>The HustlePro Team</p>
	`, name)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	return nil
}

func (s *emailService) SendPaymentReminder(email string, inv *models.Invoice, clientName string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Payment reminder for invoice %s", inv.InvoiceNumber))

	body := fmt.Sprintf(`
		<h3>Payment reminder</h3>
		<p>Dear %s,</p>
		<p>This is a friendly reminder that invoice <strong>%s</strong> for
		&#8377;%.2f is due on %s. The outstanding amount is &#8377;%.2f.</p>
		<p>If you have already paid, please ignore this email.</p>
	`, clientName, inv.InvoiceNumber, inv.Total, inv.DueDate.Format("02 Jan 2006"), inv.PendingAmount())

	if inv.PaymentLink != "" {
		body += fmt.Sprintf(`<p>Pay via UPI: <a href="%s">%s</a></p>`, inv.PaymentLink, inv.PaymentLink)
	}

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send payment reminder: %w", err)
	}

	return nil
}
