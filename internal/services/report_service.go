package services

import (
	"context"
	"time"

	"hustlepro/internal/analytics"
	"hustlepro/internal/models"
	"hustlepro/internal/repositories"
)

// ReportService fetches the user's collections wholesale and feeds them
// to the analytics package. The dataset is small enough that nothing is
// aggregated in SQL.
type ReportService struct {
	Clients  *repositories.ClientRepository
	Tasks    *repositories.TaskRepository
	Invoices *repositories.InvoiceRepository
	Payments *repositories.PaymentRepository
}

func NewReportService(clients *repositories.ClientRepository, tasks *repositories.TaskRepository,
	invoices *repositories.InvoiceRepository, payments *repositories.PaymentRepository) *ReportService {
	return &ReportService{Clients: clients, Tasks: tasks, Invoices: invoices, Payments: payments}
}

func (s *ReportService) Collections(ctx context.Context, userID string) (analytics.Collections, error) {
	var c analytics.Collections
	var err error
	if c.Clients, err = s.Clients.List(ctx, userID); err != nil {
		return c, err
	}
	if c.Tasks, err = s.Tasks.List(ctx, userID); err != nil {
		return c, err
	}
	if c.Invoices, err = s.Invoices.List(ctx, userID); err != nil {
		return c, err
	}
	if c.Payments, err = s.Payments.List(ctx, userID); err != nil {
		return c, err
	}
	return c, nil
}

func (s *ReportService) Summary(ctx context.Context, userID string, r analytics.Range) (analytics.Summary, error) {
	c, err := s.Collections(ctx, userID)
	if err != nil {
		return analytics.Summary{}, err
	}
	return analytics.Evaluate(c, r, time.Now()), nil
}

func (s *ReportService) MonthlyEarnings(ctx context.Context, userID string, months int) ([]analytics.MonthEarnings, error) {
	payments, err := s.Payments.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.MonthlyEarningsSeries(payments, time.Now(), months), nil
}

func (s *ReportService) Revenue(ctx context.Context, userID string) ([]analytics.RevenueReportRow, error) {
	c, err := s.Collections(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.RevenueReport(c), nil
}

func (s *ReportService) TaskStatus(ctx context.Context, userID string) ([]analytics.TaskStatusRow, error) {
	c, err := s.Collections(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.TaskStatusReport(c, time.Now()), nil
}

func (s *ReportService) InvoiceAging(ctx context.Context, userID string) ([]analytics.InvoiceAgingRow, error) {
	c, err := s.Collections(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.InvoiceAgingReport(c, time.Now()), nil
}

func (s *ReportService) ClientSummary(ctx context.Context, userID string) ([]analytics.ClientSummaryRow, error) {
	c, err := s.Collections(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.ClientSummaryReport(c, time.Now()), nil
}

// Advisories derives the transient dashboard banners.
func (s *ReportService) Advisories(ctx context.Context, userID string) ([]models.Advisory, error) {
	c, err := s.Collections(ctx, userID)
	if err != nil {
		return nil, err
	}
	return DeriveAdvisories(c.Tasks, c.Invoices, c.Payments, time.Now()), nil
}
