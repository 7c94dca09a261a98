package services

import (
	"context"
	"fmt"
	"time"

	"hustlepro/internal/models"
	"hustlepro/internal/repositories"
)

// feedLimit caps the persisted feed the dashboard shows.
const feedLimit = 10

type NotificationService struct {
	Repo *repositories.NotificationRepository
}

func NewNotificationService(repo *repositories.NotificationRepository) *NotificationService {
	return &NotificationService{Repo: repo}
}

func (s *NotificationService) ListLatest(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.Repo.ListLatest(ctx, userID, feedLimit)
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, id string) error {
	return s.Repo.MarkRead(ctx, userID, id)
}

func (s *NotificationService) Clear(ctx context.Context, userID string) error {
	return s.Repo.Clear(ctx, userID)
}

// DeriveAdvisories recomputes the transient banners from the current
// collections. Nothing here is persisted; dismissing a banner only
// hides it until the condition recurs.
func DeriveAdvisories(tasks []models.Task, invoices []models.Invoice, payments []models.Payment, now time.Time) []models.Advisory {
	var out []models.Advisory

	var overdueTasks int
	for _, t := range tasks {
		if t.IsOverdue(now) {
			overdueTasks++
		}
	}
	if overdueTasks > 0 {
		out = append(out, models.Advisory{
			ID:       "overdue-tasks",
			Severity: "error",
			Title:    "Overdue Tasks",
			Message:  fmt.Sprintf("You have %d overdue task%s that need attention", overdueTasks, plural(overdueTasks)),
		})
	}

	// the lifecycle status gates this, not the derived payment status
	var overdueInvoices int
	for _, inv := range invoices {
		if inv.DueDate.Before(now) && inv.Status != models.InvoicePaid {
			overdueInvoices++
		}
	}
	if overdueInvoices > 0 {
		verb := " is"
		if overdueInvoices > 1 {
			verb = "s are"
		}
		out = append(out, models.Advisory{
			ID:       "overdue-invoices",
			Severity: "warning",
			Title:    "Payment Overdue",
			Message:  fmt.Sprintf("%d invoice%s past due date", overdueInvoices, verb),
		})
	}

	var pendingPayments int
	for _, p := range payments {
		if p.Status == models.PaymentStatePending {
			pendingPayments++
		}
	}
	if pendingPayments > 0 {
		out = append(out, models.Advisory{
			ID:       "pending-payments",
			Severity: "info",
			Title:    "Pending Payments",
			Message:  fmt.Sprintf("%d payment%s awaiting confirmation", pendingPayments, plural(pendingPayments)),
		})
	}

	var completedToday int
	y, m, d := now.Date()
	for _, t := range tasks {
		if t.Status != models.TaskCompleted {
			continue
		}
		when := t.UpdatedAt
		if when.IsZero() {
			when = t.CreatedAt
		}
		ty, tm, td := when.Date()
		if ty == y && tm == m && td == d {
			completedToday++
		}
	}
	if completedToday > 0 {
		out = append(out, models.Advisory{
			ID:       "daily-achievement",
			Severity: "success",
			Title:    "Great Progress!",
			Message:  fmt.Sprintf("You've completed %d task%s today. Keep it up!", completedToday, plural(completedToday)),
		})
	}

	return out
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
