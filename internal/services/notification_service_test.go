package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hustlepro/internal/models"
)

func TestDeriveAdvisoriesEmptyCollections(t *testing.T) {
	out := DeriveAdvisories(nil, nil, nil, time.Now())
	require.Empty(t, out)
}

func TestDeriveAdvisoriesAllConditions(t *testing.T) {
	now := time.Date(2026, time.September, 15, 12, 0, 0, 0, time.UTC)

	tasks := []models.Task{
		{Title: "late one", Deadline: now.AddDate(0, 0, -3), Status: models.TaskPending},
		{Title: "late two", Deadline: now.AddDate(0, 0, -1), Status: models.TaskInProgress},
		{Title: "done today", Deadline: now.AddDate(0, 0, 2), Status: models.TaskCompleted, UpdatedAt: now.Add(-2 * time.Hour)},
	}
	invoices := []models.Invoice{
		{InvoiceNumber: "INV-2026-0001", DueDate: now.AddDate(0, 0, -5), Status: models.InvoiceSent},
	}
	payments := []models.Payment{
		{Amount: 100, Status: models.PaymentStatePending},
		{Amount: 200, Status: models.PaymentStateCompleted},
	}

	out := DeriveAdvisories(tasks, invoices, payments, now)
	require.Len(t, out, 4)

	require.Equal(t, "overdue-tasks", out[0].ID)
	require.Equal(t, "error", out[0].Severity)
	require.Equal(t, "Overdue Tasks", out[0].Title)
	require.Equal(t, "You have 2 overdue tasks that need attention", out[0].Message)

	require.Equal(t, "overdue-invoices", out[1].ID)
	require.Equal(t, "warning", out[1].Severity)
	require.Equal(t, "Payment Overdue", out[1].Title)
	require.Equal(t, "1 invoice is past due date", out[1].Message)

	require.Equal(t, "pending-payments", out[2].ID)
	require.Equal(t, "info", out[2].Severity)
	require.Equal(t, "1 payment awaiting confirmation", out[2].Message)

	require.Equal(t, "daily-achievement", out[3].ID)
	require.Equal(t, "success", out[3].Severity)
	require.Equal(t, "You've completed 1 task today. Keep it up!", out[3].Message)
}

func TestDeriveAdvisoriesPaidInvoiceNotOverdue(t *testing.T) {
	now := time.Date(2026, time.September, 15, 12, 0, 0, 0, time.UTC)
	invoices := []models.Invoice{
		{DueDate: now.AddDate(0, 0, -5), Status: models.InvoicePaid},
	}
	out := DeriveAdvisories(nil, invoices, nil, now)
	require.Empty(t, out)
}

func TestDeriveAdvisoriesPluralInvoices(t *testing.T) {
	now := time.Date(2026, time.September, 15, 12, 0, 0, 0, time.UTC)
	invoices := []models.Invoice{
		{DueDate: now.AddDate(0, 0, -5), Status: models.InvoiceSent},
		{DueDate: now.AddDate(0, 0, -9), Status: models.InvoiceDraft},
	}
	out := DeriveAdvisories(nil, invoices, nil, now)
	require.Len(t, out, 1)
	require.Equal(t, "2 invoices are past due date", out[0].Message)
}

func TestDeriveAdvisoriesCompletionOnOtherDayIgnored(t *testing.T) {
	now := time.Date(2026, time.September, 15, 12, 0, 0, 0, time.UTC)
	tasks := []models.Task{
		{Deadline: now.AddDate(0, 0, 5), Status: models.TaskCompleted, UpdatedAt: now.AddDate(0, 0, -1)},
	}
	out := DeriveAdvisories(tasks, nil, nil, now)
	require.Empty(t, out)
}
