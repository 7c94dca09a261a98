package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hustlepro/internal/analytics"
	"hustlepro/internal/models"
)

type stubFetcher struct {
	c analytics.Collections
}

func (s stubFetcher) Collections(ctx context.Context, userID string) (analytics.Collections, error) {
	return s.c, nil
}

func exportFixture() analytics.Collections {
	now := time.Now()
	return analytics.Collections{
		Clients: []models.Client{
			{ID: "c1", Name: "Acme Studio", Email: "acme@example.com", Phone: "9876543210", Address: "12 Main Rd"},
		},
		Tasks: []models.Task{
			{ID: "t1", ClientID: "c1", Title: "Logo Design", Price: 5000, Deadline: now.AddDate(0, 0, 7),
				Priority: models.PriorityHigh, Status: models.TaskInProgress},
		},
		Invoices: []models.Invoice{
			{ID: "i1", ClientID: "c1", InvoiceNumber: "INV-2026-0001", Total: 5900, DueDate: now,
				Status: models.InvoiceSent, PaymentStatus: models.PaymentPending},
		},
		Payments: []models.Payment{
			{ID: "p1", ClientID: "c1", InvoiceID: "i1", Amount: 2000, Date: now,
				Method: models.MethodUPI, Status: models.PaymentStateCompleted},
		},
	}
}

func TestWriteCSVHeaders(t *testing.T) {
	svc := NewExportService(stubFetcher{c: exportFixture()})

	expected := map[string][]string{
		"invoices":       {"Invoice Number", "Client", "Amount", "Due Date", "Status", "Payment Status"},
		"payments":       {"Date", "Client", "Amount", "Method", "Status", "Invoice"},
		"clients":        {"Name", "Email", "Phone", "Address"},
		"tasks":          {"Title", "Client", "Price", "Deadline", "Priority", "Status"},
		"revenue":        {"Client", "Total Revenue", "Total Invoiced", "Pending Amount", "Collection Rate"},
		"task-status":    {"Task", "Client", "Status", "Priority", "Deadline", "Price", "Overdue", "Days Overdue"},
		"invoice-aging":  {"Invoice Number", "Client", "Total", "Paid Amount", "Pending Amount", "Due Date", "Status", "Days Overdue", "Aging Category"},
		"client-summary": {"Client", "Email", "Phone", "Total Tasks", "Completed Tasks", "Completion Rate", "Total Invoices", "Total Revenue", "Pending Amount", "Avg Payment Delay", "Last Task Date"},
	}

	for exportType, header := range expected {
		var buf bytes.Buffer
		require.NoError(t, svc.WriteCSV(context.Background(), &buf, "user1", exportType, "all"), exportType)

		records, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err, exportType)
		require.NotEmpty(t, records, exportType)
		require.Equal(t, header, records[0], exportType)
		// every type has fixture data behind it
		require.Len(t, records, 2, exportType)
	}
}

func TestWriteCSVRejectsUnknownType(t *testing.T) {
	svc := NewExportService(stubFetcher{})
	var buf bytes.Buffer
	require.Error(t, svc.WriteCSV(context.Background(), &buf, "user1", "ledger", "all"))
}

func TestWriteCSVCurrentMonthFilter(t *testing.T) {
	c := exportFixture()
	// push the only payment far into the past
	c.Payments[0].Date = time.Now().AddDate(0, -3, 0)
	svc := NewExportService(stubFetcher{c: c})

	var buf bytes.Buffer
	require.NoError(t, svc.WriteCSV(context.Background(), &buf, "user1", "payments", "current-month"))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1) // header only
}

func TestWriteCSVPaymentRowLinksInvoiceNumber(t *testing.T) {
	svc := NewExportService(stubFetcher{c: exportFixture()})

	var buf bytes.Buffer
	require.NoError(t, svc.WriteCSV(context.Background(), &buf, "user1", "payments", "all"))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	row := records[1]
	require.Equal(t, "Acme Studio", row[1])
	require.Equal(t, "2000", row[2])
	require.Equal(t, "upi", row[3])
	require.Equal(t, "INV-2026-0001", row[5])
}

func TestExportFileName(t *testing.T) {
	now := time.Date(2026, time.September, 15, 12, 0, 0, 0, time.UTC)
	require.Equal(t, "hustlepro-invoices-2026-09-15.csv", ExportFileName("invoices", now))
}
