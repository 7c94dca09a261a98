package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplyPaymentBoundaries(t *testing.T) {
	inv := Invoice{Total: 1000, Status: InvoiceSent, PaymentStatus: PaymentPending}

	inv.ApplyPayment(400)
	require.Equal(t, PaymentPartiallyPaid, inv.PaymentStatus)
	require.Equal(t, InvoiceSent, inv.Status)
	require.InDelta(t, 600, inv.PendingAmount(), 1e-9)

	inv.ApplyPayment(600)
	require.Equal(t, PaymentPaid, inv.PaymentStatus)
	require.Equal(t, InvoicePaid, inv.Status)
	require.InDelta(t, 0, inv.PendingAmount(), 1e-9)
}

func TestApplyPaymentOvershootStaysPaid(t *testing.T) {
	inv := Invoice{Total: 500, Status: InvoiceSent}
	inv.ApplyPayment(700)
	require.Equal(t, PaymentPaid, inv.PaymentStatus)
	require.InDelta(t, 700, inv.PaidAmount, 1e-9)
}

func TestApplyPaymentZeroKeepsPending(t *testing.T) {
	inv := Invoice{Total: 500, Status: InvoiceDraft, PaymentStatus: PaymentPending}
	inv.ApplyPayment(0)
	require.Equal(t, PaymentPending, inv.PaymentStatus)
	require.Equal(t, InvoiceDraft, inv.Status)
}

func TestDaysOverdue(t *testing.T) {
	now := time.Date(2026, time.September, 15, 12, 0, 0, 0, time.UTC)

	due := Invoice{DueDate: now.AddDate(0, 0, -10), PaymentStatus: PaymentPending}
	require.Equal(t, 10, due.DaysOverdue(now))

	paid := Invoice{DueDate: now.AddDate(0, 0, -10), PaymentStatus: PaymentPaid}
	require.Equal(t, 0, paid.DaysOverdue(now))

	future := Invoice{DueDate: now.AddDate(0, 0, 5), PaymentStatus: PaymentPending}
	require.Equal(t, 0, future.DaysOverdue(now))
}

func TestAgingCategory(t *testing.T) {
	require.Equal(t, "Current", AgingCategory(0))
	require.Equal(t, "1-30 days", AgingCategory(1))
	require.Equal(t, "1-30 days", AgingCategory(30))
	require.Equal(t, "31-60 days", AgingCategory(31))
	require.Equal(t, "61-90 days", AgingCategory(90))
	require.Equal(t, "90+ days", AgingCategory(91))
}
