package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hustlepro/internal/models"
)

var testNow = time.Date(2026, time.September, 15, 12, 0, 0, 0, time.UTC)

func TestEvaluate_EmptyCollections(t *testing.T) {
	s := Evaluate(Collections{}, RangeMonthly, testNow)

	require.Zero(t, s.TotalRevenue)
	require.Zero(t, s.AverageInvoiceValue)
	require.Zero(t, s.PaymentDelayDays)
	require.Zero(t, s.OnTimeVsLate.OnTimePercentage)
	require.Zero(t, s.TaskCompletionRate)
	require.Zero(t, s.AverageTaskDurationDays)
	require.Zero(t, s.CollectionRate)
	require.Zero(t, s.RepeatBusinessRate)
	require.Zero(t, s.AveragePaymentPerProject)
	require.Empty(t, s.EarningsByClient)
	require.Empty(t, s.TopClientsByRevenue)
	require.False(t, math.IsNaN(s.TaskCompletionRate))
	require.False(t, math.IsNaN(s.OnTimeVsLate.OnTimePercentage))
}

func TestTotalRevenue_IgnoresOutOfRangePayments(t *testing.T) {
	inRange := models.Payment{ID: "p1", ClientID: "c1", Amount: 500, Date: testNow.AddDate(0, 0, -1)}
	outOfRange := models.Payment{ID: "p2", ClientID: "c1", Amount: 9999, Date: testNow.AddDate(0, -2, 0)}

	c := Collections{Payments: []models.Payment{inRange, outOfRange}}
	s := Evaluate(c, RangeMonthly, testNow)
	require.Equal(t, 500.0, s.TotalRevenue)

	// Changing the out-of-range amount must not move the metric.
	c.Payments[1].Amount = 123456
	s = Evaluate(c, RangeMonthly, testNow)
	require.Equal(t, 500.0, s.TotalRevenue)
}

func TestOnTimeVsLatePayments_Percentage(t *testing.T) {
	invoices := []models.Invoice{
		{ID: "i1", PaymentStatus: models.PaymentPaid, DueDate: testNow.AddDate(0, 0, 5)},  // on time
		{ID: "i2", PaymentStatus: models.PaymentPaid, DueDate: testNow.AddDate(0, 0, -5)}, // late
		{ID: "i3", PaymentStatus: models.PaymentPaid, DueDate: testNow.AddDate(0, 0, 1)},  // on time
		{ID: "i4", PaymentStatus: models.PaymentPending, DueDate: testNow},                // not counted
	}

	res := OnTimeVsLatePayments(invoices, testNow)
	require.Equal(t, 2, res.OnTime)
	require.Equal(t, 1, res.Late)
	require.InDelta(t, 100.0*2/3, res.OnTimePercentage, 1e-9)

	res = OnTimeVsLatePayments(nil, testNow)
	require.Zero(t, res.OnTimePercentage)
}

func TestEvaluate_WorkedExample(t *testing.T) {
	// Two invoices (1000, 2000) due this month, one payment of 1000
	// against the first.
	client := models.Client{ID: "c1", Name: "Acme"}
	inv1 := models.Invoice{ID: "i1", ClientID: "c1", Total: 1000, PaidAmount: 1000,
		PaymentStatus: models.PaymentPaid, DueDate: testNow.AddDate(0, 0, -3)}
	inv2 := models.Invoice{ID: "i2", ClientID: "c1", Total: 2000,
		PaymentStatus: models.PaymentPending, DueDate: testNow.AddDate(0, 0, 5)}
	pay := models.Payment{ID: "p1", ClientID: "c1", InvoiceID: "i1", Amount: 1000,
		Date: testNow.AddDate(0, 0, -3), Status: models.PaymentStateCompleted}

	s := Evaluate(Collections{
		Clients:  []models.Client{client},
		Invoices: []models.Invoice{inv1, inv2},
		Payments: []models.Payment{pay},
	}, RangeMonthly, testNow)

	require.Equal(t, 1000.0, s.TotalRevenue)
	require.InDelta(t, 100.0*1000/3000, s.CollectionRate, 1e-9) // 33.3%
	require.Equal(t, 2000.0, s.RevenueForecast)
	require.Equal(t, 1500.0, s.AverageInvoiceValue)
}

func TestEarningsByClient_StableForZeroTies(t *testing.T) {
	clients := []models.Client{
		{ID: "c1", Name: "First"},
		{ID: "c2", Name: "Second"},
		{ID: "c3", Name: "Third"},
		{ID: "c4", Name: "Earner"},
	}
	payments := []models.Payment{
		{ID: "p1", ClientID: "c4", Amount: 100, Date: testNow},
	}

	out := EarningsByClient(clients, payments)
	require.Len(t, out, 4)
	require.Equal(t, "Earner", out[0].Name)
	// Zero-earning clients keep their original relative order.
	require.Equal(t, "First", out[1].Name)
	require.Equal(t, "Second", out[2].Name)
	require.Equal(t, "Third", out[3].Name)
	require.InDelta(t, 100.0, out[0].Percentage, 1e-9)
}

func TestWindow_Boundaries(t *testing.T) {
	// 2026-09-15 is a Tuesday; the week starts on Sunday the 13th.
	w := RangeWeekly.Window(testNow)
	require.Equal(t, time.Date(2026, time.September, 13, 0, 0, 0, 0, time.UTC), w.Start)
	require.Equal(t, testNow, w.End)

	w = RangeMonthly.Window(testNow)
	require.Equal(t, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), w.Start)

	// September sits in the Jul–Sep block.
	w = RangeQuarterly.Window(testNow)
	require.Equal(t, time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC), w.Start)

	w = RangeYearly.Window(testNow)
	require.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), w.Start)

	w = RangeAll.Window(testNow)
	require.Equal(t, 2020, w.Start.Year())

	// Inclusive bounds.
	require.True(t, w.Contains(w.Start))
	require.True(t, w.Contains(w.End))
	require.False(t, w.Contains(w.End.Add(time.Second)))
}

func TestParseRange(t *testing.T) {
	require.Equal(t, RangeWeekly, ParseRange("weekly"))
	require.Equal(t, RangeMonthly, ParseRange(""))
	require.Equal(t, RangeAll, ParseRange("fortnightly"))
}

func TestInvoiceAgingReport_Buckets(t *testing.T) {
	c := Collections{
		Clients: []models.Client{{ID: "c1", Name: "Acme"}},
		Invoices: []models.Invoice{
			{ID: "i1", ClientID: "c1", InvoiceNumber: "INV-2026-0001", Total: 100,
				PaymentStatus: models.PaymentPending, DueDate: testNow.AddDate(0, 0, -45)},
			{ID: "i2", ClientID: "c1", InvoiceNumber: "INV-2026-0002", Total: 100,
				PaymentStatus: models.PaymentPending, DueDate: testNow.AddDate(0, 0, 10)},
			{ID: "i3", ClientID: "c1", InvoiceNumber: "INV-2026-0003", Total: 100, PaidAmount: 100,
				PaymentStatus: models.PaymentPaid, DueDate: testNow.AddDate(0, 0, -400)},
		},
	}

	rows := InvoiceAgingReport(c, testNow)
	require.Len(t, rows, 3)
	// Most overdue first.
	require.Equal(t, "INV-2026-0001", rows[0].InvoiceNumber)
	require.Equal(t, "31-60 days", rows[0].AgingCategory)
	// Paid invoices never age.
	byNumber := map[string]InvoiceAgingRow{}
	for _, r := range rows {
		byNumber[r.InvoiceNumber] = r
	}
	require.Equal(t, "Current", byNumber["INV-2026-0002"].AgingCategory)
	require.Equal(t, "Current", byNumber["INV-2026-0003"].AgingCategory)
	require.Zero(t, byNumber["INV-2026-0003"].DaysOverdue)
}

func TestMonthlyEarningsSeries(t *testing.T) {
	payments := []models.Payment{
		{ID: "p1", Amount: 100, Date: testNow},
		{ID: "p2", Amount: 200, Date: testNow.AddDate(0, -1, 0)},
		{ID: "p3", Amount: 400, Date: testNow.AddDate(0, -7, 0)}, // outside the series
	}

	series := MonthlyEarningsSeries(payments, testNow, 6)
	require.Len(t, series, 6)
	require.Equal(t, "Apr 2026", series[0].Month)
	require.Equal(t, "Sep 2026", series[5].Month)
	require.Equal(t, 100.0, series[5].Earnings)
	require.Equal(t, 200.0, series[4].Earnings)
	var total float64
	for _, m := range series {
		total += m.Earnings
	}
	require.Equal(t, 300.0, total)
}

func TestTasksByClient_RankingAndRates(t *testing.T) {
	clients := []models.Client{{ID: "c1", Name: "A"}, {ID: "c2", Name: "B"}}
	tasks := []models.Task{
		{ID: "t1", ClientID: "c2", Status: models.TaskCompleted, Deadline: testNow},
		{ID: "t2", ClientID: "c2", Status: models.TaskPending, Deadline: testNow},
		{ID: "t3", ClientID: "c1", Status: models.TaskInProgress, Deadline: testNow},
	}

	out := TasksByClient(clients, tasks)
	require.Equal(t, "B", out[0].Name)
	require.Equal(t, 2, out[0].TotalTasks)
	require.InDelta(t, 50.0, out[0].CompletionRate, 1e-9)
	require.Equal(t, 1, out[1].InProgress)
}
