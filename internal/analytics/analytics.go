// Package analytics is the aggregation layer behind the reports API:
// pure, synchronous passes over the in-memory collections. Empty input
// yields zero-valued metrics, never NaN.
//
// Known limitation carried over from the data model: invoices and tasks
// do not persist an actual paid/completed timestamp, so every delay and
// duration metric substitutes the evaluation clock for it. Anything not
// paid or completed "today" therefore overstates its delay. Fixing this
// needs a schema change, not an analytics change.
package analytics

import (
	"sort"
	"time"

	"hustlepro/internal/models"
)

const hoursPerDay = 24

// Collections is the wholesale per-user snapshot the metrics run over.
type Collections struct {
	Clients  []models.Client
	Tasks    []models.Task
	Invoices []models.Invoice
	Payments []models.Payment
}

type OnTimeVsLate struct {
	OnTime           int     `json:"on_time"`
	Late             int     `json:"late"`
	OnTimePercentage float64 `json:"on_time_percentage"`
}

type ClientEarnings struct {
	ClientID   string  `json:"client_id"`
	Name       string  `json:"name"`
	Earnings   float64 `json:"earnings"`
	Percentage float64 `json:"percentage"`
}

type ClientTaskLoad struct {
	ClientID       string  `json:"client_id"`
	Name           string  `json:"name"`
	TotalTasks     int     `json:"total_tasks"`
	Completed      int     `json:"completed"`
	InProgress     int     `json:"in_progress"`
	Pending        int     `json:"pending"`
	CompletionRate float64 `json:"completion_rate"`
}

type ClientDelay struct {
	ClientID     string  `json:"client_id"`
	Name         string  `json:"name"`
	AverageDelay float64 `json:"average_delay_days"`
}

type ClientCompletionTime struct {
	ClientID          string  `json:"client_id"`
	Name              string  `json:"name"`
	AvgCompletionDays float64 `json:"avg_completion_days"`
}

type PriorityBreakdown struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

type BillableSplit struct {
	Billable        int     `json:"billable"`
	NonBillable     int     `json:"non_billable"`
	BillableRevenue float64 `json:"billable_revenue"`
}

type CashFlow struct {
	Inflow  float64 `json:"inflow"`
	Outflow float64 `json:"outflow"`
	NetFlow float64 `json:"net_flow"`
}

// Summary is the full metrics set for one analysis period.
type Summary struct {
	Range Range `json:"range"`

	// Revenue & earnings
	TotalRevenue        float64          `json:"total_revenue"`
	MonthlyRevenue      float64          `json:"monthly_revenue"`
	AverageInvoiceValue float64          `json:"average_invoice_value"`
	PaymentDelayDays    float64          `json:"payment_delay_days"`
	OnTimeVsLate        OnTimeVsLate     `json:"on_time_vs_late"`
	EarningsByClient    []ClientEarnings `json:"earnings_by_client"`

	// Cash flow & collections
	RevenueForecast          float64  `json:"revenue_forecast"`
	MonthlyCashFlow          CashFlow `json:"monthly_cash_flow"`
	CollectionRate           float64  `json:"collection_rate"`
	PendingInvoices          int      `json:"pending_invoices"`
	OverdueInvoices          int      `json:"overdue_invoices"`
	PendingAmount            float64  `json:"pending_amount"`
	OverdueAmount            float64  `json:"overdue_amount"`
	AveragePaymentPerProject float64  `json:"average_payment_per_project"`

	// Tasks & productivity
	TaskCompletionRate      float64           `json:"task_completion_rate"`
	AverageTaskDurationDays float64           `json:"average_task_duration_days"`
	TasksByClient           []ClientTaskLoad  `json:"tasks_by_client"`
	OverdueTasks            int               `json:"overdue_tasks"`
	TasksByPriority         PriorityBreakdown `json:"tasks_by_priority"`
	BillableVsNonBillable   BillableSplit     `json:"billable_vs_non_billable"`

	// Client insights
	TopClientsByRevenue        []ClientEarnings       `json:"top_clients_by_revenue"`
	ClientsWithHighestDelays   []ClientDelay          `json:"clients_with_highest_delays"`
	RepeatBusinessRate         float64                `json:"repeat_business_rate"`
	AvgCompletionTimePerClient []ClientCompletionTime `json:"avg_completion_time_per_client"`
	ActiveClients              int                    `json:"active_clients"`
}

// Evaluate computes every metric for the given range against the
// supplied clock.
func Evaluate(c Collections, r Range, now time.Time) Summary {
	w := r.Window(now)
	payments := FilterPayments(c.Payments, w)
	invoices := FilterInvoices(c.Invoices, w)
	tasks := FilterTasks(c.Tasks, w)

	s := Summary{Range: r}

	s.TotalRevenue = sumPayments(payments)
	s.MonthlyRevenue = sumPayments(FilterPayments(c.Payments, RangeMonthly.Window(now)))
	s.AverageInvoiceValue = averageInvoiceValue(invoices)
	s.PaymentDelayDays = PaymentDelayTrend(invoices, now)
	s.OnTimeVsLate = OnTimeVsLatePayments(invoices, now)
	s.EarningsByClient = EarningsByClient(c.Clients, payments)

	s.RevenueForecast = revenueForecast(c.Invoices)
	inflow := s.MonthlyRevenue
	s.MonthlyCashFlow = CashFlow{Inflow: inflow, Outflow: inflow * 0.3, NetFlow: inflow * 0.7}
	s.CollectionRate = CollectionRate(c.Invoices, c.Payments)

	for _, inv := range c.Invoices {
		if inv.PaymentStatus == models.PaymentPending {
			s.PendingInvoices++
			s.PendingAmount += inv.PendingAmount()
			if inv.DueDate.Before(now) {
				s.OverdueInvoices++
				s.OverdueAmount += inv.PendingAmount()
			}
		}
	}

	completed := 0
	for _, t := range tasks {
		switch t.Status {
		case models.TaskCompleted:
			completed++
		}
		switch t.Priority {
		case models.PriorityHigh:
			s.TasksByPriority.High++
		case models.PriorityMedium:
			s.TasksByPriority.Medium++
		case models.PriorityLow:
			s.TasksByPriority.Low++
		}
		if t.IsOverdue(now) {
			s.OverdueTasks++
		}
		if t.Price > 0 {
			s.BillableVsNonBillable.Billable++
			s.BillableVsNonBillable.BillableRevenue += t.Price
		} else {
			s.BillableVsNonBillable.NonBillable++
		}
	}
	if len(tasks) > 0 {
		s.TaskCompletionRate = float64(completed) / float64(len(tasks)) * 100
	}
	s.AverageTaskDurationDays = averageTaskDuration(tasks, now)
	s.TasksByClient = TasksByClient(c.Clients, tasks)
	if completed > 0 {
		s.AveragePaymentPerProject = s.TotalRevenue / float64(completed)
	}

	if len(s.EarningsByClient) > 5 {
		s.TopClientsByRevenue = s.EarningsByClient[:5]
	} else {
		s.TopClientsByRevenue = s.EarningsByClient
	}
	s.ClientsWithHighestDelays = ClientsWithHighestDelays(c.Clients, invoices, now)
	s.RepeatBusinessRate = repeatBusinessRate(c.Clients, tasks)
	s.AvgCompletionTimePerClient = avgCompletionTimePerClient(c.Clients, tasks)
	s.ActiveClients = len(c.Clients)

	return s
}

func sumPayments(payments []models.Payment) float64 {
	var sum float64
	for _, p := range payments {
		sum += p.Amount
	}
	return sum
}

func averageInvoiceValue(invoices []models.Invoice) float64 {
	if len(invoices) == 0 {
		return 0
	}
	var sum float64
	for _, i := range invoices {
		sum += i.Total
	}
	return sum / float64(len(invoices))
}

// PaymentDelayTrend averages, over paid invoices, the days between due
// date and the stand-in paid timestamp (now).
func PaymentDelayTrend(invoices []models.Invoice, now time.Time) float64 {
	var total float64
	var paid int
	for _, inv := range invoices {
		if inv.PaymentStatus != models.PaymentPaid {
			continue
		}
		paid++
		if delay := now.Sub(inv.DueDate).Hours() / hoursPerDay; delay > 0 {
			total += delay
		}
	}
	if paid == 0 {
		return 0
	}
	return total / float64(paid)
}

// OnTimeVsLatePayments counts paid invoices whose stand-in paid
// timestamp (now) is at or before the due date.
func OnTimeVsLatePayments(invoices []models.Invoice, now time.Time) OnTimeVsLate {
	var res OnTimeVsLate
	for _, inv := range invoices {
		if inv.PaymentStatus != models.PaymentPaid {
			continue
		}
		if !now.After(inv.DueDate) {
			res.OnTime++
		} else {
			res.Late++
		}
	}
	if n := res.OnTime + res.Late; n > 0 {
		res.OnTimePercentage = float64(res.OnTime) / float64(n) * 100
	}
	return res
}

// EarningsByClient ranks clients by the payments attributed to them,
// descending. Ties keep the input client order.
func EarningsByClient(clients []models.Client, payments []models.Payment) []ClientEarnings {
	total := sumPayments(payments)
	out := make([]ClientEarnings, 0, len(clients))
	for _, c := range clients {
		var earnings float64
		for _, p := range payments {
			if p.ClientID == c.ID {
				earnings += p.Amount
			}
		}
		e := ClientEarnings{ClientID: c.ID, Name: c.Name, Earnings: earnings}
		if total > 0 {
			e.Percentage = earnings / total * 100
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Earnings > out[b].Earnings })
	return out
}

func revenueForecast(invoices []models.Invoice) float64 {
	var sum float64
	for _, inv := range invoices {
		if inv.PaymentStatus == models.PaymentPending || inv.PaymentStatus == models.PaymentPartiallyPaid {
			sum += inv.PendingAmount()
		}
	}
	return sum
}

// CollectionRate is collected-over-invoiced across all time, as a
// percentage.
func CollectionRate(invoices []models.Invoice, payments []models.Payment) float64 {
	var invoiced float64
	for _, inv := range invoices {
		invoiced += inv.Total
	}
	if invoiced == 0 {
		return 0
	}
	return sumPayments(payments) / invoiced * 100
}

func averageTaskDuration(tasks []models.Task, now time.Time) float64 {
	var total float64
	var completed int
	for _, t := range tasks {
		if t.Status != models.TaskCompleted {
			continue
		}
		completed++
		d := now.Sub(t.Deadline).Hours() / hoursPerDay
		if d < 0 {
			d = -d
		}
		total += d
	}
	if completed == 0 {
		return 0
	}
	return total / float64(completed)
}

// TasksByClient ranks clients by task volume, descending, with a
// per-status breakdown.
func TasksByClient(clients []models.Client, tasks []models.Task) []ClientTaskLoad {
	out := make([]ClientTaskLoad, 0, len(clients))
	for _, c := range clients {
		load := ClientTaskLoad{ClientID: c.ID, Name: c.Name}
		for _, t := range tasks {
			if t.ClientID != c.ID {
				continue
			}
			load.TotalTasks++
			switch t.Status {
			case models.TaskCompleted:
				load.Completed++
			case models.TaskInProgress:
				load.InProgress++
			case models.TaskPending:
				load.Pending++
			}
		}
		if load.TotalTasks > 0 {
			load.CompletionRate = float64(load.Completed) / float64(load.TotalTasks) * 100
		}
		out = append(out, load)
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].TotalTasks > out[b].TotalTasks })
	return out
}

// ClientsWithHighestDelays returns the top 5 clients by average payment
// delay over their paid invoices (now() stand-in, see package doc).
func ClientsWithHighestDelays(clients []models.Client, invoices []models.Invoice, now time.Time) []ClientDelay {
	out := make([]ClientDelay, 0, len(clients))
	for _, c := range clients {
		var total float64
		var paid int
		for _, inv := range invoices {
			if inv.ClientID != c.ID || inv.PaymentStatus != models.PaymentPaid {
				continue
			}
			paid++
			if delay := now.Sub(inv.DueDate).Hours() / hoursPerDay; delay > 0 {
				total += delay
			}
		}
		d := ClientDelay{ClientID: c.ID, Name: c.Name}
		if paid > 0 {
			d.AverageDelay = total / float64(paid)
		}
		out = append(out, d)
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].AverageDelay > out[b].AverageDelay })
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

func repeatBusinessRate(clients []models.Client, tasks []models.Task) float64 {
	if len(clients) == 0 {
		return 0
	}
	repeat := 0
	for _, c := range clients {
		n := 0
		for _, t := range tasks {
			if t.ClientID == c.ID {
				n++
			}
		}
		if n > 1 {
			repeat++
		}
	}
	return float64(repeat) / float64(len(clients)) * 100
}

// avgCompletionTimePerClient keeps the source's flat 7-day stand-in per
// completed task; clients are sorted fastest first.
func avgCompletionTimePerClient(clients []models.Client, tasks []models.Task) []ClientCompletionTime {
	out := make([]ClientCompletionTime, 0, len(clients))
	for _, c := range clients {
		completed := 0
		for _, t := range tasks {
			if t.ClientID == c.ID && t.Status == models.TaskCompleted {
				completed++
			}
		}
		ct := ClientCompletionTime{ClientID: c.ID, Name: c.Name}
		if completed > 0 {
			ct.AvgCompletionDays = 7
		}
		out = append(out, ct)
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].AvgCompletionDays < out[b].AvgCompletionDays
	})
	return out
}

// MonthEarnings is one point of the earnings trend line.
type MonthEarnings struct {
	Month    string  `json:"month"`
	Earnings float64 `json:"earnings"`
}

// MonthlyEarningsSeries sums payments per calendar month for the last
// n months, oldest first.
func MonthlyEarningsSeries(payments []models.Payment, now time.Time, n int) []MonthEarnings {
	out := make([]MonthEarnings, 0, n)
	for i := n - 1; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		var sum float64
		for _, p := range payments {
			if p.Date.Year() == month.Year() && p.Date.Month() == month.Month() {
				sum += p.Amount
			}
		}
		out = append(out, MonthEarnings{
			Month:    month.Format("Jan 2006"),
			Earnings: sum,
		})
	}
	return out
}
