package analytics

import (
	"time"

	"hustlepro/internal/models"
)

// Range selects the analysis period for the report metrics.
type Range string

const (
	RangeWeekly    Range = "weekly"
	RangeMonthly   Range = "monthly"
	RangeQuarterly Range = "quarterly"
	RangeYearly    Range = "yearly"
	RangeAll       Range = "all"
)

// ParseRange maps a query value to a Range. Empty defaults to monthly,
// anything unrecognized falls through to all-time.
func ParseRange(s string) Range {
	switch Range(s) {
	case RangeWeekly, RangeMonthly, RangeQuarterly, RangeYearly:
		return Range(s)
	case RangeAll:
		return RangeAll
	case "":
		return RangeMonthly
	default:
		return RangeAll
	}
}

// Window is the concrete [Start, End] interval a Range resolves to.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains uses inclusive bounds on both ends.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Window resolves the range against the given clock. Weekly starts on
// the most recent Sunday, quarterly on the first day of the current
// 3-month block, and all-time on a fixed 2020-01-01 floor.
func (r Range) Window(now time.Time) Window {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch r {
	case RangeWeekly:
		weekStart := startOfDay.AddDate(0, 0, -int(startOfDay.Weekday()))
		return Window{Start: weekStart, End: now}
	case RangeMonthly:
		return Window{
			Start: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
			End:   now,
		}
	case RangeQuarterly:
		quarterMonth := time.Month((int(now.Month())-1)/3*3 + 1)
		return Window{
			Start: time.Date(now.Year(), quarterMonth, 1, 0, 0, 0, 0, now.Location()),
			End:   now,
		}
	case RangeYearly:
		return Window{
			Start: time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()),
			End:   now,
		}
	default:
		return Window{
			Start: time.Date(2020, time.January, 1, 0, 0, 0, 0, now.Location()),
			End:   now,
		}
	}
}

// FilterPayments keeps payments whose date falls inside the window.
func FilterPayments(payments []models.Payment, w Window) []models.Payment {
	out := make([]models.Payment, 0, len(payments))
	for _, p := range payments {
		if w.Contains(p.Date) {
			out = append(out, p)
		}
	}
	return out
}

// FilterInvoices keys off the due date, matching the original reports.
func FilterInvoices(invoices []models.Invoice, w Window) []models.Invoice {
	out := make([]models.Invoice, 0, len(invoices))
	for _, i := range invoices {
		if w.Contains(i.DueDate) {
			out = append(out, i)
		}
	}
	return out
}

// FilterTasks keys off the deadline.
func FilterTasks(tasks []models.Task, w Window) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if w.Contains(t.Deadline) {
			out = append(out, t)
		}
	}
	return out
}
