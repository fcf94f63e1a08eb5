package accounting

import (
	"fmt"
	"time"

	"github.com/ateliersoft/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Granularity selects the bucket size for period grouping.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// IsValid reports whether g is a known granularity.
func (g Granularity) IsValid() bool {
	return g == GranularityDay || g == GranularityWeek || g == GranularityMonth
}

// PeriodTotals is the in/out sum for one bucket.
type PeriodTotals struct {
	In  decimal.Decimal `json:"in"`
	Out decimal.Decimal `json:"out"`
}

// GroupByPeriod buckets ledger entries by due date into period totals.
// Keys: day -> "2006-01-02", month -> "2006-01", week -> "2006-W05" using
// ISO week numbering (Monday-start, week 1 holds the year's first Thursday).
// Buckets with no entries do not appear in the map.
func GroupByPeriod(entries []domain.CashFlowEntry, granularity Granularity) map[string]PeriodTotals {
	buckets := make(map[string]PeriodTotals)
	for _, e := range entries {
		key := periodKey(e.DueDate, granularity)
		totals := buckets[key]
		switch e.Direction {
		case domain.DirectionIn:
			totals.In = totals.In.Add(e.Amount)
		case domain.DirectionOut:
			totals.Out = totals.Out.Add(e.Amount)
		}
		buckets[key] = totals
	}
	return buckets
}

func periodKey(t time.Time, granularity Granularity) string {
	switch granularity {
	case GranularityWeek:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case GranularityMonth:
		return t.Format("2006-01")
	default:
		return t.Format("2006-01-02")
	}
}

// Summary holds the dashboard figures derived from the ledger.
type Summary struct {
	TotalReceivable   decimal.Decimal `json:"totalReceivable"`
	TotalPayable      decimal.Decimal `json:"totalPayable"`
	ProjectedBalance  decimal.Decimal `json:"projectedBalance"`
	ReceivedThisMonth decimal.Decimal `json:"receivedThisMonth"`
	PaidThisMonth     decimal.Decimal `json:"paidThisMonth"`
	NetThisMonth      decimal.Decimal `json:"netThisMonth"`
}

// Summarize reduces ledger entries to dashboard figures. "This month"
// means the calendar month containing now (local calendar, not a rolling
// 30-day window). Pure: an empty input yields all zeros.
func Summarize(entries []domain.CashFlowEntry, now time.Time) Summary {
	s := Summary{
		TotalReceivable:   decimal.Zero,
		TotalPayable:      decimal.Zero,
		ReceivedThisMonth: decimal.Zero,
		PaidThisMonth:     decimal.Zero,
	}

	for _, e := range entries {
		switch e.Status {
		case domain.EntryPending:
			if e.Direction == domain.DirectionIn {
				s.TotalReceivable = s.TotalReceivable.Add(e.Amount)
			} else {
				s.TotalPayable = s.TotalPayable.Add(e.Amount)
			}
		case domain.EntryPaid:
			if e.PaidAt == nil || !sameMonth(*e.PaidAt, now) {
				continue
			}
			if e.Direction == domain.DirectionIn {
				s.ReceivedThisMonth = s.ReceivedThisMonth.Add(e.Amount)
			} else {
				s.PaidThisMonth = s.PaidThisMonth.Add(e.Amount)
			}
		}
	}

	s.ProjectedBalance = s.TotalReceivable.Sub(s.TotalPayable)
	s.NetThisMonth = s.ReceivedThisMonth.Sub(s.PaidThisMonth)
	return s
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
