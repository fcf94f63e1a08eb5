package accounting

import (
	"time"

	"github.com/ateliersoft/backoffice_app/internal/core/domain"
)

// IsQuoteOverdue reports whether a quote has been waiting for approval
// longer than maxAge. Only PENDING quotes can be overdue, and the
// comparison is strict: a quote created exactly maxAge ago is not overdue.
func IsQuoteOverdue(createdAt time.Time, status domain.QuoteStatus, now time.Time, maxAge time.Duration) bool {
	if status != domain.QuotePending {
		return false
	}
	return now.Sub(createdAt) > maxAge
}

// OverdueEntries returns the subset of entries whose due date has passed.
// An entry is overdue iff it is still PENDING and its due date is strictly
// before today; the comparison is date-only, time of day is stripped.
// PAID entries are never overdue regardless of due date.
func OverdueEntries(entries []domain.CashFlowEntry, today time.Time) []domain.CashFlowEntry {
	cutoff := truncateToDay(today)
	var overdue []domain.CashFlowEntry
	for _, e := range entries {
		if e.Status != domain.EntryPending {
			continue
		}
		if truncateToDay(e.DueDate).Before(cutoff) {
			overdue = append(overdue, e)
		}
	}
	return overdue
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
