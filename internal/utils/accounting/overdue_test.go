package accounting_test

import (
	"testing"
	"time"

	"github.com/ateliersoft/backoffice_app/internal/core/domain"
	"github.com/ateliersoft/backoffice_app/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
)

const thirtyDays = 30 * 24 * time.Hour

func TestIsQuoteOverdue(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		createdAt time.Time
		status    domain.QuoteStatus
		want      bool
	}{
		{"exactly 30 days old is not overdue", now.Add(-thirtyDays), domain.QuotePending, false},
		{"30 days and one second is overdue", now.Add(-thirtyDays - time.Second), domain.QuotePending, true},
		{"fresh quote is not overdue", now.Add(-time.Hour), domain.QuotePending, false},
		{"approved quote is never overdue", now.Add(-90 * 24 * time.Hour), domain.QuoteApproved, false},
		{"paid quote is never overdue", now.Add(-90 * 24 * time.Hour), domain.QuotePaid, false},
		{"cancelled quote is never overdue", now.Add(-90 * 24 * time.Hour), domain.QuoteCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accounting.IsQuoteOverdue(tt.createdAt, tt.status, now, thirtyDays)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOverdueEntries(t *testing.T) {
	today := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	paidAt := today.Add(-time.Hour)

	entries := []domain.CashFlowEntry{
		{EntryID: "past-pending", Status: domain.EntryPending, DueDate: time.Date(2024, 6, 14, 23, 59, 0, 0, time.UTC)},
		{EntryID: "due-today", Status: domain.EntryPending, DueDate: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		{EntryID: "future", Status: domain.EntryPending, DueDate: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)},
		{EntryID: "past-paid", Status: domain.EntryPaid, PaidAt: &paidAt, DueDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	overdue := accounting.OverdueEntries(entries, today)

	if assert.Len(t, overdue, 1) {
		assert.Equal(t, "past-pending", overdue[0].EntryID)
	}
}

func TestOverdueEntriesEmptyInput(t *testing.T) {
	assert.Empty(t, accounting.OverdueEntries(nil, time.Now()))
}
