package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQuoteStatus_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		name    string
		from    QuoteStatus
		to      QuoteStatus
		allowed bool
	}{
		{"pending to approved", QuotePending, QuoteApproved, true},
		{"pending to cancelled", QuotePending, QuoteCancelled, true},
		{"pending to paid skips approval", QuotePending, QuotePaid, false},
		{"pending to pending", QuotePending, QuotePending, false},
		{"approved to paid", QuoteApproved, QuotePaid, true},
		{"approved to cancelled", QuoteApproved, QuoteCancelled, true},
		{"approved back to pending", QuoteApproved, QuotePending, false},
		{"paid is terminal", QuotePaid, QuoteCancelled, false},
		{"paid cannot revert", QuotePaid, QuoteApproved, false},
		{"cancelled is terminal", QuoteCancelled, QuotePending, false},
		{"cancelled cannot be paid", QuoteCancelled, QuotePaid, false},
		{"unknown status has no transitions", QuoteStatus("DRAFT"), QuoteApproved, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestQuoteStatus_IsTerminal(t *testing.T) {
	assert.False(t, QuotePending.IsTerminal())
	assert.False(t, QuoteApproved.IsTerminal())
	assert.True(t, QuotePaid.IsTerminal())
	assert.True(t, QuoteCancelled.IsTerminal())
}

func TestQuoteStatus_IsValid(t *testing.T) {
	assert.True(t, QuotePending.IsValid())
	assert.True(t, QuoteApproved.IsValid())
	assert.True(t, QuotePaid.IsValid())
	assert.True(t, QuoteCancelled.IsValid())
	assert.False(t, QuoteStatus("DRAFT").IsValid())
	assert.False(t, QuoteStatus("").IsValid())
}

func TestQuote_IsEditable(t *testing.T) {
	q := Quote{Status: QuotePending}
	assert.True(t, q.IsEditable())

	q.Status = QuoteApproved
	assert.False(t, q.IsEditable())

	now := time.Now()
	q.Status = QuotePending
	q.DeletedAt = &now
	assert.False(t, q.IsEditable())
}

func TestQuote_IsDeletable(t *testing.T) {
	q := Quote{Status: QuotePending}
	assert.True(t, q.IsDeletable())

	q.Status = QuoteCancelled
	assert.True(t, q.IsDeletable())

	q.Status = QuoteApproved
	assert.False(t, q.IsDeletable())

	q.Status = QuotePaid
	assert.False(t, q.IsDeletable())
}

func TestQuote_IsConverted(t *testing.T) {
	q := Quote{}
	assert.False(t, q.IsConverted())

	projectID := "project-1"
	q.ProjectID = &projectID
	assert.True(t, q.IsConverted())
}
