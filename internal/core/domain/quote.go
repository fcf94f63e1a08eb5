package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus indicates where a quote sits in its lifecycle.
type QuoteStatus string

const (
	QuotePending   QuoteStatus = "PENDING"
	QuoteApproved  QuoteStatus = "APPROVED"
	QuotePaid      QuoteStatus = "PAID"
	QuoteCancelled QuoteStatus = "CANCELLED"
)

// IsValid reports whether s is a known quote status.
func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuotePending, QuoteApproved, QuotePaid, QuoteCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the status has no outbound transitions.
func (s QuoteStatus) IsTerminal() bool {
	return s == QuotePaid || s == QuoteCancelled
}

// CanTransitionTo reports whether the status may move to target.
// The transition table is closed: PENDING -> {APPROVED, CANCELLED},
// APPROVED -> {PAID, CANCELLED}, PAID and CANCELLED are terminal.
func (s QuoteStatus) CanTransitionTo(target QuoteStatus) bool {
	switch s {
	case QuotePending:
		return target == QuoteApproved || target == QuoteCancelled
	case QuoteApproved:
		return target == QuotePaid || target == QuoteCancelled
	case QuotePaid, QuoteCancelled:
		return false
	}
	return false
}

// QuoteItem is an immutable product line snapshot owned by a quote.
// Line totals are Quantity * UnitPrice; edits replace the whole collection.
type QuoteItem struct {
	ItemID    string          `json:"itemID"`
	QuoteID   string          `json:"quoteID"`
	ProductID string          `json:"productID"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// QuoteServiceLine is an immutable service line snapshot owned by a quote.
type QuoteServiceLine struct {
	LineID    string          `json:"lineID"`
	QuoteID   string          `json:"quoteID"`
	ServiceID string          `json:"serviceID"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// QuoteStatusChange is one row of a quote's append-only status log.
// FromStatus is nil on the creation row.
type QuoteStatusChange struct {
	ChangeID    string       `json:"changeID"`
	QuoteID     string       `json:"quoteID"`
	FromStatus  *QuoteStatus `json:"fromStatus,omitempty"`
	ToStatus    QuoteStatus  `json:"toStatus"`
	ChangedBy   string       `json:"changedBy"`
	Notes       string       `json:"notes,omitempty"`
	ChangedAt   time.Time    `json:"changedAt"`
}

// Quote is the aggregate root of the quote-to-cash lifecycle.
// It owns its item/service lines and its status log; the status field
// only ever changes through the transition table above.
type Quote struct {
	QuoteID   string      `json:"quoteID"`
	ClientID  string      `json:"clientID"`
	Status    QuoteStatus `json:"status"`
	ApplyFee  bool        `json:"applyFee"`
	Notes     string      `json:"notes,omitempty"`
	ProjectID *string     `json:"projectID,omitempty"` // set once by conversion, never cleared
	DeletedAt *time.Time  `json:"deletedAt,omitempty"`

	Items     []QuoteItem         `json:"items,omitempty"`
	Services  []QuoteServiceLine  `json:"services,omitempty"`
	StatusLog []QuoteStatusChange `json:"statusLog,omitempty"`

	AuditFields
}

// HasLines reports whether the quote carries at least one item or service line.
func (q *Quote) HasLines() bool {
	return len(q.Items)+len(q.Services) > 0
}

// IsDeleted reports whether the quote has been soft-deleted.
func (q *Quote) IsDeleted() bool {
	return q.DeletedAt != nil
}

// IsEditable reports whether line/client/fee edits are still permitted.
func (q *Quote) IsEditable() bool {
	return q.Status == QuotePending && !q.IsDeleted()
}

// IsDeletable reports whether the quote may be soft-deleted.
func (q *Quote) IsDeletable() bool {
	return q.Status == QuotePending || q.Status == QuoteCancelled
}

// IsConverted reports whether a project has already been created from the quote.
func (q *Quote) IsConverted() bool {
	return q.ProjectID != nil
}
