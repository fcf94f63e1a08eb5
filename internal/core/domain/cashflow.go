package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType identifies the business event that originated a ledger entry.
type EntryType string

const (
	EntryQuoteReceivable EntryType = "QUOTE_RECEIVABLE"
	EntryPurchasePayable EntryType = "PURCHASE_PAYABLE"
	EntryLaborPayable    EntryType = "LABOR_PAYABLE"
	EntryExternalPayable EntryType = "EXTERNAL_PAYABLE"
	EntryOther           EntryType = "OTHER"
)

// IsValid reports whether t is a known entry type.
func (t EntryType) IsValid() bool {
	switch t {
	case EntryQuoteReceivable, EntryPurchasePayable, EntryLaborPayable, EntryExternalPayable, EntryOther:
		return true
	}
	return false
}

// EntryDirection indicates whether money flows in or out.
type EntryDirection string

const (
	DirectionIn  EntryDirection = "IN"
	DirectionOut EntryDirection = "OUT"
)

// IsValid reports whether d is a known direction.
func (d EntryDirection) IsValid() bool {
	return d == DirectionIn || d == DirectionOut
}

// EntryStatus is the stored payment state of a ledger entry.
// OVERDUE is derived from dueDate at read time and never stored.
type EntryStatus string

const (
	EntryPending EntryStatus = "PENDING"
	EntryPaid    EntryStatus = "PAID"
)

// IsValid reports whether s is a known entry status.
func (s EntryStatus) IsValid() bool {
	return s == EntryPending || s == EntryPaid
}

// CashFlowEntry is a single receivable or payable ledger line.
// Amount, type and direction are immutable once created; the mutable
// surface is the paid status (with its timestamp) and the due date.
type CashFlowEntry struct {
	EntryID     string          `json:"entryID"`
	Type        EntryType       `json:"type"`
	Direction   EntryDirection  `json:"direction"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     time.Time       `json:"dueDate"`
	Status      EntryStatus     `json:"status"`
	PaidAt      *time.Time      `json:"paidAt,omitempty"`

	// Back-references to the originating record, at most one set.
	QuoteID      *string `json:"quoteID,omitempty"`
	PurchaseID   *string `json:"purchaseID,omitempty"`
	LaborEntryID *string `json:"laborEntryID,omitempty"`

	AuditFields
}

// IsPaid reports whether the entry has been settled.
func (e *CashFlowEntry) IsPaid() bool {
	return e.Status == EntryPaid
}
