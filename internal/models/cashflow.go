package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType mirrors domain.EntryType at the persistence boundary.
type EntryType string

// EntryDirection mirrors domain.EntryDirection.
type EntryDirection string

// EntryStatus mirrors domain.EntryStatus. OVERDUE is never stored.
type EntryStatus string

// CashFlowEntry is the cash_flow_entries table row.
type CashFlowEntry struct {
	EntryID      string          `db:"entry_id"`
	Type         EntryType       `db:"entry_type"`
	Direction    EntryDirection  `db:"direction"`
	Description  string          `db:"description"`
	Amount       decimal.Decimal `db:"amount"`
	DueDate      time.Time       `db:"due_date"`
	Status       EntryStatus     `db:"status"`
	PaidAt       *time.Time      `db:"paid_at"`        // Nullable
	QuoteID      *string         `db:"quote_id"`       // Nullable origin reference
	PurchaseID   *string         `db:"purchase_id"`    // Nullable origin reference
	LaborEntryID *string         `db:"labor_entry_id"` // Nullable origin reference
	AuditFields
}
