package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus mirrors domain.QuoteStatus at the persistence boundary.
type QuoteStatus string

const (
	QuotePending   QuoteStatus = "PENDING"
	QuoteApproved  QuoteStatus = "APPROVED"
	QuotePaid      QuoteStatus = "PAID"
	QuoteCancelled QuoteStatus = "CANCELLED"
)

// Quote is the quotes table row.
type Quote struct {
	QuoteID   string      `db:"quote_id"`
	ClientID  string      `db:"client_id"`
	Status    QuoteStatus `db:"status"`
	ApplyFee  bool        `db:"apply_fee"`
	Notes     string      `db:"notes"`
	ProjectID *string     `db:"project_id"` // Nullable, set once by conversion
	DeletedAt *time.Time  `db:"deleted_at"` // Nullable soft-delete marker
	AuditFields
}

// QuoteItem is the quote_items table row.
type QuoteItem struct {
	ItemID    string          `db:"item_id"`
	QuoteID   string          `db:"quote_id"`
	ProductID string          `db:"product_id"`
	Quantity  decimal.Decimal `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`
	LineTotal decimal.Decimal `db:"line_total"`
}

// QuoteServiceLine is the quote_services table row.
type QuoteServiceLine struct {
	LineID    string          `db:"line_id"`
	QuoteID   string          `db:"quote_id"`
	ServiceID string          `db:"service_id"`
	Quantity  decimal.Decimal `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`
	LineTotal decimal.Decimal `db:"line_total"`
}

// QuoteStatusChange is the quote_status_log table row.
type QuoteStatusChange struct {
	ChangeID   string       `db:"change_id"`
	QuoteID    string       `db:"quote_id"`
	FromStatus *QuoteStatus `db:"from_status"` // Nullable on the creation row
	ToStatus   QuoteStatus  `db:"to_status"`
	ChangedBy  string       `db:"changed_by"`
	Notes      string       `db:"notes"`
	ChangedAt  time.Time    `db:"changed_at"`
}
