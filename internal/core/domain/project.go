package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project is created exactly once from a PAID quote. The quote link is
// 1:1 and permanent; TotalRevenue is the quote total computed at
// conversion time.
type Project struct {
	ProjectID    string          `json:"projectID"`
	QuoteID      string          `json:"quoteID"`
	Name         string          `json:"name"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	AuditFields
}

// ProjectExpense is a cost booked against a project, fed by purchases
// and labor entries. Removed in cascade with its source record.
type ProjectExpense struct {
	ExpenseID   string          `json:"expenseID"`
	ProjectID   string          `json:"projectID"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	IncurredAt  time.Time       `json:"incurredAt"`

	PurchaseID   *string `json:"purchaseID,omitempty"`
	LaborEntryID *string `json:"laborEntryID,omitempty"`

	AuditFields
}
