package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project is the projects table row. quote_id carries a unique
// constraint: a quote converts at most once.
type Project struct {
	ProjectID    string          `db:"project_id"`
	QuoteID      string          `db:"quote_id"`
	Name         string          `db:"name"`
	TotalRevenue decimal.Decimal `db:"total_revenue"`
	AuditFields
}

// ProjectExpense is the project_expenses table row.
type ProjectExpense struct {
	ExpenseID    string          `db:"expense_id"`
	ProjectID    string          `db:"project_id"`
	Description  string          `db:"description"`
	Amount       decimal.Decimal `db:"amount"`
	IncurredAt   time.Time       `db:"incurred_at"`
	PurchaseID   *string         `db:"purchase_id"`    // Nullable
	LaborEntryID *string         `db:"labor_entry_id"` // Nullable
	AuditFields
}
