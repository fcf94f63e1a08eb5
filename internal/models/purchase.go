package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is the purchases table row.
type Purchase struct {
	PurchaseID   string          `db:"purchase_id"`
	SupplierName string          `db:"supplier_name"`
	Description  string          `db:"description"`
	Amount       decimal.Decimal `db:"amount"`
	PurchaseDate time.Time       `db:"purchase_date"`
	ProjectID    *string         `db:"project_id"` // Nullable
	AuditFields
}

// StockEntry is the stock_entries table row.
type StockEntry struct {
	StockEntryID string          `db:"stock_entry_id"`
	PurchaseID   string          `db:"purchase_id"`
	ProductID    string          `db:"product_id"`
	Quantity     decimal.Decimal `db:"quantity"`
	AuditFields
}

// LaborEntry is the labor_entries table row.
type LaborEntry struct {
	LaborEntryID string          `db:"labor_entry_id"`
	EmployeeID   string          `db:"employee_id"`
	ProjectID    *string         `db:"project_id"` // Nullable
	Description  string          `db:"description"`
	Amount       decimal.Decimal `db:"amount"`
	WorkDate     time.Time       `db:"work_date"`
	AuditFields
}
