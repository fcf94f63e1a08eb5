package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is a supplier purchase. Recording one also writes its stock
// entry, an optional project expense and a PURCHASE_PAYABLE ledger entry
// in the same transaction; deleting one cascades to all of them.
type Purchase struct {
	PurchaseID   string          `json:"purchaseID"`
	SupplierName string          `json:"supplierName"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	PurchaseDate time.Time       `json:"purchaseDate"`
	ProjectID    *string         `json:"projectID,omitempty"`
	AuditFields
}

// StockEntry is the stock movement produced by a purchase.
type StockEntry struct {
	StockEntryID string          `json:"stockEntryID"`
	PurchaseID   string          `json:"purchaseID"`
	ProductID    string          `json:"productID"`
	Quantity     decimal.Decimal `json:"quantity"`
	AuditFields
}

// LaborEntry is a unit of paid work, optionally booked to a project.
// Recording one writes a LABOR_PAYABLE ledger entry in the same transaction.
type LaborEntry struct {
	LaborEntryID string          `json:"laborEntryID"`
	EmployeeID   string          `json:"employeeID"`
	ProjectID    *string         `json:"projectID,omitempty"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	WorkDate     time.Time       `json:"workDate"`
	AuditFields
}
