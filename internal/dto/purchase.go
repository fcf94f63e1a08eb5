package dto

import (
	"time"

	"github.com/ateliersoft/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest defines the payload for recording a purchase.
// The stock movement and ledger entry are written in the same transaction.
type CreatePurchaseRequest struct {
	SupplierName string          `json:"supplierName" binding:"required"`
	Description  string          `json:"description" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	PurchaseDate time.Time       `json:"purchaseDate" binding:"required"`
	DueDate      time.Time       `json:"dueDate" binding:"required"`
	ProductID    string          `json:"productID" binding:"required"`
	Quantity     decimal.Decimal `json:"quantity" binding:"required"`
	ProjectID    *string         `json:"projectID"`
}

// CreateLaborEntryRequest defines the payload for recording paid labor.
type CreateLaborEntryRequest struct {
	EmployeeID  string          `json:"employeeID" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	WorkDate    time.Time       `json:"workDate" binding:"required"`
	DueDate     time.Time       `json:"dueDate" binding:"required"`
	ProjectID   *string         `json:"projectID"`
}

// PurchaseResponse defines the data returned for a purchase.
type PurchaseResponse struct {
	PurchaseID   string          `json:"purchaseID"`
	SupplierName string          `json:"supplierName"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	PurchaseDate time.Time       `json:"purchaseDate"`
	ProjectID    *string         `json:"projectID,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	CreatedBy    string          `json:"createdBy"`
}

// LaborEntryResponse defines the data returned for a labor entry.
type LaborEntryResponse struct {
	LaborEntryID string          `json:"laborEntryID"`
	EmployeeID   string          `json:"employeeID"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	WorkDate     time.Time       `json:"workDate"`
	ProjectID    *string         `json:"projectID,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	CreatedBy    string          `json:"createdBy"`
}

// ToPurchaseResponse converts a domain.Purchase to PurchaseResponse DTO.
func ToPurchaseResponse(p *domain.Purchase) PurchaseResponse {
	return PurchaseResponse{
		PurchaseID:   p.PurchaseID,
		SupplierName: p.SupplierName,
		Description:  p.Description,
		Amount:       p.Amount,
		PurchaseDate: p.PurchaseDate,
		ProjectID:    p.ProjectID,
		CreatedAt:    p.CreatedAt,
		CreatedBy:    p.CreatedBy,
	}
}

// ToLaborEntryResponse converts a domain.LaborEntry to its DTO.
func ToLaborEntryResponse(l *domain.LaborEntry) LaborEntryResponse {
	return LaborEntryResponse{
		LaborEntryID: l.LaborEntryID,
		EmployeeID:   l.EmployeeID,
		Description:  l.Description,
		Amount:       l.Amount,
		WorkDate:     l.WorkDate,
		ProjectID:    l.ProjectID,
		CreatedAt:    l.CreatedAt,
		CreatedBy:    l.CreatedBy,
	}
}
