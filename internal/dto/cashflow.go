package dto

import (
	"time"

	"github.com/ateliersoft/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExternalPayableRequest defines the payload for a manual payable.
type CreateExternalPayableRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	DueDate     time.Time       `json:"dueDate" binding:"required"`
	Type        domain.EntryType `json:"type" binding:"omitempty,oneof=EXTERNAL_PAYABLE OTHER"`
}

// MarkEntryPaidRequest defines the payload for settling an entry.
// PaidAt defaults to now when omitted.
type MarkEntryPaidRequest struct {
	PaidAt *time.Time `json:"paidAt"`
}

// UpdateDueDateRequest defines the payload for moving an entry's due date.
type UpdateDueDateRequest struct {
	DueDate time.Time `json:"dueDate" binding:"required"`
}

// CashFlowEntryResponse defines the data returned for a ledger entry.
// Overdue is derived at read time, never stored.
type CashFlowEntryResponse struct {
	EntryID      string          `json:"entryID"`
	Type         string          `json:"type"`
	Direction    string          `json:"direction"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	DueDate      time.Time       `json:"dueDate"`
	Status       string          `json:"status"`
	PaidAt       *time.Time      `json:"paidAt,omitempty"`
	QuoteID      *string         `json:"quoteID,omitempty"`
	PurchaseID   *string         `json:"purchaseID,omitempty"`
	LaborEntryID *string         `json:"laborEntryID,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	CreatedBy    string          `json:"createdBy"`
}

// ToCashFlowEntryResponse converts a domain.CashFlowEntry to its DTO.
func ToCashFlowEntryResponse(e *domain.CashFlowEntry) CashFlowEntryResponse {
	return CashFlowEntryResponse{
		EntryID:      e.EntryID,
		Type:         string(e.Type),
		Direction:    string(e.Direction),
		Description:  e.Description,
		Amount:       e.Amount,
		DueDate:      e.DueDate,
		Status:       string(e.Status),
		PaidAt:       e.PaidAt,
		QuoteID:      e.QuoteID,
		PurchaseID:   e.PurchaseID,
		LaborEntryID: e.LaborEntryID,
		CreatedAt:    e.CreatedAt,
		CreatedBy:    e.CreatedBy,
	}
}

// ToCashFlowEntryResponses converts a slice of entries to DTOs.
func ToCashFlowEntryResponses(entries []domain.CashFlowEntry) []CashFlowEntryResponse {
	responses := make([]CashFlowEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToCashFlowEntryResponse(&entries[i])
	}
	return responses
}
