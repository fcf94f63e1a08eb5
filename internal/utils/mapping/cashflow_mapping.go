package mapping

import (
	"github.com/ateliersoft/backoffice_app/internal/core/domain"
	"github.com/ateliersoft/backoffice_app/internal/models"
)

// ToModelCashFlowEntry converts a domain CashFlowEntry to its model
func ToModelCashFlowEntry(d domain.CashFlowEntry) models.CashFlowEntry {
	return models.CashFlowEntry{
		EntryID:      d.EntryID,
		Type:         models.EntryType(d.Type),
		Direction:    models.EntryDirection(d.Direction),
		Description:  d.Description,
		Amount:       d.Amount,
		DueDate:      d.DueDate,
		Status:       models.EntryStatus(d.Status),
		PaidAt:       d.PaidAt,
		QuoteID:      d.QuoteID,
		PurchaseID:   d.PurchaseID,
		LaborEntryID: d.LaborEntryID,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCashFlowEntry converts a model CashFlowEntry to its domain type
func ToDomainCashFlowEntry(m models.CashFlowEntry) domain.CashFlowEntry {
	return domain.CashFlowEntry{
		EntryID:      m.EntryID,
		Type:         domain.EntryType(m.Type),
		Direction:    domain.EntryDirection(m.Direction),
		Description:  m.Description,
		Amount:       m.Amount,
		DueDate:      m.DueDate,
		Status:       domain.EntryStatus(m.Status),
		PaidAt:       m.PaidAt,
		QuoteID:      m.QuoteID,
		PurchaseID:   m.PurchaseID,
		LaborEntryID: m.LaborEntryID,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
