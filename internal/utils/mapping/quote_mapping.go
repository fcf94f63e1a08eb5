package mapping

import (
	"github.com/ateliersoft/backoffice_app/internal/core/domain"
	"github.com/ateliersoft/backoffice_app/internal/models"
)

// ToModelQuote converts a domain Quote to a model Quote
func ToModelQuote(d domain.Quote) models.Quote {
	return models.Quote{
		QuoteID:     d.QuoteID,
		ClientID:    d.ClientID,
		Status:      models.QuoteStatus(d.Status),
		ApplyFee:    d.ApplyFee,
		Notes:       d.Notes,
		ProjectID:   d.ProjectID,
		DeletedAt:   d.DeletedAt,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainQuote converts a model Quote to a domain Quote
func ToDomainQuote(m models.Quote) domain.Quote {
	return domain.Quote{
		QuoteID:     m.QuoteID,
		ClientID:    m.ClientID,
		Status:      domain.QuoteStatus(m.Status),
		ApplyFee:    m.ApplyFee,
		Notes:       m.Notes,
		ProjectID:   m.ProjectID,
		DeletedAt:   m.DeletedAt,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelQuoteItem converts a domain QuoteItem to a model QuoteItem
func ToModelQuoteItem(d domain.QuoteItem) models.QuoteItem {
	return models.QuoteItem{
		ItemID:    d.ItemID,
		QuoteID:   d.QuoteID,
		ProductID: d.ProductID,
		Quantity:  d.Quantity,
		UnitPrice: d.UnitPrice,
		LineTotal: d.LineTotal,
	}
}

// ToDomainQuoteItem converts a model QuoteItem to a domain QuoteItem
func ToDomainQuoteItem(m models.QuoteItem) domain.QuoteItem {
	return domain.QuoteItem{
		ItemID:    m.ItemID,
		QuoteID:   m.QuoteID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		UnitPrice: m.UnitPrice,
		LineTotal: m.LineTotal,
	}
}

// ToModelQuoteServiceLine converts a domain QuoteServiceLine to its model
func ToModelQuoteServiceLine(d domain.QuoteServiceLine) models.QuoteServiceLine {
	return models.QuoteServiceLine{
		LineID:    d.LineID,
		QuoteID:   d.QuoteID,
		ServiceID: d.ServiceID,
		Quantity:  d.Quantity,
		UnitPrice: d.UnitPrice,
		LineTotal: d.LineTotal,
	}
}

// ToDomainQuoteServiceLine converts a model QuoteServiceLine to its domain type
func ToDomainQuoteServiceLine(m models.QuoteServiceLine) domain.QuoteServiceLine {
	return domain.QuoteServiceLine{
		LineID:    m.LineID,
		QuoteID:   m.QuoteID,
		ServiceID: m.ServiceID,
		Quantity:  m.Quantity,
		UnitPrice: m.UnitPrice,
		LineTotal: m.LineTotal,
	}
}

// ToModelQuoteStatusChange converts a domain QuoteStatusChange to its model
func ToModelQuoteStatusChange(d domain.QuoteStatusChange) models.QuoteStatusChange {
	var from *models.QuoteStatus
	if d.FromStatus != nil {
		s := models.QuoteStatus(*d.FromStatus)
		from = &s
	}
	return models.QuoteStatusChange{
		ChangeID:   d.ChangeID,
		QuoteID:    d.QuoteID,
		FromStatus: from,
		ToStatus:   models.QuoteStatus(d.ToStatus),
		ChangedBy:  d.ChangedBy,
		Notes:      d.Notes,
		ChangedAt:  d.ChangedAt,
	}
}

// ToDomainQuoteStatusChange converts a model QuoteStatusChange to its domain type
func ToDomainQuoteStatusChange(m models.QuoteStatusChange) domain.QuoteStatusChange {
	var from *domain.QuoteStatus
	if m.FromStatus != nil {
		s := domain.QuoteStatus(*m.FromStatus)
		from = &s
	}
	return domain.QuoteStatusChange{
		ChangeID:   m.ChangeID,
		QuoteID:    m.QuoteID,
		FromStatus: from,
		ToStatus:   domain.QuoteStatus(m.ToStatus),
		ChangedBy:  m.ChangedBy,
		Notes:      m.Notes,
		ChangedAt:  m.ChangedAt,
	}
}
