package dto

import (
	"time"

	"github.com/ateliersoft/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// QuoteLineRequest describes one item or service line on a quote.
// Lines are snapshots: the server computes the line total and assigns
// fresh IDs on every edit.
type QuoteLineRequest struct {
	RefID     string          `json:"refID" binding:"required"` // product or service catalog ID
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"required"`
}

// CreateQuoteRequest defines the payload for creating a quote.
// At least one item or service line is required.
type CreateQuoteRequest struct {
	ClientID string             `json:"clientID" binding:"required"`
	ApplyFee bool               `json:"applyFee"`
	Notes    string             `json:"notes"`
	Items    []QuoteLineRequest `json:"items"`
	Services []QuoteLineRequest `json:"services"`
}

// UpdateQuoteRequest defines the payload for editing a PENDING quote.
// Items and services replace the stored collections wholesale.
type UpdateQuoteRequest struct {
	ClientID string             `json:"clientID" binding:"required"`
	ApplyFee bool               `json:"applyFee"`
	Notes    string             `json:"notes"`
	Items    []QuoteLineRequest `json:"items"`
	Services []QuoteLineRequest `json:"services"`
}

// TransitionQuoteRequest defines the payload for a status transition.
type TransitionQuoteRequest struct {
	ToStatus domain.QuoteStatus `json:"toStatus" binding:"required,oneof=APPROVED PAID CANCELLED"`
	Notes    string             `json:"notes"`
}

// QuoteLineResponse defines the data returned for one quote line.
type QuoteLineResponse struct {
	LineID    string          `json:"lineID"`
	RefID     string          `json:"refID"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// StatusChangeResponse defines one row of the quote's status log.
type StatusChangeResponse struct {
	FromStatus *string   `json:"fromStatus,omitempty"`
	ToStatus   string    `json:"toStatus"`
	ChangedBy  string    `json:"changedBy"`
	Notes      string    `json:"notes,omitempty"`
	ChangedAt  time.Time `json:"changedAt"`
}

// QuoteResponse defines the data returned for a quote.
type QuoteResponse struct {
	QuoteID   string                 `json:"quoteID"`
	ClientID  string                 `json:"clientID"`
	Status    string                 `json:"status"`
	ApplyFee  bool                   `json:"applyFee"`
	Notes     string                 `json:"notes,omitempty"`
	ProjectID *string                `json:"projectID,omitempty"`
	Items     []QuoteLineResponse    `json:"items"`
	Services  []QuoteLineResponse    `json:"services"`
	StatusLog []StatusChangeResponse `json:"statusLog,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
	CreatedBy string                 `json:"createdBy"`
}

// ListQuotesResponse wraps a page of quotes with the pagination token.
type ListQuotesResponse struct {
	Quotes    []QuoteResponse `json:"quotes"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToQuoteResponse converts a domain.Quote to QuoteResponse DTO.
func ToQuoteResponse(q *domain.Quote) QuoteResponse {
	items := make([]QuoteLineResponse, len(q.Items))
	for i, it := range q.Items {
		items[i] = QuoteLineResponse{
			LineID:    it.ItemID,
			RefID:     it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			LineTotal: it.LineTotal,
		}
	}

	services := make([]QuoteLineResponse, len(q.Services))
	for i, sv := range q.Services {
		services[i] = QuoteLineResponse{
			LineID:    sv.LineID,
			RefID:     sv.ServiceID,
			Quantity:  sv.Quantity,
			UnitPrice: sv.UnitPrice,
			LineTotal: sv.LineTotal,
		}
	}

	log := make([]StatusChangeResponse, len(q.StatusLog))
	for i, ch := range q.StatusLog {
		var from *string
		if ch.FromStatus != nil {
			s := string(*ch.FromStatus)
			from = &s
		}
		log[i] = StatusChangeResponse{
			FromStatus: from,
			ToStatus:   string(ch.ToStatus),
			ChangedBy:  ch.ChangedBy,
			Notes:      ch.Notes,
			ChangedAt:  ch.ChangedAt,
		}
	}

	return QuoteResponse{
		QuoteID:   q.QuoteID,
		ClientID:  q.ClientID,
		Status:    string(q.Status),
		ApplyFee:  q.ApplyFee,
		Notes:     q.Notes,
		ProjectID: q.ProjectID,
		Items:     items,
		Services:  services,
		StatusLog: log,
		CreatedAt: q.CreatedAt,
		CreatedBy: q.CreatedBy,
	}
}

// ToQuoteResponses converts a slice of domain.Quote to []QuoteResponse.
func ToQuoteResponses(quotes []domain.Quote) []QuoteResponse {
	responses := make([]QuoteResponse, len(quotes))
	for i := range quotes {
		responses[i] = ToQuoteResponse(&quotes[i])
	}
	return responses
}

// ToListQuotesResponse wraps a page of quotes with its pagination token.
func ToListQuotesResponse(quotes []domain.Quote, nextToken *string) ListQuotesResponse {
	return ListQuotesResponse{
		Quotes:    ToQuoteResponses(quotes),
		NextToken: nextToken,
	}
}
