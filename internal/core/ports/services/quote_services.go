package services

import (
	"context"

	"github.com/ateliersoft/backoffice_app/internal/core/domain"
	"github.com/ateliersoft/backoffice_app/internal/dto"
)

// QuoteReaderSvc defines read operations over quotes.
type QuoteReaderSvc interface {
	// GetQuoteByID retrieves a quote with items, services and status log.
	GetQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error)

	// ListQuotes retrieves quotes with token pagination, optionally
	// filtered by status.
	ListQuotes(ctx context.Context, status *domain.QuoteStatus, limit int, nextToken *string) ([]domain.Quote, *string, error)

	// ListOverdueQuotes returns PENDING quotes older than the configured
	// approval window (strictly older; the boundary itself is not overdue).
	ListOverdueQuotes(ctx context.Context) ([]domain.Quote, error)
}

// QuoteWriterSvc defines the mutating quote lifecycle operations.
type QuoteWriterSvc interface {
	// CreateQuote creates a quote in PENDING with its creation status-log row.
	CreateQuote(ctx context.Context, req dto.CreateQuoteRequest, creatorUserID string) (*domain.Quote, error)

	// UpdateQuote replaces the quote's line collections wholesale and
	// updates client/fee/notes. Only PENDING quotes are editable.
	UpdateQuote(ctx context.Context, quoteID string, req dto.UpdateQuoteRequest, userID string) (*domain.Quote, error)

	// TransitionQuote moves the quote to a legal successor status,
	// appending a status-log row; transitioning to PAID also writes the
	// quote's receivable ledger entry in the same transaction.
	TransitionQuote(ctx context.Context, quoteID string, req dto.TransitionQuoteRequest, userID string) (*domain.Quote, error)

	// DeleteQuote soft-deletes a PENDING or CANCELLED quote.
	DeleteQuote(ctx context.Context, quoteID string, userID string) error
}

// QuoteSvcFacade combines all quote service interfaces.
type QuoteSvcFacade interface {
	QuoteReaderSvc
	QuoteWriterSvc
}
