package repositories

import (
	"context"
	"time"

	"github.com/ateliersoft/backoffice_app/internal/core/domain"
)

// QuoteReader defines read operations for quote data.
// All reads exclude soft-deleted quotes unless stated otherwise.
type QuoteReader interface {
	// FindQuoteByID retrieves a quote with its items, services and status log.
	FindQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error)

	// ListQuotes retrieves quotes using token-based pagination, optionally
	// filtered by status. It returns the quotes, a token for the next page,
	// and an error.
	ListQuotes(ctx context.Context, status *domain.QuoteStatus, limit int, nextToken *string) ([]domain.Quote, *string, error)

	// ListQuotesCreatedBefore retrieves quotes in the given status created
	// strictly before the cutoff; used for overdue detection.
	ListQuotesCreatedBefore(ctx context.Context, status domain.QuoteStatus, cutoff time.Time) ([]domain.Quote, error)
}

// QuoteWriter defines write operations for quote data. Every method that
// touches more than one row runs inside a single database transaction.
type QuoteWriter interface {
	// SaveQuote persists a new quote with its lines and the creation
	// status-log row atomically.
	SaveQuote(ctx context.Context, quote domain.Quote, change domain.QuoteStatusChange) error

	// ReplaceQuoteLines updates the quote's editable fields and replaces
	// its item/service collections wholesale (delete-then-insert) in one
	// transaction. The write is guarded by expectedStatus; if the stored
	// status differs the method returns apperrors.ErrConflict.
	ReplaceQuoteLines(ctx context.Context, quote domain.Quote, expectedStatus domain.QuoteStatus) error

	// TransitionQuote atomically moves a quote from expectedStatus to
	// change.ToStatus, appends the status-log row, and, when receivable is
	// non-nil, inserts the corresponding ledger entry in the same
	// transaction. Returns apperrors.ErrConflict when the stored status no
	// longer matches expectedStatus.
	TransitionQuote(ctx context.Context, quoteID string, expectedStatus domain.QuoteStatus, change domain.QuoteStatusChange, receivable *domain.CashFlowEntry) error

	// SoftDeleteQuote marks the quote deleted and removes its dependent
	// ledger entries in the same transaction. Guarded by expectedStatus.
	SoftDeleteQuote(ctx context.Context, quoteID string, expectedStatus domain.QuoteStatus, deletedBy string, deletedAt time.Time) error
}

// QuoteRepositoryFacade combines all quote-related repository interfaces.
type QuoteRepositoryFacade interface {
	QuoteReader
	QuoteWriter
}

// QuoteRepositoryWithTx extends QuoteRepositoryFacade with transaction capabilities.
type QuoteRepositoryWithTx interface {
	QuoteRepositoryFacade
	TransactionManager
}
