package repositories

import (
	"context"

	"github.com/ateliersoft/backoffice_app/internal/core/domain"
)

// ProjectReader defines read operations for project data.
type ProjectReader interface {
	// FindProjectByID retrieves a project by its identifier.
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// FindProjectByQuoteID retrieves the project converted from a quote,
	// or apperrors.ErrNotFound when the quote was never converted.
	FindProjectByQuoteID(ctx context.Context, quoteID string) (*domain.Project, error)
}

// ProjectWriter defines write operations for project data.
type ProjectWriter interface {
	// CreateFromQuote inserts the project and stamps the 1:1 link onto the
	// quote in one transaction. The quote must still be in expectedStatus
	// and unlinked; otherwise apperrors.ErrConflict is returned. A unique
	// constraint on the quote link backs up the in-transaction check.
	CreateFromQuote(ctx context.Context, project domain.Project, expectedStatus domain.QuoteStatus) error
}

// ProjectRepositoryFacade combines all project-related repository interfaces.
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
}

// ProjectRepositoryWithTx extends ProjectRepositoryFacade with transaction capabilities.
type ProjectRepositoryWithTx interface {
	ProjectRepositoryFacade
	TransactionManager
}
