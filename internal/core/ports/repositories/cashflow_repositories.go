package repositories

import (
	"context"
	"time"

	"github.com/ateliersoft/backoffice_app/internal/core/domain"
)

// EntryFilter narrows ledger entry listings. Nil fields are ignored.
type EntryFilter struct {
	Direction *domain.EntryDirection
	Status    *domain.EntryStatus
	DueFrom   *time.Time
	DueTo     *time.Time
}

// CashFlowReader defines read operations for ledger entries.
type CashFlowReader interface {
	// FindEntryByID retrieves a single ledger entry.
	FindEntryByID(ctx context.Context, entryID string) (*domain.CashFlowEntry, error)

	// ListEntries retrieves entries matching the filter, ordered by due date.
	ListEntries(ctx context.Context, filter EntryFilter) ([]domain.CashFlowEntry, error)
}

// CashFlowWriter defines write operations for ledger entries. Creation as
// part of an originating business write (quote transition, purchase,
// labor entry) happens inside that write's transaction in the owning
// repository; this interface covers standalone entries and the narrow
// mutation surface.
type CashFlowWriter interface {
	// SaveEntry persists a manually created entry (external payable or other).
	SaveEntry(ctx context.Context, entry domain.CashFlowEntry) error

	// MarkEntryPaid sets status PAID and paidAt. The update is guarded by
	// the stored status: an entry that is already PAID is left untouched
	// and apperrors.ErrConflict is returned, preserving the original
	// payment timestamp.
	MarkEntryPaid(ctx context.Context, entryID string, paidAt time.Time, userID string, now time.Time) error

	// UpdateEntryDueDate changes the due date regardless of status.
	UpdateEntryDueDate(ctx context.Context, entryID string, dueDate time.Time, userID string, now time.Time) error
}

// CashFlowRepositoryFacade combines all ledger-entry repository interfaces.
type CashFlowRepositoryFacade interface {
	CashFlowReader
	CashFlowWriter
}

// CashFlowRepositoryWithTx extends CashFlowRepositoryFacade with transaction capabilities.
type CashFlowRepositoryWithTx interface {
	CashFlowRepositoryFacade
	TransactionManager
}
