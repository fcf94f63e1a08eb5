package services

import (
	"context"

	"github.com/ateliersoft/backoffice_app/internal/core/domain"
	portsrepo "github.com/ateliersoft/backoffice_app/internal/core/ports/repositories"
	"github.com/ateliersoft/backoffice_app/internal/dto"
	"github.com/ateliersoft/backoffice_app/internal/utils/accounting"
)

// LedgerSvcFacade is the single writer over cash-flow entries that are
// not created as part of another record's transaction.
type LedgerSvcFacade interface {
	// CreateExternalPayable records a manual OUT entry.
	CreateExternalPayable(ctx context.Context, req dto.CreateExternalPayableRequest, creatorUserID string) (*domain.CashFlowEntry, error)

	// MarkEntryPaid settles an entry. An entry that is already PAID is
	// rejected so the original payment timestamp is never overwritten.
	MarkEntryPaid(ctx context.Context, entryID string, req dto.MarkEntryPaidRequest, userID string) (*domain.CashFlowEntry, error)

	// UpdateEntryDueDate moves an entry's due date, regardless of status.
	UpdateEntryDueDate(ctx context.Context, entryID string, req dto.UpdateDueDateRequest, userID string) (*domain.CashFlowEntry, error)
}

// SummarySvcFacade exposes the read-only dashboard projections.
type SummarySvcFacade interface {
	// ListEntries retrieves ledger entries matching the filter.
	ListEntries(ctx context.Context, filter portsrepo.EntryFilter) ([]domain.CashFlowEntry, error)

	// Summarize produces the dashboard summary over all entries.
	Summarize(ctx context.Context) (*accounting.Summary, error)

	// Series buckets entries into day/week/month totals for charts.
	Series(ctx context.Context, granularity accounting.Granularity) (map[string]accounting.PeriodTotals, error)

	// ListOverdueEntries returns PENDING entries whose due date has passed.
	ListOverdueEntries(ctx context.Context) ([]domain.CashFlowEntry, error)
}
