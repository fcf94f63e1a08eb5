package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ateliersoft/backoffice_app/internal/apperrors"
	"github.com/ateliersoft/backoffice_app/internal/core/domain"
	portsrepo "github.com/ateliersoft/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/ateliersoft/backoffice_app/internal/core/ports/services"
	"github.com/ateliersoft/backoffice_app/internal/utils/accounting"
)

// summaryService projects the ledger into dashboard figures. It never
// writes; all derivation happens in the accounting package so the same
// numbers fall out no matter which caller asks.
type summaryService struct {
	BaseService
	cashFlowRepo portsrepo.CashFlowReader
	now          func() time.Time
}

// SummaryServiceOption is a functional option for configuring the summary service
type SummaryServiceOption func(*summaryService)

// WithSummaryClock overrides the time source; used by tests.
func WithSummaryClock(now func() time.Time) SummaryServiceOption {
	return func(s *summaryService) {
		s.now = now
	}
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(cashFlowRepo portsrepo.CashFlowReader, options ...SummaryServiceOption) portssvc.SummarySvcFacade {
	svc := &summaryService{
		cashFlowRepo: cashFlowRepo,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure summaryService implements the portssvc.SummarySvcFacade interface
var _ portssvc.SummarySvcFacade = (*summaryService)(nil)

// ListEntries retrieves ledger entries matching the filter.
// Implements portssvc.SummarySvcFacade
func (s *summaryService) ListEntries(ctx context.Context, filter portsrepo.EntryFilter) ([]domain.CashFlowEntry, error) {
	return s.cashFlowRepo.ListEntries(ctx, filter)
}

// Summarize produces the dashboard summary over all entries.
// Implements portssvc.SummarySvcFacade
func (s *summaryService) Summarize(ctx context.Context) (*accounting.Summary, error) {
	entries, err := s.cashFlowRepo.ListEntries(ctx, portsrepo.EntryFilter{})
	if err != nil {
		s.LogError(ctx, err, "Failed to load entries for summary")
		return nil, err
	}
	summary := accounting.Summarize(entries, s.now())
	return &summary, nil
}

// Series buckets entries into day/week/month totals for charts.
// Implements portssvc.SummarySvcFacade
func (s *summaryService) Series(ctx context.Context, granularity accounting.Granularity) (map[string]accounting.PeriodTotals, error) {
	if !granularity.IsValid() {
		return nil, fmt.Errorf("%w: granularity must be day, week or month", apperrors.ErrValidation)
	}
	entries, err := s.cashFlowRepo.ListEntries(ctx, portsrepo.EntryFilter{})
	if err != nil {
		s.LogError(ctx, err, "Failed to load entries for series")
		return nil, err
	}
	return accounting.GroupByPeriod(entries, granularity), nil
}

// ListOverdueEntries returns PENDING entries whose due date has passed.
// Implements portssvc.SummarySvcFacade
func (s *summaryService) ListOverdueEntries(ctx context.Context) ([]domain.CashFlowEntry, error) {
	pending := domain.EntryPending
	entries, err := s.cashFlowRepo.ListEntries(ctx, portsrepo.EntryFilter{Status: &pending})
	if err != nil {
		s.LogError(ctx, err, "Failed to load entries for overdue check")
		return nil, err
	}
	return accounting.OverdueEntries(entries, s.now()), nil
}
