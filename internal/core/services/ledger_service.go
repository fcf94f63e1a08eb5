package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ateliersoft/backoffice_app/internal/apperrors"
	"github.com/ateliersoft/backoffice_app/internal/core/domain"
	portsrepo "github.com/ateliersoft/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/ateliersoft/backoffice_app/internal/core/ports/services"
	"github.com/ateliersoft/backoffice_app/internal/dto"
	"github.com/ateliersoft/backoffice_app/internal/utils"
)

// ErrEntryAlreadyPaid rejects a second settlement of the same entry so
// the original payment timestamp is never silently overwritten.
var ErrEntryAlreadyPaid = errors.New("ledger entry is already paid")

// ledgerService is the single writer for standalone cash-flow entries
// and the narrow mutation surface (paid status, due date). Entries born
// from quote transitions, purchases and labor entries are written inside
// those records' transactions by their owning repositories.
type ledgerService struct {
	BaseService
	cashFlowRepo portsrepo.CashFlowRepositoryFacade
	auditClient  *utils.AuditClient
	now          func() time.Time
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithLedgerAuthorizer sets the permission gate for the ledger service.
func WithLedgerAuthorizer(authorizer portssvc.PermissionAuthorizerSvc) LedgerServiceOption {
	return func(s *ledgerService) {
		s.Authorizer = authorizer
	}
}

// WithLedgerAuditClient sets the best-effort audit sink.
func WithLedgerAuditClient(client *utils.AuditClient) LedgerServiceOption {
	return func(s *ledgerService) {
		s.auditClient = client
	}
}

// WithLedgerClock overrides the time source; used by tests.
func WithLedgerClock(now func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(cashFlowRepo portsrepo.CashFlowRepositoryFacade, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		cashFlowRepo: cashFlowRepo,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// CreateExternalPayable records a manual OUT entry.
// Implements portssvc.LedgerSvcFacade
func (s *ledgerService) CreateExternalPayable(ctx context.Context, req dto.CreateExternalPayableRequest, creatorUserID string) (*domain.CashFlowEntry, error) {
	if err := s.Authorize(ctx, creatorUserID, "ledger:create"); err != nil {
		return nil, err
	}

	if req.Description == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}
	if req.Amount.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount cannot be negative", apperrors.ErrValidation)
	}

	entryType := req.Type
	if entryType == "" {
		entryType = domain.EntryExternalPayable
	}
	if entryType != domain.EntryExternalPayable && entryType != domain.EntryOther {
		return nil, fmt.Errorf("%w: manual entries must be EXTERNAL_PAYABLE or OTHER", apperrors.ErrValidation)
	}

	now := s.now().UTC()
	entry := domain.CashFlowEntry{
		EntryID:     uuid.NewString(),
		Type:        entryType,
		Direction:   domain.DirectionOut,
		Description: req.Description,
		Amount:      req.Amount,
		DueDate:     req.DueDate,
		Status:      domain.EntryPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
			Version:       1,
		},
	}

	if err := s.cashFlowRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save external payable", slog.String("entry_id", entry.EntryID))
		return nil, err
	}

	s.LogInfo(ctx, "External payable created", slog.String("entry_id", entry.EntryID))
	s.audit(creatorUserID, "payable_created", map[string]any{"entry_id": entry.EntryID})
	return &entry, nil
}

// MarkEntryPaid settles an entry. Calling it on an already-PAID entry
// returns ErrEntryAlreadyPaid wrapped in a conflict.
// Implements portssvc.LedgerSvcFacade
func (s *ledgerService) MarkEntryPaid(ctx context.Context, entryID string, req dto.MarkEntryPaidRequest, userID string) (*domain.CashFlowEntry, error) {
	if err := s.Authorize(ctx, userID, "ledger:pay"); err != nil {
		return nil, err
	}

	entry, err := s.cashFlowRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.IsPaid() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrConflict, ErrEntryAlreadyPaid)
	}

	now := s.now().UTC()
	paidAt := now
	if req.PaidAt != nil {
		paidAt = req.PaidAt.UTC()
	}

	// The repo guards the update on status PENDING so a concurrent
	// settlement loses cleanly with ErrConflict.
	if err := s.cashFlowRepo.MarkEntryPaid(ctx, entryID, paidAt, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to mark entry paid", slog.String("entry_id", entryID))
		return nil, err
	}

	entry.Status = domain.EntryPaid
	entry.PaidAt = &paidAt
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = userID

	s.LogInfo(ctx, "Ledger entry paid", slog.String("entry_id", entryID))
	s.audit(userID, "entry_paid", map[string]any{"entry_id": entryID})
	return entry, nil
}

// UpdateEntryDueDate moves an entry's due date. Permitted on any entry
// regardless of status, including already-PAID ones.
// Implements portssvc.LedgerSvcFacade
func (s *ledgerService) UpdateEntryDueDate(ctx context.Context, entryID string, req dto.UpdateDueDateRequest, userID string) (*domain.CashFlowEntry, error) {
	if err := s.Authorize(ctx, userID, "ledger:update"); err != nil {
		return nil, err
	}

	entry, err := s.cashFlowRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	if err := s.cashFlowRepo.UpdateEntryDueDate(ctx, entryID, req.DueDate, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to update entry due date", slog.String("entry_id", entryID))
		return nil, err
	}

	entry.DueDate = req.DueDate
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = userID

	s.LogInfo(ctx, "Ledger entry due date updated", slog.String("entry_id", entryID))
	s.audit(userID, "entry_due_date_updated", map[string]any{"entry_id": entryID})
	return entry, nil
}

func (s *ledgerService) audit(userID, event string, props map[string]any) {
	if s.auditClient == nil {
		return
	}
	go s.auditClient.Enqueue(userID, event, props)
}
