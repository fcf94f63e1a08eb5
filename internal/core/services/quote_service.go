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
	"github.com/ateliersoft/backoffice_app/internal/utils/accounting"
)

var (
	ErrQuoteNoLines      = errors.New("quote must have at least one item or service line")
	ErrQuoteNotEditable  = errors.New("only pending quotes can be edited")
	ErrQuoteNotDeletable = errors.New("only pending or cancelled quotes can be deleted")
)

// quoteService owns the quote lifecycle: creation, wholesale line edits,
// the status state machine and soft deletion. Paying a quote also writes
// the receivable ledger entry inside the transition's transaction.
type quoteService struct {
	BaseService
	quoteRepo   portsrepo.QuoteRepositoryFacade
	calculator  accounting.Calculator
	overdueAge  time.Duration
	auditClient *utils.AuditClient
	now         func() time.Time
}

// QuoteServiceOption is a functional option for configuring the quote service
type QuoteServiceOption func(*quoteService)

// WithQuoteAuthorizer sets the permission gate for the quote service.
func WithQuoteAuthorizer(authorizer portssvc.PermissionAuthorizerSvc) QuoteServiceOption {
	return func(s *quoteService) {
		s.Authorizer = authorizer
	}
}

// WithQuoteAuditClient sets the best-effort audit sink.
func WithQuoteAuditClient(client *utils.AuditClient) QuoteServiceOption {
	return func(s *quoteService) {
		s.auditClient = client
	}
}

// WithQuoteClock overrides the time source; used by tests.
func WithQuoteClock(now func() time.Time) QuoteServiceOption {
	return func(s *quoteService) {
		s.now = now
	}
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(quoteRepo portsrepo.QuoteRepositoryFacade, calculator accounting.Calculator, overdueAge time.Duration, options ...QuoteServiceOption) portssvc.QuoteSvcFacade {
	svc := &quoteService{
		quoteRepo:  quoteRepo,
		calculator: calculator,
		overdueAge: overdueAge,
		now:        time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure quoteService implements the portssvc.QuoteSvcFacade interface
var _ portssvc.QuoteSvcFacade = (*quoteService)(nil)

// buildLines turns request lines into immutable snapshots with fresh IDs
// and computed line totals.
func buildLines(quoteID string, items, services []dto.QuoteLineRequest) ([]domain.QuoteItem, []domain.QuoteServiceLine, error) {
	domainItems := make([]domain.QuoteItem, len(items))
	for i, line := range items {
		if err := validateLine(line); err != nil {
			return nil, nil, err
		}
		domainItems[i] = domain.QuoteItem{
			ItemID:    uuid.NewString(),
			QuoteID:   quoteID,
			ProductID: line.RefID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			LineTotal: accounting.LineTotal(line.Quantity, line.UnitPrice),
		}
	}

	domainServices := make([]domain.QuoteServiceLine, len(services))
	for i, line := range services {
		if err := validateLine(line); err != nil {
			return nil, nil, err
		}
		domainServices[i] = domain.QuoteServiceLine{
			LineID:    uuid.NewString(),
			QuoteID:   quoteID,
			ServiceID: line.RefID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			LineTotal: accounting.LineTotal(line.Quantity, line.UnitPrice),
		}
	}

	return domainItems, domainServices, nil
}

func validateLine(line dto.QuoteLineRequest) error {
	if line.Quantity.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: line quantity must be positive for ref %s", apperrors.ErrValidation, line.RefID)
	}
	if line.UnitPrice.IsNegative() {
		return fmt.Errorf("%w: unit price cannot be negative for ref %s", apperrors.ErrValidation, line.RefID)
	}
	return nil
}

// CreateQuote creates a quote in PENDING with its creation status-log row.
// Implements portssvc.QuoteWriterSvc
func (s *quoteService) CreateQuote(ctx context.Context, req dto.CreateQuoteRequest, creatorUserID string) (*domain.Quote, error) {
	if err := s.Authorize(ctx, creatorUserID, "quote:create"); err != nil {
		return nil, err
	}

	if req.ClientID == "" {
		return nil, fmt.Errorf("%w: clientID is required", apperrors.ErrValidation)
	}
	if len(req.Items)+len(req.Services) < 1 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrQuoteNoLines)
	}

	now := s.now().UTC()
	quoteID := uuid.NewString()

	items, serviceLines, err := buildLines(quoteID, req.Items, req.Services)
	if err != nil {
		return nil, err
	}

	quote := domain.Quote{
		QuoteID:  quoteID,
		ClientID: req.ClientID,
		Status:   domain.QuotePending,
		ApplyFee: req.ApplyFee,
		Notes:    req.Notes,
		Items:    items,
		Services: serviceLines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
			Version:       1,
		},
	}

	// The creation row of the status log has no fromStatus.
	change := domain.QuoteStatusChange{
		ChangeID:  uuid.NewString(),
		QuoteID:   quoteID,
		ToStatus:  domain.QuotePending,
		ChangedBy: creatorUserID,
		ChangedAt: now,
	}

	if err := s.quoteRepo.SaveQuote(ctx, quote, change); err != nil {
		s.LogError(ctx, err, "Failed to save quote", slog.String("quote_id", quoteID))
		return nil, err
	}
	quote.StatusLog = []domain.QuoteStatusChange{change}

	s.LogInfo(ctx, "Quote created", slog.String("quote_id", quoteID), slog.String("client_id", req.ClientID))
	s.audit(creatorUserID, "quote_created", map[string]any{"quote_id": quoteID})
	return &quote, nil
}

// UpdateQuote replaces the line collections wholesale and updates
// client/fee/notes. Only PENDING quotes are editable.
// Implements portssvc.QuoteWriterSvc
func (s *quoteService) UpdateQuote(ctx context.Context, quoteID string, req dto.UpdateQuoteRequest, userID string) (*domain.Quote, error) {
	if err := s.Authorize(ctx, userID, "quote:update"); err != nil {
		return nil, err
	}

	if len(req.Items)+len(req.Services) < 1 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrQuoteNoLines)
	}

	existing, err := s.quoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if !existing.IsEditable() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrIllegalTransition, ErrQuoteNotEditable)
	}

	now := s.now().UTC()
	items, serviceLines, err := buildLines(quoteID, req.Items, req.Services)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.ClientID = req.ClientID
	updated.ApplyFee = req.ApplyFee
	updated.Notes = req.Notes
	updated.Items = items
	updated.Services = serviceLines
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = userID

	// Delete-then-insert inside the repo transaction; line identity is
	// not preserved across edits.
	if err := s.quoteRepo.ReplaceQuoteLines(ctx, updated, domain.QuotePending); err != nil {
		s.LogError(ctx, err, "Failed to update quote", slog.String("quote_id", quoteID))
		return nil, err
	}

	s.LogInfo(ctx, "Quote updated", slog.String("quote_id", quoteID))
	s.audit(userID, "quote_updated", map[string]any{"quote_id": quoteID})
	return &updated, nil
}

// TransitionQuote moves the quote to a legal successor status. A
// transition to PAID also writes the quote's receivable in the same
// database transaction: no PAID quote without exactly one receivable.
// Implements portssvc.QuoteWriterSvc
func (s *quoteService) TransitionQuote(ctx context.Context, quoteID string, req dto.TransitionQuoteRequest, userID string) (*domain.Quote, error) {
	if err := s.Authorize(ctx, userID, "quote:transition"); err != nil {
		return nil, err
	}

	if !req.ToStatus.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, req.ToStatus)
	}

	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	if !quote.Status.CanTransitionTo(req.ToStatus) {
		return nil, fmt.Errorf("%w: cannot move quote from %s to %s", apperrors.ErrIllegalTransition, quote.Status, req.ToStatus)
	}

	now := s.now().UTC()
	fromStatus := quote.Status
	change := domain.QuoteStatusChange{
		ChangeID:   uuid.NewString(),
		QuoteID:    quoteID,
		FromStatus: &fromStatus,
		ToStatus:   req.ToStatus,
		ChangedBy:  userID,
		Notes:      req.Notes,
		ChangedAt:  now,
	}

	var receivable *domain.CashFlowEntry
	if req.ToStatus == domain.QuotePaid {
		totals := s.calculator.Compute(quote.Items, quote.Services, quote.ApplyFee)
		receivable = &domain.CashFlowEntry{
			EntryID:     uuid.NewString(),
			Type:        domain.EntryQuoteReceivable,
			Direction:   domain.DirectionIn,
			Description: fmt.Sprintf("Receivable for quote %s", quoteID),
			Amount:      totals.Total,
			DueDate:     now,
			Status:      domain.EntryPending,
			QuoteID:     &quoteID,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
				Version:       1,
			},
		}
	}

	// The repo re-checks the expected status inside the transaction so a
	// concurrent transition surfaces as ErrConflict instead of a lost update.
	if err := s.quoteRepo.TransitionQuote(ctx, quoteID, fromStatus, change, receivable); err != nil {
		s.LogError(ctx, err, "Failed to transition quote",
			slog.String("quote_id", quoteID),
			slog.String("from", string(fromStatus)),
			slog.String("to", string(req.ToStatus)))
		return nil, err
	}

	quote.Status = req.ToStatus
	quote.StatusLog = append(quote.StatusLog, change)
	quote.LastUpdatedAt = now
	quote.LastUpdatedBy = userID

	s.LogInfo(ctx, "Quote transitioned",
		slog.String("quote_id", quoteID),
		slog.String("from", string(fromStatus)),
		slog.String("to", string(req.ToStatus)))
	s.audit(userID, "quote_status_changed", map[string]any{
		"quote_id": quoteID,
		"from":     string(fromStatus),
		"to":       string(req.ToStatus),
	})
	return quote, nil
}

// DeleteQuote soft-deletes a PENDING or CANCELLED quote. Historical
// reporting keeps the row; reads filter on the deletion marker.
// Implements portssvc.QuoteWriterSvc
func (s *quoteService) DeleteQuote(ctx context.Context, quoteID string, userID string) error {
	if err := s.Authorize(ctx, userID, "quote:delete"); err != nil {
		return err
	}

	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		return err
	}
	if !quote.IsDeletable() {
		return fmt.Errorf("%w: %s", apperrors.ErrIllegalTransition, ErrQuoteNotDeletable)
	}

	now := s.now().UTC()
	if err := s.quoteRepo.SoftDeleteQuote(ctx, quoteID, quote.Status, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to delete quote", slog.String("quote_id", quoteID))
		return err
	}

	s.LogInfo(ctx, "Quote deleted", slog.String("quote_id", quoteID))
	s.audit(userID, "quote_deleted", map[string]any{"quote_id": quoteID})
	return nil
}

// GetQuoteByID retrieves a quote with items, services and status log.
// Implements portssvc.QuoteReaderSvc
func (s *quoteService) GetQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error) {
	return s.quoteRepo.FindQuoteByID(ctx, quoteID)
}

// ListQuotes retrieves quotes with token pagination, optionally filtered
// by status.
// Implements portssvc.QuoteReaderSvc
func (s *quoteService) ListQuotes(ctx context.Context, status *domain.QuoteStatus, limit int, nextToken *string) ([]domain.Quote, *string, error) {
	if status != nil && !status.IsValid() {
		return nil, nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, *status)
	}
	if limit <= 0 {
		limit = 20
	}
	return s.quoteRepo.ListQuotes(ctx, status, limit, nextToken)
}

// ListOverdueQuotes returns PENDING quotes older than the approval
// window. The repository cutoff over-selects by a hair; the pure
// predicate makes the strict boundary call.
// Implements portssvc.QuoteReaderSvc
func (s *quoteService) ListOverdueQuotes(ctx context.Context) ([]domain.Quote, error) {
	now := s.now().UTC()
	candidates, err := s.quoteRepo.ListQuotesCreatedBefore(ctx, domain.QuotePending, now.Add(-s.overdueAge))
	if err != nil {
		return nil, err
	}

	overdue := make([]domain.Quote, 0, len(candidates))
	for _, q := range candidates {
		if accounting.IsQuoteOverdue(q.CreatedAt, q.Status, now, s.overdueAge) {
			overdue = append(overdue, q)
		}
	}
	return overdue, nil
}

// audit publishes a best-effort event; it never blocks the caller.
func (s *quoteService) audit(userID, event string, props map[string]any) {
	if s.auditClient == nil {
		return
	}
	go s.auditClient.Enqueue(userID, event, props)
}
