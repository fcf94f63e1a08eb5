package services

import (
	"context"
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

// purchaseService records purchases and labor entries. Both are ledger
// sources: each recording lands the business record, its side records
// and its payable entry in a single repository transaction, and a
// purchase delete cascades to everything the recording produced.
type purchaseService struct {
	BaseService
	purchaseRepo portsrepo.PurchaseRepositoryFacade
	projectRepo  portsrepo.ProjectReader
	auditClient  *utils.AuditClient
	now          func() time.Time
}

// PurchaseServiceOption is a functional option for configuring the purchase service
type PurchaseServiceOption func(*purchaseService)

// WithPurchaseAuthorizer sets the permission gate for the purchase service.
func WithPurchaseAuthorizer(authorizer portssvc.PermissionAuthorizerSvc) PurchaseServiceOption {
	return func(s *purchaseService) {
		s.Authorizer = authorizer
	}
}

// WithPurchaseAuditClient sets the best-effort audit sink.
func WithPurchaseAuditClient(client *utils.AuditClient) PurchaseServiceOption {
	return func(s *purchaseService) {
		s.auditClient = client
	}
}

// WithPurchaseClock overrides the time source; used by tests.
func WithPurchaseClock(now func() time.Time) PurchaseServiceOption {
	return func(s *purchaseService) {
		s.now = now
	}
}

// NewPurchaseService creates a new PurchaseService.
func NewPurchaseService(purchaseRepo portsrepo.PurchaseRepositoryFacade, projectRepo portsrepo.ProjectReader, options ...PurchaseServiceOption) portssvc.PurchaseSvcFacade {
	svc := &purchaseService{
		purchaseRepo: purchaseRepo,
		projectRepo:  projectRepo,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure purchaseService implements the portssvc.PurchaseSvcFacade interface
var _ portssvc.PurchaseSvcFacade = (*purchaseService)(nil)

// RecordPurchase writes the purchase, its stock entry, an optional
// project expense and its payable entry in one transaction.
// Implements portssvc.PurchaseSvcFacade
func (s *purchaseService) RecordPurchase(ctx context.Context, req dto.CreatePurchaseRequest, creatorUserID string) (*domain.Purchase, error) {
	if err := s.Authorize(ctx, creatorUserID, "purchase:create"); err != nil {
		return nil, err
	}

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: purchase amount must be positive", apperrors.ErrValidation)
	}
	if req.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: purchase quantity must be positive", apperrors.ErrValidation)
	}
	if err := s.checkProject(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
		Version:       1,
	}

	purchase := domain.Purchase{
		PurchaseID:   uuid.NewString(),
		SupplierName: req.SupplierName,
		Description:  req.Description,
		Amount:       req.Amount,
		PurchaseDate: req.PurchaseDate,
		ProjectID:    req.ProjectID,
		AuditFields:  audit,
	}
	stock := domain.StockEntry{
		StockEntryID: uuid.NewString(),
		PurchaseID:   purchase.PurchaseID,
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		AuditFields:  audit,
	}

	var expense *domain.ProjectExpense
	if req.ProjectID != nil {
		expense = &domain.ProjectExpense{
			ExpenseID:   uuid.NewString(),
			ProjectID:   *req.ProjectID,
			Description: req.Description,
			Amount:      req.Amount,
			IncurredAt:  req.PurchaseDate,
			PurchaseID:  &purchase.PurchaseID,
			AuditFields: audit,
		}
	}

	entry := domain.CashFlowEntry{
		EntryID:     uuid.NewString(),
		Type:        domain.EntryPurchasePayable,
		Direction:   domain.DirectionOut,
		Description: req.Description,
		Amount:      req.Amount,
		DueDate:     req.DueDate,
		Status:      domain.EntryPending,
		PurchaseID:  &purchase.PurchaseID,
		AuditFields: audit,
	}

	if err := s.purchaseRepo.SavePurchase(ctx, purchase, stock, expense, entry); err != nil {
		s.LogError(ctx, err, "Failed to save purchase", slog.String("purchase_id", purchase.PurchaseID))
		return nil, err
	}

	s.LogInfo(ctx, "Purchase recorded", slog.String("purchase_id", purchase.PurchaseID))
	s.audit(creatorUserID, "purchase_recorded", map[string]any{"purchase_id": purchase.PurchaseID})
	return &purchase, nil
}

// DeletePurchase removes the purchase and everything it produced: its
// stock entries, project expenses and ledger entries go in the same
// transaction, nothing else is touched.
// Implements portssvc.PurchaseSvcFacade
func (s *purchaseService) DeletePurchase(ctx context.Context, purchaseID string, userID string) error {
	if err := s.Authorize(ctx, userID, "purchase:delete"); err != nil {
		return err
	}

	if _, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID); err != nil {
		return err
	}
	if err := s.purchaseRepo.DeletePurchase(ctx, purchaseID); err != nil {
		s.LogError(ctx, err, "Failed to delete purchase", slog.String("purchase_id", purchaseID))
		return err
	}

	s.LogInfo(ctx, "Purchase deleted with cascade", slog.String("purchase_id", purchaseID))
	s.audit(userID, "purchase_deleted", map[string]any{"purchase_id": purchaseID})
	return nil
}

// RecordLaborEntry writes the labor entry, an optional project expense
// and its payable entry in one transaction.
// Implements portssvc.PurchaseSvcFacade
func (s *purchaseService) RecordLaborEntry(ctx context.Context, req dto.CreateLaborEntryRequest, creatorUserID string) (*domain.LaborEntry, error) {
	if err := s.Authorize(ctx, creatorUserID, "labor:create"); err != nil {
		return nil, err
	}

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: labor amount must be positive", apperrors.ErrValidation)
	}
	if err := s.checkProject(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
		Version:       1,
	}

	labor := domain.LaborEntry{
		LaborEntryID: uuid.NewString(),
		EmployeeID:   req.EmployeeID,
		ProjectID:    req.ProjectID,
		Description:  req.Description,
		Amount:       req.Amount,
		WorkDate:     req.WorkDate,
		AuditFields:  audit,
	}

	var expense *domain.ProjectExpense
	if req.ProjectID != nil {
		expense = &domain.ProjectExpense{
			ExpenseID:    uuid.NewString(),
			ProjectID:    *req.ProjectID,
			Description:  req.Description,
			Amount:       req.Amount,
			IncurredAt:   req.WorkDate,
			LaborEntryID: &labor.LaborEntryID,
			AuditFields:  audit,
		}
	}

	entry := domain.CashFlowEntry{
		EntryID:      uuid.NewString(),
		Type:         domain.EntryLaborPayable,
		Direction:    domain.DirectionOut,
		Description:  req.Description,
		Amount:       req.Amount,
		DueDate:      req.DueDate,
		Status:       domain.EntryPending,
		LaborEntryID: &labor.LaborEntryID,
		AuditFields:  audit,
	}

	if err := s.purchaseRepo.SaveLaborEntry(ctx, labor, expense, entry); err != nil {
		s.LogError(ctx, err, "Failed to save labor entry", slog.String("labor_entry_id", labor.LaborEntryID))
		return nil, err
	}

	s.LogInfo(ctx, "Labor entry recorded", slog.String("labor_entry_id", labor.LaborEntryID))
	s.audit(creatorUserID, "labor_entry_recorded", map[string]any{"labor_entry_id": labor.LaborEntryID})
	return &labor, nil
}

// checkProject verifies the optional project reference exists before the
// expense row is booked against it.
func (s *purchaseService) checkProject(ctx context.Context, projectID *string) error {
	if projectID == nil {
		return nil
	}
	if _, err := s.projectRepo.FindProjectByID(ctx, *projectID); err != nil {
		return err
	}
	return nil
}

func (s *purchaseService) audit(userID, event string, props map[string]any) {
	if s.auditClient == nil {
		return
	}
	go s.auditClient.Enqueue(userID, event, props)
}
