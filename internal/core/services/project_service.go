package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ateliersoft/backoffice_app/internal/apperrors"
	"github.com/ateliersoft/backoffice_app/internal/core/domain"
	portsrepo "github.com/ateliersoft/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/ateliersoft/backoffice_app/internal/core/ports/services"
	"github.com/ateliersoft/backoffice_app/internal/dto"
	"github.com/ateliersoft/backoffice_app/internal/utils"
	"github.com/ateliersoft/backoffice_app/internal/utils/accounting"
)

var (
	// ErrQuoteNotPaid rejects conversion of a quote that has not reached PAID.
	ErrQuoteNotPaid = errors.New("quote must be PAID before conversion")
	// ErrQuoteAlreadyConverted rejects a second conversion of the same quote.
	ErrQuoteAlreadyConverted = errors.New("quote already converted to a project")
)

// projectService owns the one-way quote-to-project conversion and
// project reads.
type projectService struct {
	BaseService
	projectRepo portsrepo.ProjectRepositoryFacade
	quoteRepo   portsrepo.QuoteReader
	calculator  accounting.Calculator
	auditClient *utils.AuditClient
	now         func() time.Time
}

// ProjectServiceOption is a functional option for configuring the project service
type ProjectServiceOption func(*projectService)

// WithProjectAuthorizer sets the permission gate for the project service.
func WithProjectAuthorizer(authorizer portssvc.PermissionAuthorizerSvc) ProjectServiceOption {
	return func(s *projectService) {
		s.Authorizer = authorizer
	}
}

// WithProjectAuditClient sets the best-effort audit sink.
func WithProjectAuditClient(client *utils.AuditClient) ProjectServiceOption {
	return func(s *projectService) {
		s.auditClient = client
	}
}

// WithProjectClock overrides the time source; used by tests.
func WithProjectClock(now func() time.Time) ProjectServiceOption {
	return func(s *projectService) {
		s.now = now
	}
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo portsrepo.ProjectRepositoryFacade, quoteRepo portsrepo.QuoteReader, calculator accounting.Calculator, options ...ProjectServiceOption) portssvc.ProjectSvcFacade {
	svc := &projectService{
		projectRepo: projectRepo,
		quoteRepo:   quoteRepo,
		calculator:  calculator,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure projectService implements the portssvc.ProjectSvcFacade interface
var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

// ConvertQuoteToProject creates the single project for a PAID,
// not-yet-converted quote. The revenue is re-derived from the quote's
// lines at conversion time rather than trusted from the caller.
// Implements portssvc.ProjectSvcFacade
func (s *projectService) ConvertQuoteToProject(ctx context.Context, quoteID string, req dto.ConvertQuoteRequest, userID string) (*domain.Project, error) {
	if err := s.Authorize(ctx, userID, "project:create"); err != nil {
		return nil, err
	}

	quote, err := s.quoteRepo.FindQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if quote.Status != domain.QuotePaid {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrIllegalTransition, ErrQuoteNotPaid)
	}
	if quote.IsConverted() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrConflict, ErrQuoteAlreadyConverted)
	}

	totals := s.calculator.Compute(quote.Items, quote.Services, quote.ApplyFee)
	now := s.now().UTC()
	project := domain.Project{
		ProjectID:    uuid.NewString(),
		QuoteID:      quote.QuoteID,
		Name:         req.Name,
		TotalRevenue: totals.Total,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
			Version:       1,
		},
	}

	// The repo re-checks the quote status and link inside its transaction;
	// a concurrent conversion loses with ErrConflict.
	if err := s.projectRepo.CreateFromQuote(ctx, project, domain.QuotePaid); err != nil {
		s.LogError(ctx, err, "Failed to convert quote to project", slog.String("quote_id", quoteID))
		return nil, err
	}

	s.LogInfo(ctx, "Quote converted to project",
		slog.String("quote_id", quoteID), slog.String("project_id", project.ProjectID))
	s.audit(userID, "quote_converted", map[string]any{
		"quote_id":   quoteID,
		"project_id": project.ProjectID,
	})
	return &project, nil
}

// GetProjectByID retrieves a project.
// Implements portssvc.ProjectSvcFacade
func (s *projectService) GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	return s.projectRepo.FindProjectByID(ctx, projectID)
}

func (s *projectService) audit(userID, event string, props map[string]any) {
	if s.auditClient == nil {
		return
	}
	go s.auditClient.Enqueue(userID, event, props)
}
