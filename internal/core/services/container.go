package services

import (
	portsrepo "github.com/ateliersoft/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/ateliersoft/backoffice_app/internal/core/ports/services"
	"github.com/ateliersoft/backoffice_app/internal/platform/config"
	"github.com/ateliersoft/backoffice_app/internal/utils"
	"github.com/ateliersoft/backoffice_app/internal/utils/accounting"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, auditClient *utils.AuditClient) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	calculator := accounting.NewCalculator(cfg.FeeRate)

	container.Quote = NewQuoteService(
		repos.QuoteRepo,
		calculator,
		cfg.QuoteOverdueAge,
		WithQuoteAuditClient(auditClient),
	)

	container.Ledger = NewLedgerService(
		repos.CashFlowRepo,
		WithLedgerAuditClient(auditClient),
	)

	container.Summary = NewSummaryService(repos.CashFlowRepo)

	container.Project = NewProjectService(
		repos.ProjectRepo,
		repos.QuoteRepo,
		calculator,
		WithProjectAuditClient(auditClient),
	)

	container.Purchase = NewPurchaseService(
		repos.PurchaseRepo,
		repos.ProjectRepo,
		WithPurchaseAuditClient(auditClient),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.QuoteSvcFacade    = (*quoteService)(nil)
	_ portssvc.LedgerSvcFacade   = (*ledgerService)(nil)
	_ portssvc.SummarySvcFacade  = (*summaryService)(nil)
	_ portssvc.ProjectSvcFacade  = (*projectService)(nil)
	_ portssvc.PurchaseSvcFacade = (*purchaseService)(nil)
)
