package services

import (
	"context"

	"github.com/ateliersoft/backoffice_app/internal/core/domain"
	"github.com/ateliersoft/backoffice_app/internal/dto"
)

// ProjectSvcFacade covers the one-way quote-to-project conversion and
// project reads.
type ProjectSvcFacade interface {
	// ConvertQuoteToProject creates the single project for a PAID,
	// not-yet-converted quote, carrying the re-derived quote total as
	// initial revenue. The link is permanent.
	ConvertQuoteToProject(ctx context.Context, quoteID string, req dto.ConvertQuoteRequest, userID string) (*domain.Project, error)

	// GetProjectByID retrieves a project.
	GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
}

// PurchaseSvcFacade covers purchase and labor recording, the other two
// ledger-entry sources, plus the purchase cascade delete.
type PurchaseSvcFacade interface {
	// RecordPurchase writes the purchase, its stock entry, an optional
	// project expense and its payable entry in one transaction.
	RecordPurchase(ctx context.Context, req dto.CreatePurchaseRequest, creatorUserID string) (*domain.Purchase, error)

	// DeletePurchase removes the purchase and everything it produced.
	DeletePurchase(ctx context.Context, purchaseID string, userID string) error

	// RecordLaborEntry writes the labor entry, an optional project expense
	// and its payable entry in one transaction.
	RecordLaborEntry(ctx context.Context, req dto.CreateLaborEntryRequest, creatorUserID string) (*domain.LaborEntry, error)
}
