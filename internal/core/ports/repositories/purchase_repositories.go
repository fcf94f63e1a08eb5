package repositories

import (
	"context"

	"github.com/ateliersoft/backoffice_app/internal/core/domain"
)

// PurchaseReader defines read operations for purchases and labor entries.
type PurchaseReader interface {
	// FindPurchaseByID retrieves a purchase by its identifier.
	FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)

	// FindLaborEntryByID retrieves a labor entry by its identifier.
	FindLaborEntryByID(ctx context.Context, laborEntryID string) (*domain.LaborEntry, error)
}

// PurchaseWriter defines write operations for purchases and labor
// entries. Each method is a single database transaction: the business
// record, its side records and its ledger entry land together or not at all.
type PurchaseWriter interface {
	// SavePurchase persists the purchase, its stock entry, an optional
	// project expense and the PURCHASE_PAYABLE ledger entry atomically.
	SavePurchase(ctx context.Context, purchase domain.Purchase, stock domain.StockEntry, expense *domain.ProjectExpense, entry domain.CashFlowEntry) error

	// DeletePurchase removes the purchase and cascades to its stock
	// entries, project expenses and ledger entries in the same
	// transaction, touching no other rows.
	DeletePurchase(ctx context.Context, purchaseID string) error

	// SaveLaborEntry persists the labor entry, an optional project expense
	// and the LABOR_PAYABLE ledger entry atomically.
	SaveLaborEntry(ctx context.Context, labor domain.LaborEntry, expense *domain.ProjectExpense, entry domain.CashFlowEntry) error
}

// PurchaseRepositoryFacade combines all purchase-related repository interfaces.
type PurchaseRepositoryFacade interface {
	PurchaseReader
	PurchaseWriter
}

// PurchaseRepositoryWithTx extends PurchaseRepositoryFacade with transaction capabilities.
type PurchaseRepositoryWithTx interface {
	PurchaseRepositoryFacade
	TransactionManager
}
