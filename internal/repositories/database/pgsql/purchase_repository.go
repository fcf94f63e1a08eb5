package pgsql

import (
	"context"
	"errors"

	"github.com/ateliersoft/backoffice_app/internal/apperrors"
	"github.com/ateliersoft/backoffice_app/internal/core/domain"
	portsrepo "github.com/ateliersoft/backoffice_app/internal/core/ports/repositories"
	"github.com/ateliersoft/backoffice_app/internal/models"
	"github.com/ateliersoft/backoffice_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPurchaseRepository struct {
	BaseRepository
}

// newPgxPurchaseRepository creates a new repository for purchase and
// labor entry data.
func newPgxPurchaseRepository(pool *pgxpool.Pool) portsrepo.PurchaseRepositoryWithTx {
	return &PgxPurchaseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxPurchaseRepository implements portsrepo.PurchaseRepositoryWithTx
var _ portsrepo.PurchaseRepositoryWithTx = (*PgxPurchaseRepository)(nil)

// SavePurchase persists the purchase, its stock entry, an optional
// project expense and the payable ledger entry atomically.
func (r *PgxPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase, stock domain.StockEntry, expense *domain.ProjectExpense, entry domain.CashFlowEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelPurchase(purchase)
	purchaseQuery := `
		INSERT INTO purchases (purchase_id, supplier_name, description, amount, purchase_date, project_id,
			created_at, created_by, last_updated_at, last_updated_by, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, purchaseQuery,
		m.PurchaseID, m.SupplierName, m.Description, m.Amount, m.PurchaseDate, m.ProjectID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert purchase "+m.PurchaseID, err)
	}

	ms := mapping.ToModelStockEntry(stock)
	stockQuery := `
		INSERT INTO stock_entries (stock_entry_id, purchase_id, product_id, quantity,
			created_at, created_by, last_updated_at, last_updated_by, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, stockQuery,
		ms.StockEntryID, ms.PurchaseID, ms.ProductID, ms.Quantity,
		ms.CreatedAt, ms.CreatedBy, ms.LastUpdatedAt, ms.LastUpdatedBy, ms.Version,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert stock entry for purchase "+m.PurchaseID, err)
	}

	if expense != nil {
		if err := insertProjectExpense(ctx, tx, *expense); err != nil {
			return err
		}
	}
	if err := insertCashFlowEntry(ctx, tx, entry); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeletePurchase removes the purchase and cascades to its stock entries,
// project expenses and ledger entries, touching no other rows.
func (r *PgxPurchaseRepository) DeletePurchase(ctx context.Context, purchaseID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM cash_flow_entries WHERE purchase_id = $1;`, purchaseID); err != nil {
		return apperrors.NewAppError(500, "failed to remove ledger entries for purchase "+purchaseID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM project_expenses WHERE purchase_id = $1;`, purchaseID); err != nil {
		return apperrors.NewAppError(500, "failed to remove expenses for purchase "+purchaseID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM stock_entries WHERE purchase_id = $1;`, purchaseID); err != nil {
		return apperrors.NewAppError(500, "failed to remove stock entries for purchase "+purchaseID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM purchases WHERE purchase_id = $1;`, purchaseID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete purchase "+purchaseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// SaveLaborEntry persists the labor entry, an optional project expense
// and the payable ledger entry atomically.
func (r *PgxPurchaseRepository) SaveLaborEntry(ctx context.Context, labor domain.LaborEntry, expense *domain.ProjectExpense, entry domain.CashFlowEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelLaborEntry(labor)
	laborQuery := `
		INSERT INTO labor_entries (labor_entry_id, employee_id, project_id, description, amount, work_date,
			created_at, created_by, last_updated_at, last_updated_by, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, laborQuery,
		m.LaborEntryID, m.EmployeeID, m.ProjectID, m.Description, m.Amount, m.WorkDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert labor entry "+m.LaborEntryID, err)
	}

	if expense != nil {
		if err := insertProjectExpense(ctx, tx, *expense); err != nil {
			return err
		}
	}
	if err := insertCashFlowEntry(ctx, tx, entry); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindPurchaseByID retrieves a purchase by its identifier.
func (r *PgxPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	query := `
		SELECT purchase_id, supplier_name, description, amount, purchase_date, project_id,
			created_at, created_by, last_updated_at, last_updated_by, version
		FROM purchases
		WHERE purchase_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, purchaseID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query purchase "+purchaseID, err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Purchase])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan purchase "+purchaseID, err)
	}
	domainPurchase := mapping.ToDomainPurchase(m)
	return &domainPurchase, nil
}

// FindLaborEntryByID retrieves a labor entry by its identifier.
func (r *PgxPurchaseRepository) FindLaborEntryByID(ctx context.Context, laborEntryID string) (*domain.LaborEntry, error) {
	query := `
		SELECT labor_entry_id, employee_id, project_id, description, amount, work_date,
			created_at, created_by, last_updated_at, last_updated_by, version
		FROM labor_entries
		WHERE labor_entry_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, laborEntryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query labor entry "+laborEntryID, err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.LaborEntry])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan labor entry "+laborEntryID, err)
	}
	domainLabor := mapping.ToDomainLaborEntry(m)
	return &domainLabor, nil
}

func insertProjectExpense(ctx context.Context, tx pgx.Tx, expense domain.ProjectExpense) error {
	m := mapping.ToModelProjectExpense(expense)
	query := `
		INSERT INTO project_expenses (expense_id, project_id, description, amount, incurred_at,
			purchase_id, labor_entry_id,
			created_at, created_by, last_updated_at, last_updated_by, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := tx.Exec(ctx, query,
		m.ExpenseID, m.ProjectID, m.Description, m.Amount, m.IncurredAt,
		m.PurchaseID, m.LaborEntryID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert project expense "+m.ExpenseID, err)
	}
	return nil
}
