package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/ateliersoft/backoffice_app/internal/apperrors"
	"github.com/ateliersoft/backoffice_app/internal/core/domain"
	portsrepo "github.com/ateliersoft/backoffice_app/internal/core/ports/repositories"
	"github.com/ateliersoft/backoffice_app/internal/models"
	"github.com/ateliersoft/backoffice_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCashFlowRepository struct {
	BaseRepository
}

// newPgxCashFlowRepository creates a new repository for ledger entry data.
func newPgxCashFlowRepository(pool *pgxpool.Pool) portsrepo.CashFlowRepositoryWithTx {
	return &PgxCashFlowRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxCashFlowRepository implements portsrepo.CashFlowRepositoryWithTx
var _ portsrepo.CashFlowRepositoryWithTx = (*PgxCashFlowRepository)(nil)

const entryColumns = `entry_id, entry_type, direction, description, amount, due_date, status, paid_at,
	quote_id, purchase_id, labor_entry_id,
	created_at, created_by, last_updated_at, last_updated_by, version`

// SaveEntry persists a manually created ledger entry.
func (r *PgxCashFlowRepository) SaveEntry(ctx context.Context, entry domain.CashFlowEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertCashFlowEntry(ctx, tx, entry); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// MarkEntryPaid settles an entry. The update is guarded on status PENDING
// so the original payment timestamp can never be overwritten.
func (r *PgxCashFlowRepository) MarkEntryPaid(ctx context.Context, entryID string, paidAt time.Time, userID string, now time.Time) error {
	query := `
		UPDATE cash_flow_entries
		SET status = $1, paid_at = $2, last_updated_at = $3, last_updated_by = $4, version = version + 1
		WHERE entry_id = $5 AND status = $6;
	`
	tag, err := r.Pool.Exec(ctx, query,
		models.EntryStatus(domain.EntryPaid),
		paidAt,
		now,
		userID,
		entryID,
		models.EntryStatus(domain.EntryPending),
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark entry paid "+entryID, err)
	}
	if tag.RowsAffected() == 0 {
		var status models.EntryStatus
		err := r.Pool.QueryRow(ctx, `SELECT status FROM cash_flow_entries WHERE entry_id = $1;`, entryID).Scan(&status)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		if err != nil {
			return apperrors.NewAppError(500, "failed to re-check entry "+entryID, err)
		}
		return apperrors.ErrConflict
	}
	return nil
}

// UpdateEntryDueDate changes the due date regardless of status.
func (r *PgxCashFlowRepository) UpdateEntryDueDate(ctx context.Context, entryID string, dueDate time.Time, userID string, now time.Time) error {
	query := `
		UPDATE cash_flow_entries
		SET due_date = $1, last_updated_at = $2, last_updated_by = $3, version = version + 1
		WHERE entry_id = $4;
	`
	tag, err := r.Pool.Exec(ctx, query, dueDate, now, userID, entryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update due date for entry "+entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindEntryByID retrieves a single ledger entry.
func (r *PgxCashFlowRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.CashFlowEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM cash_flow_entries
		WHERE entry_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entry "+entryID, err)
	}
	modelEntry, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.CashFlowEntry])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan entry "+entryID, err)
	}
	domainEntry := mapping.ToDomainCashFlowEntry(modelEntry)
	return &domainEntry, nil
}

// ListEntries retrieves entries matching the filter, ordered by due date.
func (r *PgxCashFlowRepository) ListEntries(ctx context.Context, filter portsrepo.EntryFilter) ([]domain.CashFlowEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM cash_flow_entries
		WHERE 1=1
	`
	args := []interface{}{}
	if filter.Direction != nil {
		args = append(args, models.EntryDirection(*filter.Direction))
		query += ` AND direction = $` + strconv.Itoa(len(args))
	}
	if filter.Status != nil {
		args = append(args, models.EntryStatus(*filter.Status))
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filter.DueFrom != nil {
		args = append(args, *filter.DueFrom)
		query += ` AND due_date >= $` + strconv.Itoa(len(args))
	}
	if filter.DueTo != nil {
		args = append(args, *filter.DueTo)
		query += ` AND due_date <= $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY due_date ASC, entry_id ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger entries", err)
	}
	modelEntries, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.CashFlowEntry])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan ledger entry rows", err)
	}

	entries := make([]domain.CashFlowEntry, 0, len(modelEntries))
	for _, m := range modelEntries {
		entries = append(entries, mapping.ToDomainCashFlowEntry(m))
	}
	return entries, nil
}

// insertCashFlowEntry writes one ledger entry inside the caller's
// transaction. Shared with the quote and purchase repositories so an
// originating record and its entry always land together.
func insertCashFlowEntry(ctx context.Context, tx pgx.Tx, entry domain.CashFlowEntry) error {
	m := mapping.ToModelCashFlowEntry(entry)
	query := `
		INSERT INTO cash_flow_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := tx.Exec(ctx, query,
		m.EntryID,
		m.Type,
		m.Direction,
		m.Description,
		m.Amount,
		m.DueDate,
		m.Status,
		m.PaidAt,
		m.QuoteID,
		m.PurchaseID,
		m.LaborEntryID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.Version,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert ledger entry "+m.EntryID, err)
	}
	return nil
}
