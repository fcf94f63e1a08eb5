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
	"github.com/ateliersoft/backoffice_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxQuoteRepository struct {
	BaseRepository
}

// newPgxQuoteRepository creates a new repository for quote data.
func newPgxQuoteRepository(pool *pgxpool.Pool) portsrepo.QuoteRepositoryWithTx {
	return &PgxQuoteRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxQuoteRepository implements portsrepo.QuoteRepositoryWithTx
var _ portsrepo.QuoteRepositoryWithTx = (*PgxQuoteRepository)(nil)

const quoteColumns = `quote_id, client_id, status, apply_fee, notes, project_id, deleted_at,
	created_at, created_by, last_updated_at, last_updated_by, version`

// SaveQuote persists a new quote with its lines and the creation
// status-log row within a DB transaction.
func (r *PgxQuoteRepository) SaveQuote(ctx context.Context, quote domain.Quote, change domain.QuoteStatusChange) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelQuote := mapping.ToModelQuote(quote)
	quoteQuery := `
		INSERT INTO quotes (` + quoteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, quoteQuery,
		modelQuote.QuoteID,
		modelQuote.ClientID,
		modelQuote.Status,
		modelQuote.ApplyFee,
		modelQuote.Notes,
		modelQuote.ProjectID,
		modelQuote.DeletedAt,
		modelQuote.CreatedAt,
		modelQuote.CreatedBy,
		modelQuote.LastUpdatedAt,
		modelQuote.LastUpdatedBy,
		modelQuote.Version,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert quote "+modelQuote.QuoteID, err)
	}

	if err := insertQuoteLines(ctx, tx, quote.Items, quote.Services); err != nil {
		return err
	}
	if err := insertStatusChange(ctx, tx, change); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// ReplaceQuoteLines updates the quote's editable fields and swaps its
// line collections wholesale. The update is guarded by expectedStatus so
// a quote approved between read and write surfaces as a conflict.
func (r *PgxQuoteRepository) ReplaceQuoteLines(ctx context.Context, quote domain.Quote, expectedStatus domain.QuoteStatus) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelQuote := mapping.ToModelQuote(quote)
	updateQuery := `
		UPDATE quotes
		SET client_id = $1, apply_fee = $2, notes = $3,
		    last_updated_at = $4, last_updated_by = $5, version = version + 1
		WHERE quote_id = $6 AND status = $7 AND deleted_at IS NULL;
	`
	tag, err := tx.Exec(ctx, updateQuery,
		modelQuote.ClientID,
		modelQuote.ApplyFee,
		modelQuote.Notes,
		modelQuote.LastUpdatedAt,
		modelQuote.LastUpdatedBy,
		modelQuote.QuoteID,
		models.QuoteStatus(expectedStatus),
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update quote "+modelQuote.QuoteID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.guardFailure(ctx, tx, modelQuote.QuoteID)
	}

	// Wholesale replacement: line identity is not preserved across edits.
	if _, err := tx.Exec(ctx, `DELETE FROM quote_items WHERE quote_id = $1;`, modelQuote.QuoteID); err != nil {
		return apperrors.NewAppError(500, "failed to clear quote items for "+modelQuote.QuoteID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM quote_services WHERE quote_id = $1;`, modelQuote.QuoteID); err != nil {
		return apperrors.NewAppError(500, "failed to clear quote services for "+modelQuote.QuoteID, err)
	}
	if err := insertQuoteLines(ctx, tx, quote.Items, quote.Services); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// TransitionQuote atomically moves a quote to its next status, appends
// the status-log row and, on the transition to PAID, inserts the
// receivable ledger entry in the same transaction.
func (r *PgxQuoteRepository) TransitionQuote(ctx context.Context, quoteID string, expectedStatus domain.QuoteStatus, change domain.QuoteStatusChange, receivable *domain.CashFlowEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	updateQuery := `
		UPDATE quotes
		SET status = $1, last_updated_at = $2, last_updated_by = $3, version = version + 1
		WHERE quote_id = $4 AND status = $5 AND deleted_at IS NULL;
	`
	tag, err := tx.Exec(ctx, updateQuery,
		models.QuoteStatus(change.ToStatus),
		change.ChangedAt,
		change.ChangedBy,
		quoteID,
		models.QuoteStatus(expectedStatus),
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to transition quote "+quoteID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.guardFailure(ctx, tx, quoteID)
	}

	if err := insertStatusChange(ctx, tx, change); err != nil {
		return err
	}
	if receivable != nil {
		if err := insertCashFlowEntry(ctx, tx, *receivable); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// SoftDeleteQuote marks the quote deleted and removes its dependent
// ledger entries in the same transaction.
func (r *PgxQuoteRepository) SoftDeleteQuote(ctx context.Context, quoteID string, expectedStatus domain.QuoteStatus, deletedBy string, deletedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	updateQuery := `
		UPDATE quotes
		SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2, version = version + 1
		WHERE quote_id = $3 AND status = $4 AND deleted_at IS NULL;
	`
	tag, err := tx.Exec(ctx, updateQuery, deletedAt, deletedBy, quoteID, models.QuoteStatus(expectedStatus))
	if err != nil {
		return apperrors.NewAppError(500, "failed to soft-delete quote "+quoteID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.guardFailure(ctx, tx, quoteID)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cash_flow_entries WHERE quote_id = $1;`, quoteID); err != nil {
		return apperrors.NewAppError(500, "failed to remove ledger entries for quote "+quoteID, err)
	}

	return r.Commit(ctx, tx)
}

// FindQuoteByID retrieves a quote with its items, services and status log.
func (r *PgxQuoteRepository) FindQuoteByID(ctx context.Context, quoteID string) (*domain.Quote, error) {
	query := `
		SELECT ` + quoteColumns + `
		FROM quotes
		WHERE quote_id = $1 AND deleted_at IS NULL;
	`
	rows, err := r.Pool.Query(ctx, query, quoteID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query quote "+quoteID, err)
	}
	modelQuote, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Quote])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan quote "+quoteID, err)
	}

	domainQuote := mapping.ToDomainQuote(modelQuote)
	if err := r.loadQuoteLines(ctx, &domainQuote); err != nil {
		return nil, err
	}
	return &domainQuote, nil
}

// ListQuotes retrieves quotes using token-based pagination over
// (created_at, quote_id), newest first, optionally filtered by status.
func (r *PgxQuoteRepository) ListQuotes(ctx context.Context, status *domain.QuoteStatus, limit int, nextToken *string) ([]domain.Quote, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ` + quoteColumns + `
		FROM quotes
		WHERE deleted_at IS NULL
	`
	args := []interface{}{}
	if status != nil {
		args = append(args, models.QuoteStatus(*status))
		baseQuery += ` AND status = $` + strconv.Itoa(len(args))
	}

	if nextToken != nil && *nextToken != "" {
		fields, decodeErr := pagination.DecodeMultiFieldToken(*nextToken)
		if decodeErr != nil || len(fields) != 2 {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		lastCreatedAt, parseErr := time.Parse(time.RFC3339Nano, fields[0])
		if parseErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", parseErr)
		}
		args = append(args, lastCreatedAt, fields[1])
		baseQuery += ` AND (created_at, quote_id) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query := baseQuery + `
		ORDER BY created_at DESC, quote_id DESC
		LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query quotes", err)
	}
	modelQuotes, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Quote])
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to scan quote rows", err)
	}

	var newNextToken *string
	if len(modelQuotes) == fetchLimit {
		modelQuotes = modelQuotes[:limit]
		last := modelQuotes[len(modelQuotes)-1]
		token := pagination.EncodeMultiFieldToken(last.CreatedAt.Format(time.RFC3339Nano), last.QuoteID)
		newNextToken = &token
	}

	quotes := make([]domain.Quote, 0, len(modelQuotes))
	for _, m := range modelQuotes {
		quotes = append(quotes, mapping.ToDomainQuote(m))
	}
	return quotes, newNextToken, nil
}

// ListQuotesCreatedBefore retrieves quotes in the given status created
// strictly before the cutoff.
func (r *PgxQuoteRepository) ListQuotesCreatedBefore(ctx context.Context, status domain.QuoteStatus, cutoff time.Time) ([]domain.Quote, error) {
	query := `
		SELECT ` + quoteColumns + `
		FROM quotes
		WHERE status = $1 AND created_at < $2 AND deleted_at IS NULL
		ORDER BY created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, models.QuoteStatus(status), cutoff)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query quotes created before cutoff", err)
	}
	modelQuotes, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Quote])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan quote rows", err)
	}

	quotes := make([]domain.Quote, 0, len(modelQuotes))
	for _, m := range modelQuotes {
		quotes = append(quotes, mapping.ToDomainQuote(m))
	}
	return quotes, nil
}

// guardFailure distinguishes a missing quote from a status-guard miss
// after an UPDATE touched zero rows.
func (r *PgxQuoteRepository) guardFailure(ctx context.Context, tx pgx.Tx, quoteID string) error {
	var status models.QuoteStatus
	err := tx.QueryRow(ctx, `SELECT status FROM quotes WHERE quote_id = $1 AND deleted_at IS NULL;`, quoteID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return apperrors.NewAppError(500, "failed to re-check quote "+quoteID, err)
	}
	return apperrors.ErrConflict
}

func (r *PgxQuoteRepository) loadQuoteLines(ctx context.Context, quote *domain.Quote) error {
	itemRows, err := r.Pool.Query(ctx, `
		SELECT item_id, quote_id, product_id, quantity, unit_price, line_total
		FROM quote_items
		WHERE quote_id = $1
		ORDER BY item_id;
	`, quote.QuoteID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to query items for quote "+quote.QuoteID, err)
	}
	modelItems, err := pgx.CollectRows(itemRows, pgx.RowToStructByName[models.QuoteItem])
	if err != nil {
		return apperrors.NewAppError(500, "failed to scan items for quote "+quote.QuoteID, err)
	}

	serviceRows, err := r.Pool.Query(ctx, `
		SELECT line_id, quote_id, service_id, quantity, unit_price, line_total
		FROM quote_services
		WHERE quote_id = $1
		ORDER BY line_id;
	`, quote.QuoteID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to query services for quote "+quote.QuoteID, err)
	}
	modelServices, err := pgx.CollectRows(serviceRows, pgx.RowToStructByName[models.QuoteServiceLine])
	if err != nil {
		return apperrors.NewAppError(500, "failed to scan services for quote "+quote.QuoteID, err)
	}

	logRows, err := r.Pool.Query(ctx, `
		SELECT change_id, quote_id, from_status, to_status, changed_by, notes, changed_at
		FROM quote_status_log
		WHERE quote_id = $1
		ORDER BY changed_at ASC, change_id ASC;
	`, quote.QuoteID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to query status log for quote "+quote.QuoteID, err)
	}
	modelChanges, err := pgx.CollectRows(logRows, pgx.RowToStructByName[models.QuoteStatusChange])
	if err != nil {
		return apperrors.NewAppError(500, "failed to scan status log for quote "+quote.QuoteID, err)
	}

	quote.Items = make([]domain.QuoteItem, 0, len(modelItems))
	for _, m := range modelItems {
		quote.Items = append(quote.Items, mapping.ToDomainQuoteItem(m))
	}
	quote.Services = make([]domain.QuoteServiceLine, 0, len(modelServices))
	for _, m := range modelServices {
		quote.Services = append(quote.Services, mapping.ToDomainQuoteServiceLine(m))
	}
	quote.StatusLog = make([]domain.QuoteStatusChange, 0, len(modelChanges))
	for _, m := range modelChanges {
		quote.StatusLog = append(quote.StatusLog, mapping.ToDomainQuoteStatusChange(m))
	}
	return nil
}

func insertQuoteLines(ctx context.Context, tx pgx.Tx, items []domain.QuoteItem, services []domain.QuoteServiceLine) error {
	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO quote_items (item_id, quote_id, product_id, quantity, unit_price, line_total)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, item := range items {
		m := mapping.ToModelQuoteItem(item)
		batch.Queue(itemQuery, m.ItemID, m.QuoteID, m.ProductID, m.Quantity, m.UnitPrice, m.LineTotal)
	}
	serviceQuery := `
		INSERT INTO quote_services (line_id, quote_id, service_id, quantity, unit_price, line_total)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, line := range services {
		m := mapping.ToModelQuoteServiceLine(line)
		batch.Queue(serviceQuery, m.LineID, m.QuoteID, m.ServiceID, m.Quantity, m.UnitPrice, m.LineTotal)
	}
	if batch.Len() == 0 {
		return nil
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert quote lines", err)
	}
	return nil
}

func insertStatusChange(ctx context.Context, tx pgx.Tx, change domain.QuoteStatusChange) error {
	m := mapping.ToModelQuoteStatusChange(change)
	query := `
		INSERT INTO quote_status_log (change_id, quote_id, from_status, to_status, changed_by, notes, changed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	if _, err := tx.Exec(ctx, query, m.ChangeID, m.QuoteID, m.FromStatus, m.ToStatus, m.ChangedBy, m.Notes, m.ChangedAt); err != nil {
		return apperrors.NewAppError(500, "failed to insert status log row for quote "+m.QuoteID, err)
	}
	return nil
}
