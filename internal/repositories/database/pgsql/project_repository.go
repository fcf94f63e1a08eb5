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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProjectRepository struct {
	BaseRepository
}

// newPgxProjectRepository creates a new repository for project data.
func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepositoryWithTx {
	return &PgxProjectRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxProjectRepository implements portsrepo.ProjectRepositoryWithTx
var _ portsrepo.ProjectRepositoryWithTx = (*PgxProjectRepository)(nil)

const projectColumns = `project_id, quote_id, name, total_revenue,
	created_at, created_by, last_updated_at, last_updated_by, version`

// CreateFromQuote inserts the project and stamps the link onto the quote
// in one transaction. The quote must still be in expectedStatus and
// unlinked; the unique constraint on quote_id backs up the guard.
func (r *PgxProjectRepository) CreateFromQuote(ctx context.Context, project domain.Project, expectedStatus domain.QuoteStatus) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelProject(project)
	insertQuery := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.ProjectID,
		m.QuoteID,
		m.Name,
		m.TotalRevenue,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.Version,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation on quote_id
			return apperrors.ErrConflict
		}
		return apperrors.NewAppError(500, "failed to insert project "+m.ProjectID, err)
	}

	linkQuery := `
		UPDATE quotes
		SET project_id = $1, last_updated_at = $2, last_updated_by = $3, version = version + 1
		WHERE quote_id = $4 AND status = $5 AND project_id IS NULL AND deleted_at IS NULL;
	`
	tag, err := tx.Exec(ctx, linkQuery,
		m.ProjectID,
		m.CreatedAt,
		m.CreatedBy,
		m.QuoteID,
		models.QuoteStatus(expectedStatus),
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to link project to quote "+m.QuoteID, err)
	}
	if tag.RowsAffected() == 0 {
		// Rolled back: the quote moved, vanished or got linked concurrently.
		var exists bool
		err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM quotes WHERE quote_id = $1 AND deleted_at IS NULL);`, m.QuoteID).Scan(&exists)
		if err != nil {
			return apperrors.NewAppError(500, "failed to re-check quote "+m.QuoteID, err)
		}
		if !exists {
			return apperrors.ErrNotFound
		}
		return apperrors.ErrConflict
	}

	return r.Commit(ctx, tx)
}

// FindProjectByID retrieves a project by its identifier.
func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	return r.findProject(ctx, `project_id`, projectID)
}

// FindProjectByQuoteID retrieves the project converted from a quote.
func (r *PgxProjectRepository) FindProjectByQuoteID(ctx context.Context, quoteID string) (*domain.Project, error) {
	return r.findProject(ctx, `quote_id`, quoteID)
}

func (r *PgxProjectRepository) findProject(ctx context.Context, column, value string) (*domain.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE ` + column + ` = $1;
	`
	rows, err := r.Pool.Query(ctx, query, value)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query project by "+column, err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Project])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan project by "+column, err)
	}
	domainProject := mapping.ToDomainProject(m)
	return &domainProject, nil
}
