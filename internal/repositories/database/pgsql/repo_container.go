package pgsql

import (
	portsrepo "github.com/ateliersoft/backoffice_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		QuoteRepo:    newPgxQuoteRepository(dbPool),
		CashFlowRepo: newPgxCashFlowRepository(dbPool),
		ProjectRepo:  newPgxProjectRepository(dbPool),
		PurchaseRepo: newPgxPurchaseRepository(dbPool),
	}
}
