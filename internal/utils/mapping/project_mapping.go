package mapping

import (
	"github.com/ateliersoft/backoffice_app/internal/core/domain"
	"github.com/ateliersoft/backoffice_app/internal/models"
)

// ToModelProject converts a domain Project to its model
func ToModelProject(d domain.Project) models.Project {
	return models.Project{
		ProjectID:    d.ProjectID,
		QuoteID:      d.QuoteID,
		Name:         d.Name,
		TotalRevenue: d.TotalRevenue,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProject converts a model Project to its domain type
func ToDomainProject(m models.Project) domain.Project {
	return domain.Project{
		ProjectID:    m.ProjectID,
		QuoteID:      m.QuoteID,
		Name:         m.Name,
		TotalRevenue: m.TotalRevenue,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelProjectExpense converts a domain ProjectExpense to its model
func ToModelProjectExpense(d domain.ProjectExpense) models.ProjectExpense {
	return models.ProjectExpense{
		ExpenseID:    d.ExpenseID,
		ProjectID:    d.ProjectID,
		Description:  d.Description,
		Amount:       d.Amount,
		IncurredAt:   d.IncurredAt,
		PurchaseID:   d.PurchaseID,
		LaborEntryID: d.LaborEntryID,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToModelPurchase converts a domain Purchase to its model
func ToModelPurchase(d domain.Purchase) models.Purchase {
	return models.Purchase{
		PurchaseID:   d.PurchaseID,
		SupplierName: d.SupplierName,
		Description:  d.Description,
		Amount:       d.Amount,
		PurchaseDate: d.PurchaseDate,
		ProjectID:    d.ProjectID,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPurchase converts a model Purchase to its domain type
func ToDomainPurchase(m models.Purchase) domain.Purchase {
	return domain.Purchase{
		PurchaseID:   m.PurchaseID,
		SupplierName: m.SupplierName,
		Description:  m.Description,
		Amount:       m.Amount,
		PurchaseDate: m.PurchaseDate,
		ProjectID:    m.ProjectID,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelStockEntry converts a domain StockEntry to its model
func ToModelStockEntry(d domain.StockEntry) models.StockEntry {
	return models.StockEntry{
		StockEntryID: d.StockEntryID,
		PurchaseID:   d.PurchaseID,
		ProductID:    d.ProductID,
		Quantity:     d.Quantity,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToModelLaborEntry converts a domain LaborEntry to its model
func ToModelLaborEntry(d domain.LaborEntry) models.LaborEntry {
	return models.LaborEntry{
		LaborEntryID: d.LaborEntryID,
		EmployeeID:   d.EmployeeID,
		ProjectID:    d.ProjectID,
		Description:  d.Description,
		Amount:       d.Amount,
		WorkDate:     d.WorkDate,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLaborEntry converts a model LaborEntry to its domain type
func ToDomainLaborEntry(m models.LaborEntry) domain.LaborEntry {
	return domain.LaborEntry{
		LaborEntryID: m.LaborEntryID,
		EmployeeID:   m.EmployeeID,
		ProjectID:    m.ProjectID,
		Description:  m.Description,
		Amount:       m.Amount,
		WorkDate:     m.WorkDate,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
