package dto

import (
	"time"

	"github.com/ateliersoft/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConvertQuoteRequest defines the payload for converting a PAID quote
// into a project.
type ConvertQuoteRequest struct {
	Name string `json:"name" binding:"required"`
}

// ProjectResponse defines the data returned for a project.
type ProjectResponse struct {
	ProjectID    string          `json:"projectID"`
	QuoteID      string          `json:"quoteID"`
	Name         string          `json:"name"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	CreatedAt    time.Time       `json:"createdAt"`
	CreatedBy    string          `json:"createdBy"`
}

// ToProjectResponse converts a domain.Project to ProjectResponse DTO.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:    p.ProjectID,
		QuoteID:      p.QuoteID,
		Name:         p.Name,
		TotalRevenue: p.TotalRevenue,
		CreatedAt:    p.CreatedAt,
		CreatedBy:    p.CreatedBy,
	}
}
