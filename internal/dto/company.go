package dto

import "github.com/businessfin/bfp_backend/internal/core/domain"

// CompanyResponse defines the registry-level data returned for a company.
type CompanyResponse struct {
	CompanyID        string `json:"companyID"`
	Name             string `json:"name"`
	TransactionCount int    `json:"transactionCount"`
}

// RenameCompanyRequest defines the data needed to rename a company.
type RenameCompanyRequest struct {
	Name string `json:"name" binding:"required"`
}

// ListCompaniesResponse wraps the list of companies.
type ListCompaniesResponse struct {
	Companies []CompanyResponse `json:"companies"`
}

// ToCompanyResponse converts a domain.CompanySummary to a DTO.
func ToCompanyResponse(c *domain.CompanySummary) CompanyResponse {
	return CompanyResponse{
		CompanyID:        c.CompanyID,
		Name:             c.Name,
		TransactionCount: c.TransactionCount,
	}
}

// ToListCompaniesResponse converts a slice of company summaries.
func ToListCompaniesResponse(companies []domain.CompanySummary) ListCompaniesResponse {
	resp := ListCompaniesResponse{Companies: make([]CompanyResponse, len(companies))}
	for i := range companies {
		resp.Companies[i] = ToCompanyResponse(&companies[i])
	}
	return resp
}
