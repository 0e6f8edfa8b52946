package dto

import "github.com/businessfin/bfp_backend/internal/core/domain"

// AccountResponse defines the data returned for one chart account.
type AccountResponse struct {
	Code    string              `json:"code"`
	Name    string              `json:"name"`
	Class   domain.AccountClass `json:"class"`
	Balance domain.Money        `json:"balance"`
}

// ListAccountsResponse wraps a company's chart of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to an AccountResponse DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		Code:    acc.Code,
		Name:    acc.Name,
		Class:   acc.Class,
		Balance: acc.Balance,
	}
}

// ToListAccountsResponse converts a chart slice to the list DTO.
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	resp := ListAccountsResponse{Accounts: make([]AccountResponse, len(accounts))}
	for i := range accounts {
		resp.Accounts[i] = ToAccountResponse(&accounts[i])
	}
	return resp
}
