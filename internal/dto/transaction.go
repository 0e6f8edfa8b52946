package dto

import (
	"github.com/shopspring/decimal"

	"github.com/businessfin/bfp_backend/internal/core/domain"
)

// DateLayout is the calendar-date format accepted and produced by the API.
const DateLayout = "2006-01-02"

// TransactionEntryRequest is one raw entry line as supplied by the caller.
// Exactly one of debit/credit must be present and strictly positive; the
// posting service rejects the whole transaction otherwise.
type TransactionEntryRequest struct {
	AccountCode string           `json:"accountCode" binding:"required"`
	Debit       *decimal.Decimal `json:"debit,omitempty" binding:"omitempty,gt=0"`
	Credit      *decimal.Decimal `json:"credit,omitempty" binding:"omitempty,gt=0"`
}

// PostTransactionRequest defines the data needed to post one transaction.
// VATRate is an informational decimal fraction (e.g. 0.2); it is stored on
// the transaction but never applied to any balance.
type PostTransactionRequest struct {
	Date        string                    `json:"date" binding:"required"`
	Description string                    `json:"description" binding:"required"`
	Entries     []TransactionEntryRequest `json:"entries" binding:"required"`
	VATRate     *decimal.Decimal          `json:"vatRate,omitempty" binding:"omitempty,gte=0,lt=1"`
}

// EntryResponse renders one posted entry with the amount on its side.
type EntryResponse struct {
	AccountCode string        `json:"accountCode"`
	Debit       *domain.Money `json:"debit,omitempty"`
	Credit      *domain.Money `json:"credit,omitempty"`
}

// TransactionResponse defines the data returned for a posted transaction.
type TransactionResponse struct {
	ID          int64           `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	VATRate     decimal.Decimal `json:"vatRate"`
	Entries     []EntryResponse `json:"entries"`
}

// TransactionRowResponse is one flattened history row: a transaction entry
// joined with its transaction header and account name.
type TransactionRowResponse struct {
	TransactionID int64         `json:"transactionID"`
	Date          string        `json:"date"`
	Description   string        `json:"description"`
	AccountCode   string        `json:"accountCode"`
	AccountName   string        `json:"accountName"`
	Debit         *domain.Money `json:"debit,omitempty"`
	Credit        *domain.Money `json:"credit,omitempty"`
}

// ToEntryResponse converts a domain.Entry to an EntryResponse DTO.
func ToEntryResponse(e domain.Entry) EntryResponse {
	resp := EntryResponse{AccountCode: e.AccountCode}
	amount := e.Amount
	if e.Side == domain.Debit {
		resp.Debit = &amount
	} else {
		resp.Credit = &amount
	}
	return resp
}

// ToTransactionResponse converts a domain.Transaction to a DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	entries := make([]EntryResponse, len(t.Entries))
	for i, e := range t.Entries {
		entries[i] = ToEntryResponse(e)
	}
	return TransactionResponse{
		ID:          t.ID,
		Date:        t.Date.Format(DateLayout),
		Description: t.Description,
		VATRate:     t.VATRate,
		Entries:     entries,
	}
}

// ToTransactionResponses converts a slice of transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
