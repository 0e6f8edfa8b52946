package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntrySide indicates whether an entry debits or credits its account.
type EntrySide string

const (
	Debit  EntrySide = "DEBIT"
	Credit EntrySide = "CREDIT"
)

// Entry is one immutable line of a posted transaction. Amount is always
// strictly positive; the side carries the direction.
type Entry struct {
	AccountCode string    `json:"accountCode"`
	Side        EntrySide `json:"side"`
	Amount      Money     `json:"amount"`
}

// SignedAmount is the effect of the entry on the account's signed balance:
// positive for a debit, negative for a credit.
func (e Entry) SignedAmount() Money {
	if e.Side == Credit {
		return e.Amount.Neg()
	}
	return e.Amount
}

// Transaction is one balanced, immutable event in a company's append-only
// log. IDs are sequential and 1-based per company. VATRate is stored as
// supplied and never applied to any balance.
type Transaction struct {
	ID          int64           `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Entries     []Entry         `json:"entries"`
	VATRate     decimal.Decimal `json:"vatRate"`
}

// TotalDebits sums the debit side of the transaction.
func (t Transaction) TotalDebits() Money {
	total := ZeroMoney()
	for _, e := range t.Entries {
		if e.Side == Debit {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// TotalCredits sums the credit side of the transaction.
func (t Transaction) TotalCredits() Money {
	total := ZeroMoney()
	for _, e := range t.Entries {
		if e.Side == Credit {
			total = total.Add(e.Amount)
		}
	}
	return total
}
