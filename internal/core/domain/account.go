package domain

// AccountClass partitions the chart of accounts into the five fundamental
// accounting classes.
type AccountClass string

const (
	Asset     AccountClass = "ASSET"
	Liability AccountClass = "LIABILITY"
	Equity    AccountClass = "EQUITY"
	Income    AccountClass = "INCOME"
	Expense   AccountClass = "EXPENSE"
)

// AccountClasses lists every class in presentation order.
var AccountClasses = []AccountClass{Asset, Liability, Equity, Income, Expense}

// Valid reports whether c is one of the five known classes.
func (c AccountClass) Valid() bool {
	switch c {
	case Asset, Liability, Equity, Income, Expense:
		return true
	}
	return false
}

// CreditNormal reports whether the class conventionally carries a credit
// balance. Such accounts accumulate negative signed balances in storage and
// are presented sign-flipped on reports.
func (c AccountClass) CreditNormal() bool {
	switch c {
	case Liability, Equity, Income:
		return true
	}
	return false
}

// Account is one line of a company's chart of accounts. Balance is a plain
// signed amount: a debit increases it and a credit decreases it for every
// class. Normal-side presentation is the reporting layer's concern.
type Account struct {
	Code    string       `json:"code"`
	Name    string       `json:"name"`
	Class   AccountClass `json:"class"`
	Balance Money        `json:"balance"`
}
