package domain

// Ledger is the per-company aggregate: the chart of accounts with current
// balances plus the append-only transaction log. Ledgers are owned by the
// company registry; everything outside it only ever sees copies.
type Ledger struct {
	CompanyID    string
	CompanyName  string
	Accounts     map[string]*Account
	ChartCodes   []string // account codes in chart-definition order
	Transactions []Transaction
}

// NewLedger creates a ledger seeded with the standard chart and an empty log.
func NewLedger(companyID, companyName string) *Ledger {
	l := &Ledger{
		CompanyID:   companyID,
		CompanyName: companyName,
	}
	l.SeedChart()
	return l
}

// SeedChart replaces the ledger's accounts with a fresh standard chart, all
// balances zero. The transaction log is untouched; callers clearing the log
// do so separately.
func (l *Ledger) SeedChart() {
	chart := StandardChart()
	l.Accounts = make(map[string]*Account, len(chart))
	l.ChartCodes = make([]string, len(chart))
	for i := range chart {
		acc := chart[i]
		l.Accounts[acc.Code] = &acc
		l.ChartCodes[i] = acc.Code
	}
}

// AccountsInOrder returns a copy of every account in chart-definition order.
func (l *Ledger) AccountsInOrder() []Account {
	accounts := make([]Account, 0, len(l.ChartCodes))
	for _, code := range l.ChartCodes {
		if acc, ok := l.Accounts[code]; ok {
			accounts = append(accounts, *acc)
		}
	}
	return accounts
}

// ClassTotal sums the signed balances of every account in the given class.
func (l *Ledger) ClassTotal(class AccountClass) Money {
	total := ZeroMoney()
	for _, code := range l.ChartCodes {
		acc, ok := l.Accounts[code]
		if ok && acc.Class == class {
			total = total.Add(acc.Balance)
		}
	}
	return total
}

// NormalTotal is the class total under normal-balance presentation: asset
// and expense classes read debit-positive, liability, equity and income read
// credit-positive. This is the figure reports print.
func (l *Ledger) NormalTotal(class AccountClass) Money {
	total := l.ClassTotal(class)
	if class.CreditNormal() {
		return total.Neg()
	}
	return total
}

// NetIncome is revenue minus expenses over the ledger's lifetime, in
// presentation sign. It is derived on demand and never written back into an
// account balance.
func (l *Ledger) NetIncome() Money {
	return l.NormalTotal(Income).Sub(l.NormalTotal(Expense))
}

// Clone returns a deep copy of the ledger, safe to hand to readers while the
// original keeps changing.
func (l *Ledger) Clone() *Ledger {
	c := &Ledger{
		CompanyID:   l.CompanyID,
		CompanyName: l.CompanyName,
		Accounts:    make(map[string]*Account, len(l.Accounts)),
		ChartCodes:  append([]string(nil), l.ChartCodes...),
	}
	for code, acc := range l.Accounts {
		copied := *acc
		c.Accounts[code] = &copied
	}
	c.Transactions = make([]Transaction, len(l.Transactions))
	for i, txn := range l.Transactions {
		copied := txn
		copied.Entries = append([]Entry(nil), txn.Entries...)
		c.Transactions[i] = copied
	}
	return c
}

// CompanySummary is the registry-level view of one company.
type CompanySummary struct {
	CompanyID        string
	Name             string
	TransactionCount int
}
