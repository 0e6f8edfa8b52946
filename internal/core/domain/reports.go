package domain

// ReportLine pairs an account with its reported amount.
type ReportLine struct {
	AccountCode string
	AccountName string
	Amount      Money
}

// BalanceSheetReport is the derived financial position of one company, or of
// all companies summed field-wise. TotalEquity includes the current period's
// net income; that figure is computed on the fly and never persisted into an
// account balance, so generating the report cannot change the ledger.
type BalanceSheetReport struct {
	Assets      []ReportLine
	Liabilities []ReportLine
	Equity      []ReportLine

	TotalAssets      Money
	TotalLiabilities Money
	TotalEquity      Money
	NetIncome        Money

	// Check confirms the accounting equation on the reported totals:
	// assets == liabilities + equity, by exact decimal comparison.
	Check bool
}

// IncomeStatementReport is the derived earnings view of one company, or of
// all companies summed field-wise. Lines carry only accounts with a nonzero
// balance, in chart-definition order.
type IncomeStatementReport struct {
	Revenue  []ReportLine
	Expenses []ReportLine

	TotalRevenue  Money
	TotalExpenses Money
	NetIncome     Money
}
