package domain

// chartEntry is one line of the fixed standard chart definition.
type chartEntry struct {
	code  string
	name  string
	class AccountClass
}

// standardChart is the fixed catalog every company posts against. Codes are
// grouped by class: 1xxx assets, 2xxx liabilities, 3xxx equity, 4xxx income,
// 5xxx expenses.
var standardChart = []chartEntry{
	{"1000", "Cash", Asset},
	{"1100", "Accounts Receivable", Asset},
	{"1200", "Inventory", Asset},
	{"1500", "Equipment", Asset},
	{"1600", "Vehicles", Asset},

	{"2000", "Accounts Payable", Liability},
	{"2100", "VAT Payable", Liability},
	{"2500", "Bank Loan", Liability},
	{"2600", "Credit Card", Liability},

	{"3000", "Owner's Capital", Equity},
	{"3900", "Retained Earnings", Equity},

	{"4000", "Product Sales", Income},
	{"4100", "Service Revenue", Income},
	{"4200", "Consulting Income", Income},

	{"5000", "Cost of Goods Sold", Expense},
	{"5100", "Salary Expense", Expense},
	{"5200", "Rent Expense", Expense},
	{"5300", "Utilities Expense", Expense},
	{"5400", "Marketing Expense", Expense},
	{"5500", "Office Supplies", Expense},
	{"5600", "Travel Expense", Expense},
	{"5700", "Professional Fees", Expense},
}

// StandardChart returns the standard chart of accounts with zero balances,
// in chart-definition order. Deterministic and side-effect free; used both
// at company creation and at company reset.
func StandardChart() []Account {
	accounts := make([]Account, len(standardChart))
	for i, e := range standardChart {
		accounts[i] = Account{
			Code:    e.code,
			Name:    e.name,
			Class:   e.class,
			Balance: ZeroMoney(),
		}
	}
	return accounts
}
