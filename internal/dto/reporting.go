package dto

import "github.com/businessfin/bfp_backend/internal/core/domain"

// ReportLineResponse represents one account line in a financial report.
type ReportLineResponse struct {
	AccountCode string       `json:"accountCode"`
	Name        string       `json:"name"`
	Amount      domain.Money `json:"amount"`
}

// BalanceSheetResponse represents the balance sheet report response.
// Summary.TotalEquity already includes NetIncome as undistributed current
// period earnings.
type BalanceSheetResponse struct {
	Company     string               `json:"company"`
	Assets      []ReportLineResponse `json:"assets"`
	Liabilities []ReportLineResponse `json:"liabilities"`
	Equity      []ReportLineResponse `json:"equity"`
	Summary     struct {
		TotalAssets      domain.Money `json:"totalAssets"`
		TotalLiabilities domain.Money `json:"totalLiabilities"`
		TotalEquity      domain.Money `json:"totalEquity"`
		NetIncome        domain.Money `json:"netIncome"`
	} `json:"summary"`
	Check bool `json:"check"`
}

// IncomeStatementResponse represents the income statement report response.
type IncomeStatementResponse struct {
	Company  string               `json:"company"`
	Revenue  []ReportLineResponse `json:"revenue"`
	Expenses []ReportLineResponse `json:"expenses"`
	Summary  struct {
		TotalRevenue  domain.Money `json:"totalRevenue"`
		TotalExpenses domain.Money `json:"totalExpenses"`
		NetIncome     domain.Money `json:"netIncome"`
	} `json:"summary"`
}

func toReportLineResponses(lines []domain.ReportLine) []ReportLineResponse {
	out := make([]ReportLineResponse, len(lines))
	for i, l := range lines {
		out[i] = ReportLineResponse{
			AccountCode: l.AccountCode,
			Name:        l.AccountName,
			Amount:      l.Amount,
		}
	}
	return out
}

// ToBalanceSheetResponse converts a domain balance sheet report to a DTO.
func ToBalanceSheetResponse(report *domain.BalanceSheetReport, company string) BalanceSheetResponse {
	resp := BalanceSheetResponse{
		Company:     company,
		Assets:      toReportLineResponses(report.Assets),
		Liabilities: toReportLineResponses(report.Liabilities),
		Equity:      toReportLineResponses(report.Equity),
		Check:       report.Check,
	}
	resp.Summary.TotalAssets = report.TotalAssets
	resp.Summary.TotalLiabilities = report.TotalLiabilities
	resp.Summary.TotalEquity = report.TotalEquity
	resp.Summary.NetIncome = report.NetIncome
	return resp
}

// ToIncomeStatementResponse converts a domain income statement to a DTO.
func ToIncomeStatementResponse(report *domain.IncomeStatementReport, company string) IncomeStatementResponse {
	resp := IncomeStatementResponse{
		Company:  company,
		Revenue:  toReportLineResponses(report.Revenue),
		Expenses: toReportLineResponses(report.Expenses),
	}
	resp.Summary.TotalRevenue = report.TotalRevenue
	resp.Summary.TotalExpenses = report.TotalExpenses
	resp.Summary.NetIncome = report.NetIncome
	return resp
}
