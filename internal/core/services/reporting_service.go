package services

import (
	"context"
	"log/slog"

	"github.com/businessfin/bfp_backend/internal/core/domain"
	"github.com/businessfin/bfp_backend/internal/core/ports"
	portssvc "github.com/businessfin/bfp_backend/internal/core/ports/services"
)

// reportingService derives financial reports from ledger snapshots. Every
// method reads one consistent snapshot and computes from it; nothing is ever
// written back, so repeated report calls always observe identical state.
type reportingService struct {
	BaseService
	repo ports.LedgerRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(repo ports.LedgerRepository) portssvc.ReportingSvcFacade {
	return &reportingService{repo: repo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// AccountClassTotal sums the balances of every account in the class, in
// normal-balance presentation sign.
func (s *reportingService) AccountClassTotal(ctx context.Context, companyID string, class domain.AccountClass) (domain.Money, error) {
	ledger, err := s.repo.SnapshotLedger(ctx, companyID)
	if err != nil {
		return domain.ZeroMoney(), err
	}
	return ledger.NormalTotal(class), nil
}

// NetIncome is revenue minus expenses for the company.
func (s *reportingService) NetIncome(ctx context.Context, companyID string) (domain.Money, error) {
	ledger, err := s.repo.SnapshotLedger(ctx, companyID)
	if err != nil {
		return domain.ZeroMoney(), err
	}
	return ledger.NetIncome(), nil
}

// BalanceSheet derives the company's financial position. Equity includes
// net income computed on the fly; no account balance is touched, so the
// call is idempotent.
func (s *reportingService) BalanceSheet(ctx context.Context, companyID string) (*domain.BalanceSheetReport, error) {
	ledger, err := s.repo.SnapshotLedger(ctx, companyID)
	if err != nil {
		return nil, err
	}
	report := balanceSheetOf(ledger)
	s.LogDebug(ctx, "Balance sheet generated",
		slog.String("company_id", companyID),
		slog.Bool("check", report.Check))
	return report, nil
}

// IncomeStatement derives the company's earnings view.
func (s *reportingService) IncomeStatement(ctx context.Context, companyID string) (*domain.IncomeStatementReport, error) {
	ledger, err := s.repo.SnapshotLedger(ctx, companyID)
	if err != nil {
		return nil, err
	}
	report := incomeStatementOf(ledger)
	s.LogDebug(ctx, "Income statement generated",
		slog.String("company_id", companyID),
		slog.String("net_income", report.NetIncome.String()))
	return report, nil
}

// ConsolidatedBalanceSheet sums every company's balance sheet field-wise.
// Companies are independent; no intercompany eliminations are applied.
func (s *reportingService) ConsolidatedBalanceSheet(ctx context.Context) (*domain.BalanceSheetReport, error) {
	ids, err := s.repo.ListCompanyIDs(ctx)
	if err != nil {
		return nil, err
	}

	combined := &domain.BalanceSheetReport{
		TotalAssets:      domain.ZeroMoney(),
		TotalLiabilities: domain.ZeroMoney(),
		TotalEquity:      domain.ZeroMoney(),
		NetIncome:        domain.ZeroMoney(),
	}
	assets := newLineAggregator()
	liabilities := newLineAggregator()
	equity := newLineAggregator()
	for _, id := range ids {
		ledger, err := s.repo.SnapshotLedger(ctx, id)
		if err != nil {
			return nil, err
		}
		report := balanceSheetOf(ledger)
		assets.add(report.Assets)
		liabilities.add(report.Liabilities)
		equity.add(report.Equity)
		combined.TotalAssets = combined.TotalAssets.Add(report.TotalAssets)
		combined.TotalLiabilities = combined.TotalLiabilities.Add(report.TotalLiabilities)
		combined.TotalEquity = combined.TotalEquity.Add(report.TotalEquity)
		combined.NetIncome = combined.NetIncome.Add(report.NetIncome)
	}
	combined.Assets = assets.lines()
	combined.Liabilities = liabilities.lines()
	combined.Equity = equity.lines()
	combined.Check = combined.TotalAssets.Equal(combined.TotalLiabilities.Add(combined.TotalEquity))
	return combined, nil
}

// ConsolidatedIncomeStatement sums every company's income statement
// field-wise.
func (s *reportingService) ConsolidatedIncomeStatement(ctx context.Context) (*domain.IncomeStatementReport, error) {
	ids, err := s.repo.ListCompanyIDs(ctx)
	if err != nil {
		return nil, err
	}

	combined := &domain.IncomeStatementReport{
		TotalRevenue:  domain.ZeroMoney(),
		TotalExpenses: domain.ZeroMoney(),
		NetIncome:     domain.ZeroMoney(),
	}
	revenue := newLineAggregator()
	expenses := newLineAggregator()
	for _, id := range ids {
		ledger, err := s.repo.SnapshotLedger(ctx, id)
		if err != nil {
			return nil, err
		}
		report := incomeStatementOf(ledger)
		revenue.add(report.Revenue)
		expenses.add(report.Expenses)
		combined.TotalRevenue = combined.TotalRevenue.Add(report.TotalRevenue)
		combined.TotalExpenses = combined.TotalExpenses.Add(report.TotalExpenses)
		combined.NetIncome = combined.NetIncome.Add(report.NetIncome)
	}
	combined.Revenue = revenue.lines()
	combined.Expenses = expenses.lines()
	return combined, nil
}

// classLines returns the nonzero accounts of a class as report lines, in
// chart-definition order. Amounts carry normal-balance presentation sign, so
// a liability owed or revenue earned prints positive.
func classLines(ledger *domain.Ledger, class domain.AccountClass) []domain.ReportLine {
	lines := make([]domain.ReportLine, 0)
	for _, acc := range ledger.AccountsInOrder() {
		if acc.Class != class || acc.Balance.IsZero() {
			continue
		}
		amount := acc.Balance
		if class.CreditNormal() {
			amount = amount.Neg()
		}
		lines = append(lines, domain.ReportLine{
			AccountCode: acc.Code,
			AccountName: acc.Name,
			Amount:      amount,
		})
	}
	return lines
}

// balanceSheetOf computes a balance sheet from one ledger snapshot.
func balanceSheetOf(ledger *domain.Ledger) *domain.BalanceSheetReport {
	report := &domain.BalanceSheetReport{
		Assets:           classLines(ledger, domain.Asset),
		Liabilities:      classLines(ledger, domain.Liability),
		Equity:           classLines(ledger, domain.Equity),
		TotalAssets:      ledger.NormalTotal(domain.Asset),
		TotalLiabilities: ledger.NormalTotal(domain.Liability),
		NetIncome:        ledger.NetIncome(),
	}
	// Undistributed current period earnings sit in equity on the report
	// only; they are never posted back to an equity account.
	report.TotalEquity = ledger.NormalTotal(domain.Equity).Add(report.NetIncome)
	report.Check = report.TotalAssets.Equal(report.TotalLiabilities.Add(report.TotalEquity))
	return report
}

// incomeStatementOf computes an income statement from one ledger snapshot.
func incomeStatementOf(ledger *domain.Ledger) *domain.IncomeStatementReport {
	report := &domain.IncomeStatementReport{
		Revenue:       classLines(ledger, domain.Income),
		Expenses:      classLines(ledger, domain.Expense),
		TotalRevenue:  ledger.NormalTotal(domain.Income),
		TotalExpenses: ledger.NormalTotal(domain.Expense),
	}
	report.NetIncome = report.TotalRevenue.Sub(report.TotalExpenses)
	return report
}

// lineAggregator merges report lines from several companies by account
// code, preserving first-seen (chart) order.
type lineAggregator struct {
	order   []string
	amounts map[string]domain.ReportLine
}

func newLineAggregator() *lineAggregator {
	return &lineAggregator{amounts: make(map[string]domain.ReportLine)}
}

func (a *lineAggregator) add(lines []domain.ReportLine) {
	for _, line := range lines {
		existing, ok := a.amounts[line.AccountCode]
		if !ok {
			a.order = append(a.order, line.AccountCode)
			a.amounts[line.AccountCode] = line
			continue
		}
		existing.Amount = existing.Amount.Add(line.Amount)
		a.amounts[line.AccountCode] = existing
	}
}

func (a *lineAggregator) lines() []domain.ReportLine {
	out := make([]domain.ReportLine, 0, len(a.order))
	for _, code := range a.order {
		line := a.amounts[code]
		if line.Amount.IsZero() {
			continue
		}
		out = append(out, line)
	}
	return out
}
