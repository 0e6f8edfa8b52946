package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/businessfin/bfp_backend/internal/core/domain"
	"github.com/businessfin/bfp_backend/internal/dto"
)

// MockLedgerSvc is a testify mock of the ledger service facade.
type MockLedgerSvc struct {
	mock.Mock
}

func (m *MockLedgerSvc) GetChart(ctx context.Context, companyID string) ([]domain.Account, error) {
	args := m.Called(ctx, companyID)
	if accounts, ok := args.Get(0).([]domain.Account); ok {
		return accounts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLedgerSvc) PostTransaction(ctx context.Context, companyID string, req dto.PostTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, companyID, req)
	if txn, ok := args.Get(0).(*domain.Transaction); ok {
		return txn, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLedgerSvc) GetTransactionHistory(ctx context.Context, companyID string) ([]dto.TransactionRowResponse, error) {
	args := m.Called(ctx, companyID)
	if rows, ok := args.Get(0).([]dto.TransactionRowResponse); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockReportingSvc is a testify mock of the reporting service facade.
type MockReportingSvc struct {
	mock.Mock
}

func (m *MockReportingSvc) AccountClassTotal(ctx context.Context, companyID string, class domain.AccountClass) (domain.Money, error) {
	args := m.Called(ctx, companyID, class)
	return args.Get(0).(domain.Money), args.Error(1)
}

func (m *MockReportingSvc) NetIncome(ctx context.Context, companyID string) (domain.Money, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(domain.Money), args.Error(1)
}

func (m *MockReportingSvc) BalanceSheet(ctx context.Context, companyID string) (*domain.BalanceSheetReport, error) {
	args := m.Called(ctx, companyID)
	if report, ok := args.Get(0).(*domain.BalanceSheetReport); ok {
		return report, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReportingSvc) IncomeStatement(ctx context.Context, companyID string) (*domain.IncomeStatementReport, error) {
	args := m.Called(ctx, companyID)
	if report, ok := args.Get(0).(*domain.IncomeStatementReport); ok {
		return report, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReportingSvc) ConsolidatedBalanceSheet(ctx context.Context) (*domain.BalanceSheetReport, error) {
	args := m.Called(ctx)
	if report, ok := args.Get(0).(*domain.BalanceSheetReport); ok {
		return report, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReportingSvc) ConsolidatedIncomeStatement(ctx context.Context) (*domain.IncomeStatementReport, error) {
	args := m.Called(ctx)
	if report, ok := args.Get(0).(*domain.IncomeStatementReport); ok {
		return report, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockCompanySvc is a testify mock of the company service facade.
type MockCompanySvc struct {
	mock.Mock
}

func (m *MockCompanySvc) ListCompanies(ctx context.Context) ([]domain.CompanySummary, error) {
	args := m.Called(ctx)
	if companies, ok := args.Get(0).([]domain.CompanySummary); ok {
		return companies, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCompanySvc) GetCompany(ctx context.Context, companyID string) (*domain.CompanySummary, error) {
	args := m.Called(ctx, companyID)
	if summary, ok := args.Get(0).(*domain.CompanySummary); ok {
		return summary, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCompanySvc) RenameCompany(ctx context.Context, companyID string, newName string) error {
	args := m.Called(ctx, companyID, newName)
	return args.Error(0)
}

func (m *MockCompanySvc) ResetCompany(ctx context.Context, companyID string) error {
	args := m.Called(ctx, companyID)
	return args.Error(0)
}

func (m *MockCompanySvc) ExportSnapshot(ctx context.Context) (*dto.SnapshotExport, error) {
	args := m.Called(ctx)
	if export, ok := args.Get(0).(*dto.SnapshotExport); ok {
		return export, args.Error(1)
	}
	return nil, args.Error(1)
}
