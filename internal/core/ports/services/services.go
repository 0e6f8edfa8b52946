package services

import (
	"context"

	"github.com/businessfin/bfp_backend/internal/core/domain"
	"github.com/businessfin/bfp_backend/internal/dto"
)

// LedgerSvcFacade exposes the transaction-posting side of a company's books.
type LedgerSvcFacade interface {
	// GetChart returns the company's accounts with current balances, in
	// chart-definition order.
	GetChart(ctx context.Context, companyID string) ([]domain.Account, error)

	// PostTransaction validates and atomically applies one balanced
	// transaction against the company's ledger.
	PostTransaction(ctx context.Context, companyID string, req dto.PostTransactionRequest) (*domain.Transaction, error)

	// GetTransactionHistory returns the full log flattened to one row per
	// entry, oldest transaction first, entries in original order.
	GetTransactionHistory(ctx context.Context, companyID string) ([]dto.TransactionRowResponse, error)
}

// ReportingSvcFacade derives financial reports from current ledger state.
// All methods are read-only; generating a report never mutates a ledger.
type ReportingSvcFacade interface {
	AccountClassTotal(ctx context.Context, companyID string, class domain.AccountClass) (domain.Money, error)
	NetIncome(ctx context.Context, companyID string) (domain.Money, error)
	BalanceSheet(ctx context.Context, companyID string) (*domain.BalanceSheetReport, error)
	IncomeStatement(ctx context.Context, companyID string) (*domain.IncomeStatementReport, error)

	// Consolidated variants sum the per-company reports field-wise across
	// the whole registry. No intercompany eliminations are applied.
	ConsolidatedBalanceSheet(ctx context.Context) (*domain.BalanceSheetReport, error)
	ConsolidatedIncomeStatement(ctx context.Context) (*domain.IncomeStatementReport, error)
}

// CompanySvcFacade covers registry-level company management and export.
type CompanySvcFacade interface {
	ListCompanies(ctx context.Context) ([]domain.CompanySummary, error)
	GetCompany(ctx context.Context, companyID string) (*domain.CompanySummary, error)
	RenameCompany(ctx context.Context, companyID string, newName string) error
	ResetCompany(ctx context.Context, companyID string) error

	// ExportSnapshot returns the full state of every company: name, chart
	// with current balances and the complete transaction log, with every
	// amount represented as a decimal string.
	ExportSnapshot(ctx context.Context) (*dto.SnapshotExport, error)
}

// ServiceContainer holds instances of all the application services. Handlers
// receive this rather than individual constructor arguments.
type ServiceContainer struct {
	Ledger    LedgerSvcFacade
	Reporting ReportingSvcFacade
	Company   CompanySvcFacade
}
