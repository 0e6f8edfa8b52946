package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/businessfin/bfp_backend/internal/apperrors"
	"github.com/businessfin/bfp_backend/internal/core/domain"
	portssvc "github.com/businessfin/bfp_backend/internal/core/ports/services"
	"github.com/businessfin/bfp_backend/internal/core/services"
	"github.com/businessfin/bfp_backend/internal/dto"
	"github.com/businessfin/bfp_backend/internal/repositories/memory"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// newTestRegistry seeds the standard two-company registry used across the
// service suites.
func newTestRegistry(t interface{ Fatalf(string, ...interface{}) }) *memory.CompanyRegistry {
	registry, err := memory.NewCompanyRegistry([]memory.CompanySeed{
		{ID: "company_1", Name: "Tech Solutions Ltd"},
		{ID: "company_2", Name: "Consulting Partners Ltd"},
	})
	if err != nil {
		t.Fatalf("seed registry: %v", err)
	}
	return registry
}

// cashSaleRequest is a balanced three-entry posting: 1200 cash debit against
// 1000 sales revenue and 200 VAT payable credits.
func cashSaleRequest() dto.PostTransactionRequest {
	return dto.PostTransactionRequest{
		Date:        "2024-01-15",
		Description: "Cash sale",
		Entries: []dto.TransactionEntryRequest{
			{AccountCode: "1000", Debit: dec("1200.00")},
			{AccountCode: "4000", Credit: dec("1000.00")},
			{AccountCode: "2100", Credit: dec("200.00")},
		},
	}
}

type LedgerServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	registry *memory.CompanyRegistry
	svc      portssvc.LedgerSvcFacade
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.registry = newTestRegistry(s.T())
	s.svc = services.NewLedgerService(s.registry)
}

// assertUntouched verifies a failed posting left the company's books exactly
// as seeded.
func (s *LedgerServiceTestSuite) assertUntouched(companyID string) {
	ledger, err := s.registry.SnapshotLedger(s.ctx, companyID)
	s.Require().NoError(err)
	s.Empty(ledger.Transactions)
	for code, acc := range ledger.Accounts {
		s.True(acc.Balance.IsZero(), "account %s moved", code)
	}
}

func (s *LedgerServiceTestSuite) TestPostTransactionSuccess() {
	saved, err := s.svc.PostTransaction(s.ctx, "company_1", cashSaleRequest())
	s.Require().NoError(err)
	s.Equal(int64(1), saved.ID)
	s.Len(saved.Entries, 3)
	s.True(saved.TotalDebits().Equal(domain.MustMoney("1200.00")))
	s.True(saved.TotalCredits().Equal(domain.MustMoney("1200.00")))

	ledger, err := s.registry.SnapshotLedger(s.ctx, "company_1")
	s.Require().NoError(err)
	s.True(ledger.Accounts["1000"].Balance.Equal(domain.MustMoney("1200.00")))
	s.True(ledger.Accounts["4000"].Balance.Equal(domain.MustMoney("-1000.00")))
	s.True(ledger.Accounts["2100"].Balance.Equal(domain.MustMoney("-200.00")))
}

func (s *LedgerServiceTestSuite) TestPostTransactionKeepsEquation() {
	_, err := s.svc.PostTransaction(s.ctx, "company_1", cashSaleRequest())
	s.Require().NoError(err)

	ledger, err := s.registry.SnapshotLedger(s.ctx, "company_1")
	s.Require().NoError(err)
	// On signed balances the equation reads: assets + liabilities + equity
	// + income + expense == 0 whenever every posting balanced.
	sum := domain.ZeroMoney()
	for _, acc := range ledger.Accounts {
		sum = sum.Add(acc.Balance)
	}
	s.True(sum.IsZero())
}

func (s *LedgerServiceTestSuite) TestSequentialIDsPerCompany() {
	first, err := s.svc.PostTransaction(s.ctx, "company_1", cashSaleRequest())
	s.Require().NoError(err)
	second, err := s.svc.PostTransaction(s.ctx, "company_1", cashSaleRequest())
	s.Require().NoError(err)
	other, err := s.svc.PostTransaction(s.ctx, "company_2", cashSaleRequest())
	s.Require().NoError(err)

	s.Equal(int64(1), first.ID)
	s.Equal(int64(2), second.ID)
	s.Equal(int64(1), other.ID)
}

func (s *LedgerServiceTestSuite) TestUnbalancedTransactionRejected() {
	req := dto.PostTransactionRequest{
		Date:        "2024-01-15",
		Description: "Does not balance",
		Entries: []dto.TransactionEntryRequest{
			{AccountCode: "1000", Debit: dec("500.00")},
			{AccountCode: "4000", Credit: dec("400.00")},
		},
	}
	_, err := s.svc.PostTransaction(s.ctx, "company_1", req)
	s.Require().Error(err)

	var unbalanced *services.UnbalancedTransactionError
	s.Require().ErrorAs(err, &unbalanced)
	s.True(unbalanced.Debits.Equal(domain.MustMoney("500.00")))
	s.True(unbalanced.Credits.Equal(domain.MustMoney("400.00")))
	s.Contains(err.Error(), "100.00")

	s.assertUntouched("company_1")
}

func (s *LedgerServiceTestSuite) TestUnknownAccountRejected() {
	req := cashSaleRequest()
	req.Entries[1].AccountCode = "9999"
	_, err := s.svc.PostTransaction(s.ctx, "company_1", req)
	s.ErrorIs(err, services.ErrUnknownAccount)
	s.assertUntouched("company_1")
}

func (s *LedgerServiceTestSuite) TestEntryShapeRejections() {
	cases := []struct {
		name  string
		entry dto.TransactionEntryRequest
	}{
		{"both sides", dto.TransactionEntryRequest{AccountCode: "1000", Debit: dec("10.00"), Credit: dec("10.00")}},
		{"neither side", dto.TransactionEntryRequest{AccountCode: "1000"}},
		{"zero amount", dto.TransactionEntryRequest{AccountCode: "1000", Debit: dec("0")}},
		{"negative amount", dto.TransactionEntryRequest{AccountCode: "1000", Credit: dec("-5.00")}},
		{"sub-cent amount", dto.TransactionEntryRequest{AccountCode: "1000", Debit: dec("10.001")}},
	}
	for _, tc := range cases {
		req := dto.PostTransactionRequest{
			Date:        "2024-01-15",
			Description: "Bad entry: " + tc.name,
			Entries:     []dto.TransactionEntryRequest{tc.entry},
		}
		_, err := s.svc.PostTransaction(s.ctx, "company_1", req)
		s.ErrorIs(err, services.ErrInvalidEntry, tc.name)
	}
	s.assertUntouched("company_1")
}

func (s *LedgerServiceTestSuite) TestHeaderRejections() {
	req := cashSaleRequest()
	req.Entries = nil
	_, err := s.svc.PostTransaction(s.ctx, "company_1", req)
	s.ErrorIs(err, services.ErrEmptyTransaction)

	req = cashSaleRequest()
	req.Description = "   "
	_, err = s.svc.PostTransaction(s.ctx, "company_1", req)
	s.ErrorIs(err, services.ErrEmptyDescription)

	req = cashSaleRequest()
	req.Date = "15/01/2024"
	_, err = s.svc.PostTransaction(s.ctx, "company_1", req)
	s.ErrorIs(err, services.ErrInvalidDate)

	req = cashSaleRequest()
	req.VATRate = dec("1")
	_, err = s.svc.PostTransaction(s.ctx, "company_1", req)
	s.ErrorIs(err, services.ErrInvalidVATRate)

	req = cashSaleRequest()
	req.VATRate = dec("-0.1")
	_, err = s.svc.PostTransaction(s.ctx, "company_1", req)
	s.ErrorIs(err, services.ErrInvalidVATRate)

	s.assertUntouched("company_1")
}

func (s *LedgerServiceTestSuite) TestVATRateStoredButNeverApplied() {
	req := cashSaleRequest()
	req.VATRate = dec("0.2")
	saved, err := s.svc.PostTransaction(s.ctx, "company_1", req)
	s.Require().NoError(err)
	s.True(saved.VATRate.Equal(decimal.RequireFromString("0.2")))

	// Balances reflect the entries only; the rate changed nothing.
	ledger, err := s.registry.SnapshotLedger(s.ctx, "company_1")
	s.Require().NoError(err)
	s.True(ledger.Accounts["1000"].Balance.Equal(domain.MustMoney("1200.00")))
}

func (s *LedgerServiceTestSuite) TestUnknownCompany() {
	_, err := s.svc.PostTransaction(s.ctx, "ghost", cashSaleRequest())
	s.ErrorIs(err, apperrors.ErrNotFound)

	_, err = s.svc.GetChart(s.ctx, "ghost")
	s.ErrorIs(err, apperrors.ErrNotFound)

	_, err = s.svc.GetTransactionHistory(s.ctx, "ghost")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerServiceTestSuite) TestGetChartOrderAndBalances() {
	chart, err := s.svc.GetChart(s.ctx, "company_1")
	s.Require().NoError(err)
	s.Equal(domain.StandardChart(), chart)

	_, err = s.svc.PostTransaction(s.ctx, "company_1", cashSaleRequest())
	s.Require().NoError(err)

	chart, err = s.svc.GetChart(s.ctx, "company_1")
	s.Require().NoError(err)
	s.Equal("1000", chart[0].Code)
	s.True(chart[0].Balance.Equal(domain.MustMoney("1200.00")))
}

func (s *LedgerServiceTestSuite) TestGetTransactionHistoryRows() {
	_, err := s.svc.PostTransaction(s.ctx, "company_1", cashSaleRequest())
	s.Require().NoError(err)

	rows, err := s.svc.GetTransactionHistory(s.ctx, "company_1")
	s.Require().NoError(err)
	s.Require().Len(rows, 3)

	first := rows[0]
	s.Equal(int64(1), first.TransactionID)
	s.Equal("2024-01-15", first.Date)
	s.Equal("Cash sale", first.Description)
	s.Equal("1000", first.AccountCode)
	s.Equal("Cash", first.AccountName)
	s.Require().NotNil(first.Debit)
	s.True(first.Debit.Equal(domain.MustMoney("1200.00")))
	s.Nil(first.Credit)

	second := rows[1]
	s.Equal("4000", second.AccountCode)
	s.Nil(second.Debit)
	s.Require().NotNil(second.Credit)
	s.True(second.Credit.Equal(domain.MustMoney("1000.00")))
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func TestIsValidationError(t *testing.T) {
	validation := []error{
		services.ErrEmptyTransaction,
		services.ErrEmptyDescription,
		services.ErrUnknownAccount,
		services.ErrInvalidEntry,
		services.ErrInvalidDate,
		services.ErrInvalidVATRate,
		&services.UnbalancedTransactionError{Debits: domain.MustMoney("1.00"), Credits: domain.ZeroMoney()},
	}
	for _, err := range validation {
		if !services.IsValidationError(err) {
			t.Errorf("expected %v to classify as validation error", err)
		}
	}
	if services.IsValidationError(apperrors.ErrNotFound) {
		t.Error("not-found must not classify as validation error")
	}
}
