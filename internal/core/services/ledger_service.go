package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/businessfin/bfp_backend/internal/apperrors"
	"github.com/businessfin/bfp_backend/internal/core/domain"
	"github.com/businessfin/bfp_backend/internal/core/ports"
	portssvc "github.com/businessfin/bfp_backend/internal/core/ports/services"
	"github.com/businessfin/bfp_backend/internal/dto"
)

var (
	// ErrEmptyTransaction rejects postings with zero entries.
	ErrEmptyTransaction = errors.New("transaction must contain at least one entry")
	// ErrEmptyDescription rejects postings without a description.
	ErrEmptyDescription = errors.New("transaction description is required")
	// ErrUnknownAccount rejects postings referencing a code outside the chart.
	ErrUnknownAccount = errors.New("unknown account code")
	// ErrInvalidEntry rejects entries that do not carry exactly one strictly
	// positive side.
	ErrInvalidEntry = errors.New("entry must have exactly one of debit or credit, strictly positive")
	// ErrInvalidDate rejects dates not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid transaction date, expected YYYY-MM-DD")
	// ErrInvalidVATRate rejects rates outside [0, 1).
	ErrInvalidVATRate = errors.New("vat rate must be a fraction at least 0 and below 1")
)

// UnbalancedTransactionError reports the exact mismatch between the debit
// and credit totals of a rejected posting.
type UnbalancedTransactionError struct {
	Debits  domain.Money
	Credits domain.Money
}

func (e *UnbalancedTransactionError) Error() string {
	return fmt.Sprintf("transaction does not balance: debits %s, credits %s, difference %s",
		e.Debits, e.Credits, e.Debits.Sub(e.Credits).Abs())
}

// ledgerService provides the transaction-posting operations of a company's
// books.
type ledgerService struct {
	BaseService
	repo ports.LedgerRepository
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(repo ports.LedgerRepository) portssvc.LedgerSvcFacade {
	return &ledgerService{repo: repo}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// GetChart returns the company's accounts with current balances, in chart
// order.
func (s *ledgerService) GetChart(ctx context.Context, companyID string) ([]domain.Account, error) {
	return s.repo.GetChart(ctx, companyID)
}

// PostTransaction validates the raw entry requests and atomically applies
// the resulting balanced transaction. Validation completes in full before
// anything mutates: a failed posting leaves every balance and the log
// exactly as they were.
func (s *ledgerService) PostTransaction(ctx context.Context, companyID string, req dto.PostTransactionRequest) (*domain.Transaction, error) {
	chart, err := s.repo.GetChart(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if len(req.Entries) == 0 {
		return nil, ErrEmptyTransaction
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}
	vatRate := decimal.Zero
	if req.VATRate != nil {
		vatRate = *req.VATRate
		if vatRate.IsNegative() || vatRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidVATRate, vatRate.String())
		}
	}

	codes := make(map[string]struct{}, len(chart))
	for _, acc := range chart {
		codes[acc.Code] = struct{}{}
	}

	entries := make([]domain.Entry, len(req.Entries))
	balanceChanges := make(map[string]domain.Money)
	debits := domain.ZeroMoney()
	credits := domain.ZeroMoney()
	for i, entryReq := range req.Entries {
		if _, ok := codes[entryReq.AccountCode]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAccount, entryReq.AccountCode)
		}
		entry, err := entryFromRequest(entryReq)
		if err != nil {
			return nil, err
		}
		entries[i] = entry
		if entry.Side == domain.Debit {
			debits = debits.Add(entry.Amount)
		} else {
			credits = credits.Add(entry.Amount)
		}
		balanceChanges[entry.AccountCode] = balanceChanges[entry.AccountCode].Add(entry.SignedAmount())
	}

	if !debits.Equal(credits) {
		return nil, &UnbalancedTransactionError{Debits: debits, Credits: credits}
	}

	txn := domain.Transaction{
		Date:        date,
		Description: description,
		Entries:     entries,
		VATRate:     vatRate,
	}
	saved, err := s.repo.SaveTransaction(ctx, companyID, txn, balanceChanges)
	if err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction posted",
		slog.String("company_id", companyID),
		slog.Int64("transaction_id", saved.ID),
		slog.Int("entry_count", len(saved.Entries)),
		slog.String("amount", debits.String()))
	return saved, nil
}

// entryFromRequest normalizes one raw debit/credit request line into a
// domain entry with a side and a strictly positive exact amount.
func entryFromRequest(req dto.TransactionEntryRequest) (domain.Entry, error) {
	if (req.Debit == nil) == (req.Credit == nil) {
		return domain.Entry{}, fmt.Errorf("%w: account %q", ErrInvalidEntry, req.AccountCode)
	}

	side := domain.Debit
	raw := req.Debit
	if req.Credit != nil {
		side = domain.Credit
		raw = req.Credit
	}
	if !raw.IsPositive() {
		return domain.Entry{}, fmt.Errorf("%w: account %q", ErrInvalidEntry, req.AccountCode)
	}
	amount, err := domain.NewMoney(*raw)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("%w: account %q: %v", ErrInvalidEntry, req.AccountCode, err)
	}

	return domain.Entry{
		AccountCode: req.AccountCode,
		Side:        side,
		Amount:      amount,
	}, nil
}

// GetTransactionHistory flattens the company's log into one row per entry,
// oldest transaction first, entries in original order.
func (s *ledgerService) GetTransactionHistory(ctx context.Context, companyID string) ([]dto.TransactionRowResponse, error) {
	ledger, err := s.repo.SnapshotLedger(ctx, companyID)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.TransactionRowResponse, 0, len(ledger.Transactions)*2)
	for _, txn := range ledger.Transactions {
		for _, entry := range txn.Entries {
			row := dto.TransactionRowResponse{
				TransactionID: txn.ID,
				Date:          txn.Date.Format(dto.DateLayout),
				Description:   txn.Description,
				AccountCode:   entry.AccountCode,
			}
			if acc, ok := ledger.Accounts[entry.AccountCode]; ok {
				row.AccountName = acc.Name
			}
			amount := entry.Amount
			if entry.Side == domain.Debit {
				row.Debit = &amount
			} else {
				row.Credit = &amount
			}
			rows = append(rows, row)
		}
	}

	s.LogDebug(ctx, "Transaction history assembled",
		slog.String("company_id", companyID),
		slog.Int("row_count", len(rows)))
	return rows, nil
}

// IsValidationError reports whether err belongs to the posting validation
// taxonomy (as opposed to an unknown company or an internal failure).
func IsValidationError(err error) bool {
	var unbalanced *UnbalancedTransactionError
	return errors.Is(err, ErrEmptyTransaction) ||
		errors.Is(err, ErrEmptyDescription) ||
		errors.Is(err, ErrUnknownAccount) ||
		errors.Is(err, ErrInvalidEntry) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidVATRate) ||
		errors.Is(err, apperrors.ErrValidation) ||
		errors.As(err, &unbalanced)
}
