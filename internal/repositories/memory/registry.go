package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/businessfin/bfp_backend/internal/apperrors"
	"github.com/businessfin/bfp_backend/internal/core/domain"
	"github.com/businessfin/bfp_backend/internal/core/ports"
)

// CompanySeed describes one company to register at startup.
type CompanySeed struct {
	ID   string
	Name string
}

// ledgerRecord pairs a ledger with its own lock, so postings against one
// company serialize while operations on other companies proceed in parallel.
type ledgerRecord struct {
	mu     sync.RWMutex
	ledger *domain.Ledger
	nextID int64
}

// CompanyRegistry is the in-memory ledger store. It exclusively owns every
// ledger for the lifetime of the process; all state lives here for the
// session. Every method hands out copies, never references into the ledgers.
type CompanyRegistry struct {
	mu      sync.RWMutex // guards the record map and ordering
	records map[string]*ledgerRecord
	order   []string // company ids in registration order
}

var _ ports.LedgerRepository = (*CompanyRegistry)(nil)

// NewCompanyRegistry creates a registry with one freshly seeded ledger per
// company. Duplicate company ids are rejected.
func NewCompanyRegistry(seeds []CompanySeed) (*CompanyRegistry, error) {
	r := &CompanyRegistry{
		records: make(map[string]*ledgerRecord, len(seeds)),
		order:   make([]string, 0, len(seeds)),
	}
	for _, seed := range seeds {
		if seed.ID == "" || seed.Name == "" {
			return nil, fmt.Errorf("%w: company seed requires both id and name", apperrors.ErrValidation)
		}
		if _, exists := r.records[seed.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate company id %q", apperrors.ErrValidation, seed.ID)
		}
		r.records[seed.ID] = &ledgerRecord{
			ledger: domain.NewLedger(seed.ID, seed.Name),
			nextID: 1,
		}
		r.order = append(r.order, seed.ID)
	}
	return r, nil
}

// record looks up the ledger record for a company.
func (r *CompanyRegistry) record(companyID string) (*ledgerRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[companyID]
	if !ok {
		return nil, fmt.Errorf("%w: company %q", apperrors.ErrNotFound, companyID)
	}
	return rec, nil
}

// ListCompanyIDs returns every registered company id in registration order.
func (r *CompanyRegistry) ListCompanyIDs(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...), nil
}

// FindCompanyByID returns the registry-level summary for one company.
func (r *CompanyRegistry) FindCompanyByID(ctx context.Context, companyID string) (*domain.CompanySummary, error) {
	rec, err := r.record(companyID)
	if err != nil {
		return nil, err
	}
	rec.mu.RLock()
	defer rec.mu.RUnlock()
	return &domain.CompanySummary{
		CompanyID:        rec.ledger.CompanyID,
		Name:             rec.ledger.CompanyName,
		TransactionCount: len(rec.ledger.Transactions),
	}, nil
}

// GetChart returns a copy of the company's accounts in chart order.
func (r *CompanyRegistry) GetChart(ctx context.Context, companyID string) ([]domain.Account, error) {
	rec, err := r.record(companyID)
	if err != nil {
		return nil, err
	}
	rec.mu.RLock()
	defer rec.mu.RUnlock()
	return rec.ledger.AccountsInOrder(), nil
}

// SaveTransaction assigns the next sequential id to txn, applies the signed
// balance changes and appends the transaction under the company's write
// lock. Account codes are re-checked before any balance moves, so the ledger
// is either fully updated or untouched.
func (r *CompanyRegistry) SaveTransaction(ctx context.Context, companyID string, txn domain.Transaction, balanceChanges map[string]domain.Money) (*domain.Transaction, error) {
	rec, err := r.record(companyID)
	if err != nil {
		return nil, err
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()

	for code := range balanceChanges {
		if _, ok := rec.ledger.Accounts[code]; !ok {
			return nil, fmt.Errorf("%w: account %q not in chart", apperrors.ErrValidation, code)
		}
	}

	txn.ID = rec.nextID
	txn.Entries = append([]domain.Entry(nil), txn.Entries...)

	for code, change := range balanceChanges {
		acc := rec.ledger.Accounts[code]
		acc.Balance = acc.Balance.Add(change)
	}
	rec.ledger.Transactions = append(rec.ledger.Transactions, txn)
	rec.nextID++

	saved := txn
	saved.Entries = append([]domain.Entry(nil), txn.Entries...)
	return &saved, nil
}

// SnapshotLedger returns a deep copy of the company's ledger, consistent at
// one point in the transaction log.
func (r *CompanyRegistry) SnapshotLedger(ctx context.Context, companyID string) (*domain.Ledger, error) {
	rec, err := r.record(companyID)
	if err != nil {
		return nil, err
	}
	rec.mu.RLock()
	defer rec.mu.RUnlock()
	return rec.ledger.Clone(), nil
}

// ResetLedger reseeds the company's chart to zero balances and clears its
// transaction log. The company name survives; transaction ids restart at 1.
func (r *CompanyRegistry) ResetLedger(ctx context.Context, companyID string) error {
	rec, err := r.record(companyID)
	if err != nil {
		return err
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.ledger.SeedChart()
	rec.ledger.Transactions = nil
	rec.nextID = 1
	return nil
}

// RenameCompany updates the company's display name.
func (r *CompanyRegistry) RenameCompany(ctx context.Context, companyID string, newName string) error {
	rec, err := r.record(companyID)
	if err != nil {
		return err
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.ledger.CompanyName = newName
	return nil
}
