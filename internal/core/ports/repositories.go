package ports

import (
	"context"

	"github.com/businessfin/bfp_backend/internal/core/domain"
)

// LedgerRepository defines the storage operations the services need against
// the company registry. The registry exclusively owns every ledger; methods
// returning accounts, transactions or whole ledgers return copies.
//
// SaveTransaction must be atomic per company: the balance changes apply and
// the transaction appends together, or nothing happens. Snapshot-style reads
// must observe the ledger at a single point in the log, never a state that
// reflects half of an in-flight posting.
type LedgerRepository interface {
	// ListCompanyIDs returns every registered company id in registration order.
	ListCompanyIDs(ctx context.Context) ([]string, error)

	// FindCompanyByID returns the registry-level summary for one company.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.CompanySummary, error)

	// GetChart returns the company's accounts with current balances, in
	// chart-definition order.
	GetChart(ctx context.Context, companyID string) ([]domain.Account, error)

	// SaveTransaction assigns the next sequential id to txn, applies the
	// signed balance changes and appends the transaction, all under the
	// company's write lock. The stored transaction is returned.
	SaveTransaction(ctx context.Context, companyID string, txn domain.Transaction, balanceChanges map[string]domain.Money) (*domain.Transaction, error)

	// SnapshotLedger returns a deep copy of the company's ledger, consistent
	// at one point in the transaction log.
	SnapshotLedger(ctx context.Context, companyID string) (*domain.Ledger, error)

	// ResetLedger reseeds the company's chart to zero balances and clears its
	// transaction log. The company name is unaffected.
	ResetLedger(ctx context.Context, companyID string) error

	// RenameCompany updates the company's display name.
	RenameCompany(ctx context.Context, companyID string, newName string) error
}
