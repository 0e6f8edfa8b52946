package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/businessfin/bfp_backend/internal/core/domain"
	"github.com/businessfin/bfp_backend/internal/core/ports"
	portssvc "github.com/businessfin/bfp_backend/internal/core/ports/services"
	"github.com/businessfin/bfp_backend/internal/dto"
)

// ErrEmptyCompanyName rejects renames to a blank name.
var ErrEmptyCompanyName = errors.New("company name must not be empty")

// companyService covers registry-level company management and export.
type companyService struct {
	BaseService
	repo ports.LedgerRepository
	now  func() time.Time
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(repo ports.LedgerRepository) portssvc.CompanySvcFacade {
	return &companyService{repo: repo, now: time.Now}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

// ListCompanies returns every company summary in registration order.
func (s *companyService) ListCompanies(ctx context.Context) ([]domain.CompanySummary, error) {
	ids, err := s.repo.ListCompanyIDs(ctx)
	if err != nil {
		return nil, err
	}
	companies := make([]domain.CompanySummary, 0, len(ids))
	for _, id := range ids {
		summary, err := s.repo.FindCompanyByID(ctx, id)
		if err != nil {
			return nil, err
		}
		companies = append(companies, *summary)
	}
	return companies, nil
}

// GetCompany returns one company summary.
func (s *companyService) GetCompany(ctx context.Context, companyID string) (*domain.CompanySummary, error) {
	return s.repo.FindCompanyByID(ctx, companyID)
}

// RenameCompany updates the company's display name. Only non-emptiness is
// enforced.
func (s *companyService) RenameCompany(ctx context.Context, companyID string, newName string) error {
	name := strings.TrimSpace(newName)
	if name == "" {
		return ErrEmptyCompanyName
	}
	if err := s.repo.RenameCompany(ctx, companyID, name); err != nil {
		return err
	}
	s.LogInfo(ctx, "Company renamed",
		slog.String("company_id", companyID),
		slog.String("name", name))
	return nil
}

// ResetCompany reseeds the company's chart to zero balances and clears its
// transaction log. The company name is unaffected.
func (s *companyService) ResetCompany(ctx context.Context, companyID string) error {
	if err := s.repo.ResetLedger(ctx, companyID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Company data reset", slog.String("company_id", companyID))
	return nil
}

// ExportSnapshot assembles the full backup structure: every company's name,
// chart with current balances and complete transaction log. Amounts
// serialize as decimal strings.
func (s *companyService) ExportSnapshot(ctx context.Context) (*dto.SnapshotExport, error) {
	ids, err := s.repo.ListCompanyIDs(ctx)
	if err != nil {
		return nil, err
	}

	export := &dto.SnapshotExport{
		ExportedAt: s.now().UTC(),
		Companies:  make([]dto.CompanySnapshot, 0, len(ids)),
	}
	for _, id := range ids {
		ledger, err := s.repo.SnapshotLedger(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to snapshot company %q: %w", id, err)
		}
		export.Companies = append(export.Companies, dto.CompanySnapshot{
			CompanyID:    ledger.CompanyID,
			Name:         ledger.CompanyName,
			Accounts:     dto.ToListAccountsResponse(ledger.AccountsInOrder()).Accounts,
			Transactions: dto.ToTransactionResponses(ledger.Transactions),
		})
	}

	s.LogInfo(ctx, "Snapshot exported", slog.Int("company_count", len(export.Companies)))
	return export, nil
}
