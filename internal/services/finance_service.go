package services

import (
	"context"

	"github.com/rajabpour4097/businessmanagement/internal/models"
	"github.com/rajabpour4097/businessmanagement/internal/repo"
)

// FinanceService fronts the ledger satellite records. The rules all
// live in the handlers (validation) and the repo (storage); this layer
// keeps the wiring uniform with the other record services.
type FinanceService struct {
	finance *repo.FinanceRepo
}

func NewFinanceService(finance *repo.FinanceRepo) *FinanceService {
	return &FinanceService{finance: finance}
}

func (s *FinanceService) CreateOverdue(ctx context.Context, rec *models.OverdueAccount) (*models.OverdueAccount, error) {
	return s.finance.CreateOverdue(ctx, rec)
}

func (s *FinanceService) GetOverdue(ctx context.Context, id string) (*models.OverdueAccount, error) {
	return s.finance.GetOverdue(ctx, id)
}

func (s *FinanceService) ListOverdue(ctx context.Context, accountID string, page, perPage int) ([]models.OverdueAccount, int64, error) {
	return s.finance.ListOverdue(ctx, accountID, page, perPage)
}

func (s *FinanceService) UpdateOverdue(ctx context.Context, rec *models.OverdueAccount) error {
	return s.finance.UpdateOverdue(ctx, rec)
}

func (s *FinanceService) DeleteOverdue(ctx context.Context, id string) error {
	return s.finance.DeleteOverdue(ctx, id)
}

func (s *FinanceService) CreateDiscrepancy(ctx context.Context, rec *models.Discrepancy) (*models.Discrepancy, error) {
	return s.finance.CreateDiscrepancy(ctx, rec)
}

func (s *FinanceService) GetDiscrepancy(ctx context.Context, id string) (*models.Discrepancy, error) {
	return s.finance.GetDiscrepancy(ctx, id)
}

func (s *FinanceService) ListDiscrepancies(ctx context.Context, status string, page, perPage int) ([]models.Discrepancy, int64, error) {
	return s.finance.ListDiscrepancies(ctx, status, page, perPage)
}

func (s *FinanceService) UpdateDiscrepancy(ctx context.Context, rec *models.Discrepancy) error {
	return s.finance.UpdateDiscrepancy(ctx, rec)
}

func (s *FinanceService) DeleteDiscrepancy(ctx context.Context, id string) error {
	return s.finance.DeleteDiscrepancy(ctx, id)
}

func (s *FinanceService) CreateFollowUp(ctx context.Context, rec *models.FollowUp) (*models.FollowUp, error) {
	return s.finance.CreateFollowUp(ctx, rec)
}

func (s *FinanceService) GetFollowUp(ctx context.Context, id string) (*models.FollowUp, error) {
	return s.finance.GetFollowUp(ctx, id)
}

func (s *FinanceService) ListFollowUps(ctx context.Context, status string, page, perPage int) ([]models.FollowUp, int64, error) {
	return s.finance.ListFollowUps(ctx, status, page, perPage)
}

func (s *FinanceService) UpdateFollowUp(ctx context.Context, rec *models.FollowUp) error {
	return s.finance.UpdateFollowUp(ctx, rec)
}

func (s *FinanceService) DeleteFollowUp(ctx context.Context, id string) error {
	return s.finance.DeleteFollowUp(ctx, id)
}

func (s *FinanceService) CreatePayableCheck(ctx context.Context, rec *models.PayableCheck) (*models.PayableCheck, error) {
	return s.finance.CreatePayableCheck(ctx, rec)
}

func (s *FinanceService) GetPayableCheck(ctx context.Context, id string) (*models.PayableCheck, error) {
	return s.finance.GetPayableCheck(ctx, id)
}

func (s *FinanceService) ListPayableChecks(ctx context.Context, status string, page, perPage int) ([]models.PayableCheck, int64, error) {
	return s.finance.ListPayableChecks(ctx, status, page, perPage)
}

func (s *FinanceService) UpdatePayableCheck(ctx context.Context, rec *models.PayableCheck) error {
	return s.finance.UpdatePayableCheck(ctx, rec)
}

func (s *FinanceService) DeletePayableCheck(ctx context.Context, id string) error {
	return s.finance.DeletePayableCheck(ctx, id)
}

func (s *FinanceService) CreateReceivableCheck(ctx context.Context, rec *models.ReceivableCheck) (*models.ReceivableCheck, error) {
	return s.finance.CreateReceivableCheck(ctx, rec)
}

func (s *FinanceService) GetReceivableCheck(ctx context.Context, id string) (*models.ReceivableCheck, error) {
	return s.finance.GetReceivableCheck(ctx, id)
}

func (s *FinanceService) ListReceivableChecks(ctx context.Context, status string, page, perPage int) ([]models.ReceivableCheck, int64, error) {
	return s.finance.ListReceivableChecks(ctx, status, page, perPage)
}

func (s *FinanceService) UpdateReceivableCheck(ctx context.Context, rec *models.ReceivableCheck) error {
	return s.finance.UpdateReceivableCheck(ctx, rec)
}

func (s *FinanceService) DeleteReceivableCheck(ctx context.Context, id string) error {
	return s.finance.DeleteReceivableCheck(ctx, id)
}

func (s *FinanceService) CreateDebt(ctx context.Context, rec *models.OngoingDebt) (*models.OngoingDebt, error) {
	return s.finance.CreateDebt(ctx, rec)
}

func (s *FinanceService) GetDebt(ctx context.Context, id string) (*models.OngoingDebt, error) {
	return s.finance.GetDebt(ctx, id)
}

func (s *FinanceService) ListDebts(ctx context.Context, status string, page, perPage int) ([]models.OngoingDebt, int64, error) {
	return s.finance.ListDebts(ctx, status, page, perPage)
}

func (s *FinanceService) UpdateDebt(ctx context.Context, rec *models.OngoingDebt) error {
	return s.finance.UpdateDebt(ctx, rec)
}

func (s *FinanceService) DeleteDebt(ctx context.Context, id string) error {
	return s.finance.DeleteDebt(ctx, id)
}

func (s *FinanceService) Summary(ctx context.Context) (*models.FinancialSummary, error) {
	return s.finance.Summary(ctx)
}
