package repo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/rajabpour4097/businessmanagement/internal/models"
)

// FinanceRepo covers the ledger satellites: overdue accounts,
// discrepancies, follow-ups, checks in both directions, and ongoing
// debts. They share one shape (create, get, list with a status filter,
// update, delete), so the plumbing is generic and each entity only
// declares what differs.
type FinanceRepo struct {
	db *gorm.DB
}

func NewFinanceRepo(db *gorm.DB) *FinanceRepo {
	return &FinanceRepo{db: db}
}

func createRecord[T any](ctx context.Context, db *gorm.DB, rec *T, entity string) (*T, error) {
	if err := db.WithContext(ctx).Create(rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateRecord
		}
		return nil, fmt.Errorf("insert %s: %w", entity, err)
	}
	return rec, nil
}

func getRecord[T any](ctx context.Context, db *gorm.DB, id, entity string) (*T, error) {
	var rec T
	if err := db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get %s: %w", entity, err)
	}
	return &rec, nil
}

func listRecords[T any](ctx context.Context, db *gorm.DB, scope func(*gorm.DB) *gorm.DB, page, perPage int, entity string) ([]T, int64, error) {
	var model T
	query := db.WithContext(ctx).Model(&model)
	if scope != nil {
		query = scope(query)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", entity, err)
	}

	limit, offset := pageBounds(page, perPage)
	var records []T
	if err := query.Order("created_at").Limit(limit).Offset(offset).Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", entity, err)
	}
	return records, total, nil
}

func updateRecord[T any](ctx context.Context, db *gorm.DB, id string, values map[string]any, entity string) error {
	var model T
	result := db.WithContext(ctx).Model(&model).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return fmt.Errorf("update %s: %w", entity, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func deleteRecord[T any](ctx context.Context, db *gorm.DB, id, entity string) error {
	var model T
	result := db.WithContext(ctx).Delete(&model, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete %s: %w", entity, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func statusScope(status string) func(*gorm.DB) *gorm.DB {
	if status == "" {
		return nil
	}
	return func(q *gorm.DB) *gorm.DB { return q.Where("status = ?", status) }
}

// Overdue accounts

func (r *FinanceRepo) CreateOverdue(ctx context.Context, rec *models.OverdueAccount) (*models.OverdueAccount, error) {
	return createRecord(ctx, r.db, rec, "overdue account")
}

func (r *FinanceRepo) GetOverdue(ctx context.Context, id string) (*models.OverdueAccount, error) {
	return getRecord[models.OverdueAccount](ctx, r.db, id, "overdue account")
}

func (r *FinanceRepo) ListOverdue(ctx context.Context, accountID string, page, perPage int) ([]models.OverdueAccount, int64, error) {
	var scope func(*gorm.DB) *gorm.DB
	if accountID != "" {
		scope = func(q *gorm.DB) *gorm.DB { return q.Where("account_id = ?", accountID) }
	}
	return listRecords[models.OverdueAccount](ctx, r.db, scope, page, perPage, "overdue accounts")
}

func (r *FinanceRepo) UpdateOverdue(ctx context.Context, rec *models.OverdueAccount) error {
	return updateRecord[models.OverdueAccount](ctx, r.db, rec.ID, map[string]any{
		"customer_name":  rec.CustomerName,
		"overdue_amount": rec.OverdueAmount,
		"due_date":       rec.DueDate,
		"contact_info":   rec.ContactInfo,
	}, "overdue account")
}

func (r *FinanceRepo) DeleteOverdue(ctx context.Context, id string) error {
	return deleteRecord[models.OverdueAccount](ctx, r.db, id, "overdue account")
}

// Discrepancies

func (r *FinanceRepo) CreateDiscrepancy(ctx context.Context, rec *models.Discrepancy) (*models.Discrepancy, error) {
	return createRecord(ctx, r.db, rec, "discrepancy")
}

func (r *FinanceRepo) GetDiscrepancy(ctx context.Context, id string) (*models.Discrepancy, error) {
	return getRecord[models.Discrepancy](ctx, r.db, id, "discrepancy")
}

func (r *FinanceRepo) ListDiscrepancies(ctx context.Context, status string, page, perPage int) ([]models.Discrepancy, int64, error) {
	return listRecords[models.Discrepancy](ctx, r.db, statusScope(status), page, perPage, "discrepancies")
}

func (r *FinanceRepo) UpdateDiscrepancy(ctx context.Context, rec *models.Discrepancy) error {
	return updateRecord[models.Discrepancy](ctx, r.db, rec.ID, map[string]any{
		"title":       rec.Title,
		"description": rec.Description,
		"amount":      rec.Amount,
		"status":      rec.Status,
	}, "discrepancy")
}

func (r *FinanceRepo) DeleteDiscrepancy(ctx context.Context, id string) error {
	return deleteRecord[models.Discrepancy](ctx, r.db, id, "discrepancy")
}

// Follow-ups

func (r *FinanceRepo) CreateFollowUp(ctx context.Context, rec *models.FollowUp) (*models.FollowUp, error) {
	return createRecord(ctx, r.db, rec, "follow-up")
}

func (r *FinanceRepo) GetFollowUp(ctx context.Context, id string) (*models.FollowUp, error) {
	return getRecord[models.FollowUp](ctx, r.db, id, "follow-up")
}

func (r *FinanceRepo) ListFollowUps(ctx context.Context, status string, page, perPage int) ([]models.FollowUp, int64, error) {
	return listRecords[models.FollowUp](ctx, r.db, statusScope(status), page, perPage, "follow-ups")
}

func (r *FinanceRepo) UpdateFollowUp(ctx context.Context, rec *models.FollowUp) error {
	return updateRecord[models.FollowUp](ctx, r.db, rec.ID, map[string]any{
		"title":          rec.Title,
		"description":    rec.Description,
		"customer_name":  rec.CustomerName,
		"follow_up_date": rec.FollowUpDate,
		"status":         rec.Status,
	}, "follow-up")
}

func (r *FinanceRepo) DeleteFollowUp(ctx context.Context, id string) error {
	return deleteRecord[models.FollowUp](ctx, r.db, id, "follow-up")
}

// Payable checks

func (r *FinanceRepo) CreatePayableCheck(ctx context.Context, rec *models.PayableCheck) (*models.PayableCheck, error) {
	return createRecord(ctx, r.db, rec, "payable check")
}

func (r *FinanceRepo) GetPayableCheck(ctx context.Context, id string) (*models.PayableCheck, error) {
	return getRecord[models.PayableCheck](ctx, r.db, id, "payable check")
}

func (r *FinanceRepo) ListPayableChecks(ctx context.Context, status string, page, perPage int) ([]models.PayableCheck, int64, error) {
	return listRecords[models.PayableCheck](ctx, r.db, statusScope(status), page, perPage, "payable checks")
}

func (r *FinanceRepo) UpdatePayableCheck(ctx context.Context, rec *models.PayableCheck) error {
	return updateRecord[models.PayableCheck](ctx, r.db, rec.ID, map[string]any{
		"check_number": rec.CheckNumber,
		"amount":       rec.Amount,
		"payee":        rec.Payee,
		"due_date":     rec.DueDate,
		"bank_name":    rec.BankName,
		"status":       rec.Status,
	}, "payable check")
}

func (r *FinanceRepo) DeletePayableCheck(ctx context.Context, id string) error {
	return deleteRecord[models.PayableCheck](ctx, r.db, id, "payable check")
}

// Receivable checks

func (r *FinanceRepo) CreateReceivableCheck(ctx context.Context, rec *models.ReceivableCheck) (*models.ReceivableCheck, error) {
	return createRecord(ctx, r.db, rec, "receivable check")
}

func (r *FinanceRepo) GetReceivableCheck(ctx context.Context, id string) (*models.ReceivableCheck, error) {
	return getRecord[models.ReceivableCheck](ctx, r.db, id, "receivable check")
}

func (r *FinanceRepo) ListReceivableChecks(ctx context.Context, status string, page, perPage int) ([]models.ReceivableCheck, int64, error) {
	return listRecords[models.ReceivableCheck](ctx, r.db, statusScope(status), page, perPage, "receivable checks")
}

func (r *FinanceRepo) UpdateReceivableCheck(ctx context.Context, rec *models.ReceivableCheck) error {
	return updateRecord[models.ReceivableCheck](ctx, r.db, rec.ID, map[string]any{
		"check_number": rec.CheckNumber,
		"amount":       rec.Amount,
		"payer":        rec.Payer,
		"due_date":     rec.DueDate,
		"bank_name":    rec.BankName,
		"status":       rec.Status,
	}, "receivable check")
}

func (r *FinanceRepo) DeleteReceivableCheck(ctx context.Context, id string) error {
	return deleteRecord[models.ReceivableCheck](ctx, r.db, id, "receivable check")
}

// Ongoing debts

func (r *FinanceRepo) CreateDebt(ctx context.Context, rec *models.OngoingDebt) (*models.OngoingDebt, error) {
	return createRecord(ctx, r.db, rec, "ongoing debt")
}

func (r *FinanceRepo) GetDebt(ctx context.Context, id string) (*models.OngoingDebt, error) {
	return getRecord[models.OngoingDebt](ctx, r.db, id, "ongoing debt")
}

func (r *FinanceRepo) ListDebts(ctx context.Context, status string, page, perPage int) ([]models.OngoingDebt, int64, error) {
	return listRecords[models.OngoingDebt](ctx, r.db, statusScope(status), page, perPage, "ongoing debts")
}

func (r *FinanceRepo) UpdateDebt(ctx context.Context, rec *models.OngoingDebt) error {
	return updateRecord[models.OngoingDebt](ctx, r.db, rec.ID, map[string]any{
		"creditor_name": rec.CreditorName,
		"amount":        rec.Amount,
		"description":   rec.Description,
		"due_date":      rec.DueDate,
		"status":        rec.Status,
	}, "ongoing debt")
}

func (r *FinanceRepo) DeleteDebt(ctx context.Context, id string) error {
	return deleteRecord[models.OngoingDebt](ctx, r.db, id, "ongoing debt")
}

// Summary aggregates the dashboard counters in one pass per table.
func (r *FinanceRepo) Summary(ctx context.Context) (*models.FinancialSummary, error) {
	db := r.db.WithContext(ctx)
	var s models.FinancialSummary

	if err := db.Model(&models.Account{}).Count(&s.TotalAccounts).Error; err != nil {
		return nil, fmt.Errorf("count accounts: %w", err)
	}
	if err := db.Model(&models.Account{}).Select("COALESCE(SUM(balance), 0)").Scan(&s.TotalBalance).Error; err != nil {
		return nil, fmt.Errorf("sum balances: %w", err)
	}
	if err := db.Model(&models.OverdueAccount{}).Count(&s.OverdueAccountsCount).Error; err != nil {
		return nil, fmt.Errorf("count overdue accounts: %w", err)
	}
	if err := db.Model(&models.OverdueAccount{}).Select("COALESCE(SUM(overdue_amount), 0)").Scan(&s.OverdueAmount).Error; err != nil {
		return nil, fmt.Errorf("sum overdue amounts: %w", err)
	}
	if err := db.Model(&models.Discrepancy{}).Where("status = ?", models.DiscrepancyStatusPending).Count(&s.PendingDiscrepancies).Error; err != nil {
		return nil, fmt.Errorf("count pending discrepancies: %w", err)
	}
	if err := db.Model(&models.PayableCheck{}).Where("status = ?", models.PayableCheckStatusIssued).Count(&s.PayableChecksCount).Error; err != nil {
		return nil, fmt.Errorf("count payable checks: %w", err)
	}
	if err := db.Model(&models.ReceivableCheck{}).Where("status = ?", models.ReceivableCheckStatusReceived).Count(&s.ReceivableChecksCount).Error; err != nil {
		return nil, fmt.Errorf("count receivable checks: %w", err)
	}
	if err := db.Model(&models.OngoingDebt{}).Where("status = ?", models.DebtStatusPending).Count(&s.OngoingDebtsCount).Error; err != nil {
		return nil, fmt.Errorf("count ongoing debts: %w", err)
	}
	if err := db.Model(&models.OngoingDebt{}).Where("status = ?", models.DebtStatusPending).Select("COALESCE(SUM(amount), 0)").Scan(&s.OngoingDebtsAmount).Error; err != nil {
		return nil, fmt.Errorf("sum ongoing debts: %w", err)
	}

	return &s, nil
}
