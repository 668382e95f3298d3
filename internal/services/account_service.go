package services

import (
	"context"

	"github.com/rajabpour4097/businessmanagement/internal/models"
	"github.com/rajabpour4097/businessmanagement/internal/repo"
)

type AccountService struct {
	accounts *repo.AccountRepo
}

func NewAccountService(accounts *repo.AccountRepo) *AccountService {
	return &AccountService{accounts: accounts}
}

func (s *AccountService) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	return s.accounts.Create(ctx, account)
}

func (s *AccountService) List(ctx context.Context, filters repo.AccountFilters) ([]models.Account, int64, error) {
	return s.accounts.List(ctx, filters)
}

func (s *AccountService) GetByID(ctx context.Context, id string) (*models.Account, error) {
	return s.accounts.GetByID(ctx, id)
}

func (s *AccountService) Update(ctx context.Context, account *models.Account) error {
	return s.accounts.Update(ctx, account)
}

func (s *AccountService) Delete(ctx context.Context, id string) error {
	return s.accounts.Delete(ctx, id)
}
