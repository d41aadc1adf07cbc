package application_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/orbit-wallet/wallet-daemon/internal/core/domain"
)

// **** Account repository ****

type mockAccountRepository struct {
	mock.Mock
}

func (m *mockAccountRepository) GetAccount(
	ctx context.Context, id string,
) (*domain.Account, error) {
	args := m.Called(ctx, id)

	var res *domain.Account
	if a := args.Get(0); a != nil {
		res = a.(*domain.Account)
	}
	return res, args.Error(1)
}

func (m *mockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)

	var res []domain.Account
	if a := args.Get(0); a != nil {
		res = a.([]domain.Account)
	}
	return res, args.Error(1)
}

func (m *mockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *mockAccountRepository) UpdateAccount(
	ctx context.Context, id string, patches ...domain.Patch,
) error {
	args := m.Called(ctx, id, patches)
	return args.Error(0)
}

func (m *mockAccountRepository) DeleteAccount(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
