package dbbadger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"

	"github.com/orbit-wallet/wallet-daemon/internal/core/domain"
	"github.com/orbit-wallet/wallet-daemon/internal/core/ports"
)

type accountRepositoryImpl struct {
	store *badgerhold.Store
}

// NewAccountRepositoryImpl initializes a badger implementation of the
// ports.AccountRepository interface. It is the reference consumer of the
// bridge patches and applies them atomically.
func NewAccountRepositoryImpl(store *badgerhold.Store) ports.AccountRepository {
	return accountRepositoryImpl{store: store}
}

func (r accountRepositoryImpl) GetAccount(
	ctx context.Context, id string,
) (*domain.Account, error) {
	var account domain.Account
	if err := r.store.Get(id, &account); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, ports.ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r accountRepositoryImpl) ListAccounts(
	ctx context.Context,
) ([]domain.Account, error) {
	accounts := make([]domain.Account, 0)
	if err := r.store.Find(&accounts, nil); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r accountRepositoryImpl) SaveAccount(
	ctx context.Context, account domain.Account,
) error {
	return r.store.Upsert(account.ID, account)
}

// UpdateAccount reads the stored account, applies the given patches in order
// and writes the result back, all inside one badger transaction so a
// concurrent update can never observe a torn state.
func (r accountRepositoryImpl) UpdateAccount(
	ctx context.Context, id string, patches ...domain.Patch,
) error {
	return r.store.Badger().Update(func(tx *badger.Txn) error {
		var account domain.Account
		if err := r.store.TxGet(tx, id, &account); err != nil {
			if errors.Is(err, badgerhold.ErrNotFound) {
				return ports.ErrAccountNotFound
			}
			return err
		}

		for _, patch := range patches {
			account = patch(account)
		}

		return r.store.TxUpdate(tx, id, account)
	})
}

func (r accountRepositoryImpl) DeleteAccount(
	ctx context.Context, id string,
) error {
	if err := r.store.Delete(id, domain.Account{}); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return ports.ErrAccountNotFound
		}
		return err
	}
	return nil
}
