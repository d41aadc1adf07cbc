// Package mockbridge provides placeholder bridge implementations emitting
// deterministic-shaped fake data. They are substituted process-wide through
// an explicit configuration switch, never by hidden global mutation.
package mockbridge

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/thanhpk/randstr"

	"github.com/orbit-wallet/wallet-daemon/internal/core/domain"
	"github.com/orbit-wallet/wallet-daemon/internal/core/ports"
)

// BridgeType tags account ids handled by the mock bridges.
const BridgeType = "mock"

const scannedAccounts = 3

type bridge struct{}

// NewCurrencyBridge returns the mock implementation of ports.CurrencyBridge.
func NewCurrencyBridge() ports.CurrencyBridge {
	return &bridge{}
}

// NewAccountBridge returns the mock implementation of ports.AccountBridge.
func NewAccountBridge() ports.AccountBridge {
	return &bridge{}
}

func (b *bridge) ScanAccountsOnDevice(
	ctx context.Context, currency domain.Currency, deviceID string,
) <-chan ports.ScanEvent {
	events := make(chan ports.ScanEvent)

	go func() {
		defer close(events)

		for index := 0; index < scannedAccounts; index++ {
			if ctx.Err() != nil {
				return
			}
			account := fakeAccount(currency, index)
			select {
			case events <- ports.ScanEvent{Account: &account}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events
}

func (b *bridge) Synchronize(
	ctx context.Context, account domain.Account,
) <-chan ports.SyncEvent {
	events := make(chan ports.SyncEvent)

	go func() {
		defer close(events)

		now := time.Now().UTC()
		select {
		case events <- ports.SyncEvent{Patch: func(a domain.Account) domain.Account {
			a.LastSyncDate = now
			return a
		}}:
		case <-ctx.Done():
		}
	}()

	return events
}

func (b *bridge) PullMoreOperations(
	ctx context.Context, account domain.Account,
) (domain.Patch, error) {
	return func(a domain.Account) domain.Account { return a }, nil
}

func (b *bridge) CreateTransaction(account domain.Account) ports.Transaction {
	return transaction{amount: decimal.Zero}
}

func (b *bridge) EditTransactionAmount(
	account domain.Account, tx ports.Transaction, amount decimal.Decimal,
) ports.Transaction {
	t, ok := tx.(transaction)
	if !ok {
		return tx
	}
	t.amount = amount
	return t
}

func (b *bridge) EditTransactionRecipient(
	account domain.Account, tx ports.Transaction, recipient string,
) ports.Transaction {
	t, ok := tx.(transaction)
	if !ok {
		return tx
	}
	t.recipient = recipient
	return t
}

func (b *bridge) EditTransactionFee(
	account domain.Account, tx ports.Transaction, fee decimal.Decimal,
) ports.Transaction {
	t, ok := tx.(transaction)
	if !ok {
		return tx
	}
	t.fee = &fee
	return t
}

func (b *bridge) EditTransactionExtra(
	account domain.Account, tx ports.Transaction, field, value string,
) ports.Transaction {
	return tx
}

func (b *bridge) IsRecipientValid(account domain.Account, recipient string) bool {
	return len(recipient) > 0 && recipient != account.FreshAddress
}

func (b *bridge) GetRecipientWarning(account domain.Account, recipient string) error {
	if recipient == account.FreshAddress {
		return domain.ErrDestinationIsSource
	}
	return nil
}

func (b *bridge) GetTotalSpent(account domain.Account, tx ports.Transaction) decimal.Decimal {
	fee := decimal.Zero
	if tx.Fee() != nil {
		fee = *tx.Fee()
	}
	return tx.Amount().Add(fee)
}

func (b *bridge) GetMaxAmount(account domain.Account, tx ports.Transaction) decimal.Decimal {
	fee := decimal.Zero
	if tx.Fee() != nil {
		fee = *tx.Fee()
	}
	max := account.Balance.Sub(fee)
	if max.IsNegative() {
		return decimal.Zero
	}
	return max
}

func (b *bridge) CheckValidTransaction(account domain.Account, tx ports.Transaction) error {
	if !b.IsRecipientValid(account, tx.Recipient()) {
		return domain.ErrInvalidRecipient
	}
	if tx.Fee() == nil {
		return domain.ErrFeeNotLoaded
	}
	if !tx.Amount().IsPositive() {
		return domain.ErrAmountRequired
	}
	if b.GetTotalSpent(account, tx).GreaterThan(account.Balance) {
		return domain.ErrNotEnoughBalance
	}
	return nil
}

func (b *bridge) SignAndBroadcast(
	ctx context.Context, account domain.Account, tx ports.Transaction, deviceID string,
) <-chan ports.SignEvent {
	events := make(chan ports.SignEvent)

	go func() {
		defer close(events)

		if err := b.CheckValidTransaction(account, tx); err != nil {
			select {
			case events <- ports.SignEvent{Err: err}:
			case <-ctx.Done():
			}
			return
		}

		txID := randstr.Hex(32)
		select {
		case events <- ports.SignEvent{Type: ports.SignEventSigned, TxID: txID}:
		case <-ctx.Done():
			return
		}
		select {
		case events <- ports.SignEvent{Type: ports.SignEventBroadcast, TxID: txID}:
		case <-ctx.Done():
		}
	}()

	return events
}

type transaction struct {
	amount    decimal.Decimal
	recipient string
	fee       *decimal.Decimal
}

func (t transaction) Amount() decimal.Decimal {
	return t.amount
}

func (t transaction) Recipient() string {
	return t.recipient
}

func (t transaction) Fee() *decimal.Decimal {
	return t.fee
}

func fakeAccount(currency domain.Currency, index int) domain.Account {
	address := randstr.Hex(17)
	return domain.Account{
		ID:                domain.NewAccountID(BridgeType, currency.ID, address, ""),
		SeedIdentifier:    uuid.NewString(),
		Index:             index,
		FreshAddress:      address,
		FreshAddressPath:  fmt.Sprintf("44'/1'/%d'/0/0", index),
		Name:              "Mock account",
		Balance:           decimal.NewFromInt(int64(1000 * (index + 1))),
		Currency:          currency,
		Operations:        []domain.Operation{},
		PendingOperations: []domain.Operation{},
		Unit:              currency.DefaultUnit(),
		LastSyncDate:      time.Now().UTC(),
	}
}
