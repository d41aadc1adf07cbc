package mockbridge_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/orbit-wallet/wallet-daemon/internal/core/application/mockbridge"
	"github.com/orbit-wallet/wallet-daemon/internal/core/domain"
	"github.com/orbit-wallet/wallet-daemon/internal/core/ports"
)

var testCurrency = domain.Currency{
	ID:     "ark",
	Family: "ark",
	Name:   "Ark",
	Units:  []domain.Unit{{Name: "ARK", Code: "ARK", Magnitude: 8}},
}

func TestScanAccountsOnDevice(t *testing.T) {
	t.Parallel()

	bridge := mockbridge.NewCurrencyBridge()

	accounts := make([]*domain.Account, 0)
	for event := range bridge.ScanAccountsOnDevice(context.Background(), testCurrency, "dev") {
		require.NoError(t, event.Err)
		accounts = append(accounts, event.Account)
	}

	require.Len(t, accounts, 3)
	for i, account := range accounts {
		require.Equal(t, i, account.Index)
		parts, err := domain.DecodeAccountID(account.ID)
		require.NoError(t, err)
		require.Equal(t, mockbridge.BridgeType, parts.Type)
	}
}

func TestSynchronize(t *testing.T) {
	t.Parallel()

	bridge := mockbridge.NewAccountBridge()
	account := domain.Account{
		ID: domain.NewAccountID(mockbridge.BridgeType, testCurrency.ID, "addr", ""),
	}

	patched := account
	for event := range bridge.Synchronize(context.Background(), account) {
		require.NoError(t, event.Err)
		patched = event.Patch(patched)
	}
	require.False(t, patched.LastSyncDate.IsZero())
}

func TestSignAndBroadcast(t *testing.T) {
	t.Parallel()

	bridge := mockbridge.NewAccountBridge()
	account := domain.Account{
		ID:           domain.NewAccountID(mockbridge.BridgeType, testCurrency.ID, "addr", ""),
		FreshAddress: "addr",
		Balance:      decimal.NewFromInt(1000),
	}

	tx := bridge.CreateTransaction(account)
	tx = bridge.EditTransactionAmount(account, tx, decimal.NewFromInt(100))
	tx = bridge.EditTransactionRecipient(account, tx, "other")
	tx = bridge.EditTransactionFee(account, tx, decimal.NewFromInt(5))
	require.NoError(t, bridge.CheckValidTransaction(account, tx))

	events := make([]ports.SignEvent, 0)
	for event := range bridge.SignAndBroadcast(context.Background(), account, tx, "dev") {
		require.NoError(t, event.Err)
		events = append(events, event)
	}

	require.Len(t, events, 2)
	require.Equal(t, ports.SignEventSigned, events[0].Type)
	require.Equal(t, ports.SignEventBroadcast, events[1].Type)
	require.Equal(t, events[0].TxID, events[1].TxID)
}
