package application_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orbit-wallet/wallet-daemon/internal/core/application"
	"github.com/orbit-wallet/wallet-daemon/internal/core/application/arkbridge"
	"github.com/orbit-wallet/wallet-daemon/internal/core/application/mockbridge"
	"github.com/orbit-wallet/wallet-daemon/internal/core/domain"
	"github.com/orbit-wallet/wallet-daemon/internal/core/ports"
	"github.com/orbit-wallet/wallet-daemon/pkg/chain"
	"github.com/orbit-wallet/wallet-daemon/pkg/device"
)

var arkCurrency = domain.Currency{
	ID:     "ark",
	Family: "ark",
	Name:   "Ark",
	Ticker: "ARK",
	Units:  []domain.Unit{{Name: "ARK", Code: "ARK", Magnitude: 8}},
	DerivationModes: []domain.DerivationMode{
		{Scheme: "44'/111'/<account>'/0/0", Iterable: true},
	},
}

func newArkBridges(t *testing.T) (ports.CurrencyBridge, ports.AccountBridge) {
	t.Helper()

	opts := arkbridge.ServiceOpts{
		ChainClientFactory: func(endpoint string) (chain.Client, error) {
			return nil, nil
		},
		SignerFactory: func(deviceID string) (device.Signer, error) {
			return nil, nil
		},
	}
	currencyBridge, err := arkbridge.NewCurrencyBridge(opts)
	require.NoError(t, err)
	accountBridge, err := arkbridge.NewAccountBridge(opts)
	require.NoError(t, err)
	return currencyBridge, accountBridge
}

func TestRegistryRoutesByFamily(t *testing.T) {
	t.Parallel()

	currencyBridge, accountBridge := newArkBridges(t)

	registry := application.NewBridgeRegistry(application.RegistryOpts{})
	require.NoError(t, registry.RegisterBridge(arkCurrency.Family, currencyBridge, accountBridge))

	resolved, err := registry.GetCurrencyBridge(arkCurrency)
	require.NoError(t, err)
	require.Equal(t, currencyBridge, resolved)

	account := domain.Account{
		ID:       domain.NewAccountID(arkbridge.BridgeType, arkCurrency.ID, "addr", ""),
		Currency: arkCurrency,
	}
	resolvedAccount, err := registry.GetAccountBridge(account)
	require.NoError(t, err)
	require.Equal(t, accountBridge, resolvedAccount)
}

func TestRegistryUnknownFamily(t *testing.T) {
	t.Parallel()

	registry := application.NewBridgeRegistry(application.RegistryOpts{})

	unknown := domain.Currency{ID: "doge", Family: "doge", Name: "Dogecoin"}
	bridge, err := registry.GetCurrencyBridge(unknown)
	require.ErrorIs(t, err, domain.ErrCurrencyNotSupported)
	require.Contains(t, err.Error(), "Dogecoin")
	require.Nil(t, bridge)

	account := domain.Account{
		ID:       domain.NewAccountID("doge", "doge", "addr", ""),
		Currency: unknown,
	}
	accountBridge, err := registry.GetAccountBridge(account)
	require.ErrorIs(t, err, domain.ErrCurrencyNotSupported)
	require.Nil(t, accountBridge)
}

func TestRegistryMalformedAccountID(t *testing.T) {
	t.Parallel()

	registry := application.NewBridgeRegistry(application.RegistryOpts{})

	bridge, err := registry.GetAccountBridge(domain.Account{ID: "garbage"})
	require.ErrorIs(t, err, domain.ErrMalformedAccountID)
	require.Nil(t, bridge)
}

func TestRegistryMockSwitch(t *testing.T) {
	t.Parallel()

	currencyBridge, accountBridge := newArkBridges(t)

	registry := application.NewBridgeRegistry(application.RegistryOpts{UseMockBridge: true})
	require.NoError(t, registry.RegisterBridge(arkCurrency.Family, currencyBridge, accountBridge))

	resolved, err := registry.GetCurrencyBridge(arkCurrency)
	require.NoError(t, err)
	require.NotEqual(t, currencyBridge, resolved)

	account := domain.Account{
		ID:       domain.NewAccountID(arkbridge.BridgeType, arkCurrency.ID, "addr", ""),
		Currency: arkCurrency,
	}
	resolvedAccount, err := registry.GetAccountBridge(account)
	require.NoError(t, err)
	require.NotEqual(t, accountBridge, resolvedAccount)
}

func TestRegistryRoutesMockAccounts(t *testing.T) {
	t.Parallel()

	currencyBridge, accountBridge := newArkBridges(t)

	// Even without the process-wide switch, accounts tagged as mock are
	// routed to the mock bridge.
	registry := application.NewBridgeRegistry(application.RegistryOpts{})
	require.NoError(t, registry.RegisterBridge(arkCurrency.Family, currencyBridge, accountBridge))

	account := domain.Account{
		ID:       domain.NewAccountID(mockbridge.BridgeType, arkCurrency.ID, "addr", ""),
		Currency: arkCurrency,
	}
	resolved, err := registry.GetAccountBridge(account)
	require.NoError(t, err)
	require.NotEqual(t, accountBridge, resolved)
}

func TestFailingRegisterBridge(t *testing.T) {
	t.Parallel()

	currencyBridge, accountBridge := newArkBridges(t)

	registry := application.NewBridgeRegistry(application.RegistryOpts{})
	require.ErrorIs(t, registry.RegisterBridge("ark", nil, accountBridge), application.ErrNullBridge)
	require.ErrorIs(t, registry.RegisterBridge("ark", currencyBridge, nil), application.ErrNullBridge)
}
