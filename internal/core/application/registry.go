package application

import (
	"errors"
	"fmt"

	"github.com/orbit-wallet/wallet-daemon/internal/core/application/mockbridge"
	"github.com/orbit-wallet/wallet-daemon/internal/core/domain"
	"github.com/orbit-wallet/wallet-daemon/internal/core/ports"
)

var (
	// ErrNullBridge ...
	ErrNullBridge = errors.New("bridge implementation must not be null")
)

// BridgeRegistry routes a currency or an account to its concrete bridge
// implementation. Routing is a pure lookup keyed by currency family; account
// routing additionally honors the bridge type tag embedded in the account id.
type BridgeRegistry struct {
	currencyBridges map[string]ports.CurrencyBridge
	accountBridges  map[string]ports.AccountBridge
	mockCurrency    ports.CurrencyBridge
	mockAccount     ports.AccountBridge
	useMock         bool
}

// RegistryOpts is the struct given to the NewBridgeRegistry method.
type RegistryOpts struct {
	// UseMockBridge substitutes the mock bridges process-wide. It is an
	// explicit configuration switch meant for testing.
	UseMockBridge bool
}

// NewBridgeRegistry returns an empty registry. Bridges are registered per
// currency family with RegisterBridge.
func NewBridgeRegistry(opts RegistryOpts) *BridgeRegistry {
	return &BridgeRegistry{
		currencyBridges: map[string]ports.CurrencyBridge{},
		accountBridges:  map[string]ports.AccountBridge{},
		mockCurrency:    mockbridge.NewCurrencyBridge(),
		mockAccount:     mockbridge.NewAccountBridge(),
		useMock:         opts.UseMockBridge,
	}
}

// RegisterBridge binds a currency family to its bridge implementations.
func (r *BridgeRegistry) RegisterBridge(
	family string, currencyBridge ports.CurrencyBridge, accountBridge ports.AccountBridge,
) error {
	if currencyBridge == nil || accountBridge == nil {
		return ErrNullBridge
	}
	r.currencyBridges[family] = currencyBridge
	r.accountBridges[family] = accountBridge
	return nil
}

// GetCurrencyBridge resolves the currency bridge for the given currency.
func (r *BridgeRegistry) GetCurrencyBridge(currency domain.Currency) (ports.CurrencyBridge, error) {
	if r.useMock {
		return r.mockCurrency, nil
	}
	bridge, ok := r.currencyBridges[currency.Family]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCurrencyNotSupported, currency.Name)
	}
	return bridge, nil
}

// GetAccountBridge resolves the account bridge for the given account.
func (r *BridgeRegistry) GetAccountBridge(account domain.Account) (ports.AccountBridge, error) {
	parts, err := domain.DecodeAccountID(account.ID)
	if err != nil {
		return nil, err
	}
	if r.useMock || parts.Type == mockbridge.BridgeType {
		return r.mockAccount, nil
	}

	bridge, ok := r.accountBridges[account.Currency.Family]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCurrencyNotSupported, account.Currency.Name)
	}
	return bridge, nil
}
