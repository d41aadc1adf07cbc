package config

import "github.com/orbit-wallet/wallet-daemon/internal/core/domain"

// The derivation mode catalog per currency is configuration data consumed by
// account discovery, not computed by the core.

// Ark is the descriptor of the ark mainnet currency.
var Ark = domain.Currency{
	ID:     "ark",
	Family: "ark",
	Name:   "Ark",
	Ticker: "ARK",
	Units: []domain.Unit{
		{Name: "ARK", Code: "ARK", Magnitude: 8},
		{Name: "arktoshi", Code: "arktoshi", Magnitude: 0},
	},
	DerivationModes: []domain.DerivationMode{
		{
			// default mode
			Name:     "",
			Scheme:   "44'/111'/<account>'/0/0",
			Iterable: true,
		},
	},
}

// Currencies lists every currency supported by this daemon.
var Currencies = []domain.Currency{Ark}

// GetCurrency returns the currency with the given id.
func GetCurrency(id string) (domain.Currency, bool) {
	for _, currency := range Currencies {
		if currency.ID == id {
			return currency, true
		}
	}
	return domain.Currency{}, false
}
