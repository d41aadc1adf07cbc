// Package arkbridge implements the currency and account bridge contracts for
// the ark family on top of the ark public REST API and the ark device app.
package arkbridge

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/orbit-wallet/wallet-daemon/internal/core/ports"
	"github.com/orbit-wallet/wallet-daemon/pkg/arkutil"
	"github.com/orbit-wallet/wallet-daemon/pkg/chain"
)

const (
	// BridgeType tags account ids handled by this bridge.
	BridgeType = "ark"

	defaultEndpoint = "https://api.ark.io"

	// scanQueryInterval paces chain queries during account discovery so a
	// deep scan does not hammer the public endpoint.
	scanQueryInterval = 200 * time.Millisecond
)

var (
	// ErrNullChainClientFactory ...
	ErrNullChainClientFactory = errors.New("chain client factory must not be null")
	// ErrNullSignerFactory ...
	ErrNullSignerFactory = errors.New("signer factory must not be null")
)

type bridge struct {
	chainClientFactory ports.ChainClientFactory
	signerFactory      ports.SignerFactory
	defaultEndpoint    string
	addressVersion     byte
	scanLimiter        *rate.Limiter
}

// ServiceOpts is the struct given to the NewCurrencyBridge and
// NewAccountBridge methods.
type ServiceOpts struct {
	ChainClientFactory ports.ChainClientFactory
	SignerFactory      ports.SignerFactory
	// Endpoint overrides the default public API endpoint.
	Endpoint string
	// AddressVersion is the base58check version byte of the target
	// network. Zero selects mainnet.
	AddressVersion byte
}

func (o ServiceOpts) validate() error {
	if o.ChainClientFactory == nil {
		return ErrNullChainClientFactory
	}
	if o.SignerFactory == nil {
		return ErrNullSignerFactory
	}
	return nil
}

func newBridge(opts ServiceOpts) (*bridge, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	addressVersion := opts.AddressVersion
	if addressVersion == 0 {
		addressVersion = arkutil.MainnetVersion
	}

	return &bridge{
		chainClientFactory: opts.ChainClientFactory,
		signerFactory:      opts.SignerFactory,
		defaultEndpoint:    endpoint,
		addressVersion:     addressVersion,
		scanLimiter:        rate.NewLimiter(rate.Every(scanQueryInterval), 1),
	}, nil
}

// NewCurrencyBridge returns the ark implementation of ports.CurrencyBridge.
func NewCurrencyBridge(opts ServiceOpts) (ports.CurrencyBridge, error) {
	return newBridge(opts)
}

// NewAccountBridge returns the ark implementation of ports.AccountBridge.
func NewAccountBridge(opts ServiceOpts) (ports.AccountBridge, error) {
	return newBridge(opts)
}

// chainClient resolves the chain API client for an account, honoring its
// endpoint override.
func (b *bridge) chainClient(endpointConfig string) (chain.Client, error) {
	endpoint := endpointConfig
	if endpoint == "" {
		endpoint = b.defaultEndpoint
	}
	client, err := b.chainClientFactory(endpoint)
	if err != nil {
		return nil, fmt.Errorf("chain client for %s: %w", endpoint, err)
	}
	return client, nil
}
