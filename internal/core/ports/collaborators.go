package ports

import (
	"context"
	"errors"

	"github.com/orbit-wallet/wallet-daemon/internal/core/domain"
	"github.com/orbit-wallet/wallet-daemon/pkg/chain"
	"github.com/orbit-wallet/wallet-daemon/pkg/device"
)

var (
	// ErrAccountNotFound is returned by the account repository when the
	// requested account is not in the store.
	ErrAccountNotFound = errors.New("account not found")
)

// ChainClientFactory returns a chain API client for the given endpoint. An
// empty endpoint selects the bridge's default one.
type ChainClientFactory func(endpoint string) (chain.Client, error)

// SignerFactory returns the signer session of the device identified by
// deviceID.
type SignerFactory func(deviceID string) (device.Signer, error)

// AccountRepository is the contract of the store owning the accounts. It is
// the consumer of the patches emitted by the bridges and applies them
// atomically.
type AccountRepository interface {
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	SaveAccount(ctx context.Context, account domain.Account) error
	// UpdateAccount applies the given patches to the stored account in a
	// single transaction.
	UpdateAccount(ctx context.Context, id string, patches ...domain.Patch) error
	DeleteAccount(ctx context.Context, id string) error
}
