package arkbridge_test

import (
	"bytes"

	"github.com/shopspring/decimal"

	"github.com/orbit-wallet/wallet-daemon/internal/core/application/arkbridge"
	"github.com/orbit-wallet/wallet-daemon/internal/core/domain"
	"github.com/orbit-wallet/wallet-daemon/internal/core/ports"
	"github.com/orbit-wallet/wallet-daemon/pkg/arkutil"
	"github.com/orbit-wallet/wallet-daemon/pkg/chain"
	"github.com/orbit-wallet/wallet-daemon/pkg/device"
)

var (
	accountPubKey    = fakePubKey(0x11)
	accountAddress   = mustAddress(accountPubKey)
	recipientAddress = mustAddress(fakePubKey(0x22))
	secondAddress    = mustAddress(fakePubKey(0x33))

	arkCurrency = domain.Currency{
		ID:     "ark",
		Family: "ark",
		Name:   "Ark",
		Ticker: "ARK",
		Units: []domain.Unit{
			{Name: "ARK", Code: "ARK", Magnitude: 8},
			{Name: "arktoshi", Code: "arktoshi", Magnitude: 0},
		},
		DerivationModes: []domain.DerivationMode{
			{Scheme: "44'/111'/<account>'/0/0", Iterable: true},
		},
	}
)

func fakePubKey(filler byte) []byte {
	return append([]byte{0x03}, bytes.Repeat([]byte{filler}, 32)...)
}

func mustAddress(pubKey []byte) string {
	address, err := arkutil.AddressFromPublicKey(pubKey, arkutil.MainnetVersion)
	if err != nil {
		panic(err)
	}
	return address
}

func newTestOpts(client *mockChainClient, signer *mockSigner) arkbridge.ServiceOpts {
	return arkbridge.ServiceOpts{
		ChainClientFactory: func(endpoint string) (chain.Client, error) {
			return client, nil
		},
		SignerFactory: func(deviceID string) (device.Signer, error) {
			return signer, nil
		},
	}
}

func newTestAccountBridge(client *mockChainClient, signer *mockSigner) ports.AccountBridge {
	bridge, err := arkbridge.NewAccountBridge(newTestOpts(client, signer))
	if err != nil {
		panic(err)
	}
	return bridge
}

func newTestAccount(balance int64) domain.Account {
	return domain.Account{
		ID:                domain.NewAccountID(arkbridge.BridgeType, arkCurrency.ID, accountAddress, ""),
		SeedIdentifier:    accountAddress,
		Index:             0,
		FreshAddress:      accountAddress,
		FreshAddressPath:  "44'/111'/0'/0/0",
		Name:              "Ark 1",
		Balance:           decimal.NewFromInt(balance),
		Currency:          arkCurrency,
		Operations:        []domain.Operation{},
		PendingOperations: []domain.Operation{},
		Unit:              arkCurrency.DefaultUnit(),
	}
}
