package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/orbit-wallet/wallet-daemon/config"
	"github.com/orbit-wallet/wallet-daemon/internal/core/application"
	"github.com/orbit-wallet/wallet-daemon/internal/core/application/arkbridge"
	"github.com/orbit-wallet/wallet-daemon/internal/core/ports"
	"github.com/orbit-wallet/wallet-daemon/internal/infrastructure/storage/dbbadger"
	"github.com/orbit-wallet/wallet-daemon/pkg/chain"
	"github.com/orbit-wallet/wallet-daemon/pkg/chain/arkio"
	"github.com/orbit-wallet/wallet-daemon/pkg/device"
	"github.com/orbit-wallet/wallet-daemon/pkg/device/softsigner"
)

func main() {
	app := cli.NewApp()

	app.Version = "0.1.0"
	app.Name = "wallet operator CLI"
	app.Usage = "Command line interface for wallet-daemon operators"
	app.Commands = append(
		app.Commands,
		&scan,
		&syncaccounts,
		&balance,
		&send,
		&fees,
	)

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[wallet] %v\n", err)
	os.Exit(1)
}

type services struct {
	registry   *application.BridgeRegistry
	repository ports.AccountRepository
	cleanup    func()
}

func getServices() (*services, error) {
	dbDir := filepath.Join(config.GetDatadir(), config.DbLocation)
	store, err := dbbadger.NewAccountStore(dbDir, nil)
	if err != nil {
		return nil, err
	}

	registry := application.NewBridgeRegistry(application.RegistryOpts{
		UseMockBridge: config.GetBool(config.UseMockBridgeKey),
	})

	opts := arkbridge.ServiceOpts{
		ChainClientFactory: func(endpoint string) (chain.Client, error) {
			return arkio.NewService(endpoint)
		},
		SignerFactory: func(deviceID string) (device.Signer, error) {
			return softsigner.NewSigner(softsigner.NewSignerOpts{
				Mnemonic:       config.GetMnemonic(),
				AddressVersion: config.GetAddressVersion(),
			})
		},
		Endpoint:       config.GetString(config.ChainEndpointKey),
		AddressVersion: config.GetAddressVersion(),
	}
	currencyBridge, err := arkbridge.NewCurrencyBridge(opts)
	if err != nil {
		store.Close()
		return nil, err
	}
	accountBridge, err := arkbridge.NewAccountBridge(opts)
	if err != nil {
		store.Close()
		return nil, err
	}
	if err := registry.RegisterBridge(config.Ark.Family, currencyBridge, accountBridge); err != nil {
		store.Close()
		return nil, err
	}

	return &services{
		registry:   registry,
		repository: dbbadger.NewAccountRepositoryImpl(store),
		cleanup:    func() { store.Close() },
	}, nil
}

func formatDate(date time.Time) string {
	return date.Format(time.RFC3339)
}
