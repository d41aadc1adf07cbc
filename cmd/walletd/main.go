package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

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
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	dbDir := filepath.Join(config.GetDatadir(), config.DbLocation)
	store, err := dbbadger.NewAccountStore(dbDir, nil)
	if err != nil {
		log.WithError(err).Panic("error while opening account db")
	}
	defer store.Close()

	accountRepository := dbbadger.NewAccountRepositoryImpl(store)
	registry, err := buildRegistry()
	if err != nil {
		log.WithError(err).Panic("error while building bridge registry")
	}

	syncer, err := application.NewSyncer(application.SyncerOpts{
		Registry:   registry,
		Repository: accountRepository,
		Interval:   time.Duration(config.GetInt(config.SyncIntervalKey)) * time.Second,
	})
	if err != nil {
		log.WithError(err).Panic("error while creating syncer")
	}

	ctx, cancel := context.WithCancel(context.Background())
	go syncer.Start(ctx)

	log.Info("daemon started")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan

	cancel()
	log.Info("exiting")
}

func buildRegistry() (*application.BridgeRegistry, error) {
	registry := application.NewBridgeRegistry(application.RegistryOpts{
		UseMockBridge: config.GetBool(config.UseMockBridgeKey),
	})

	opts := arkbridge.ServiceOpts{
		ChainClientFactory: chainClientFactory(),
		SignerFactory:      signerFactory(),
		Endpoint:           config.GetString(config.ChainEndpointKey),
		AddressVersion:     config.GetAddressVersion(),
	}
	currencyBridge, err := arkbridge.NewCurrencyBridge(opts)
	if err != nil {
		return nil, err
	}
	accountBridge, err := arkbridge.NewAccountBridge(opts)
	if err != nil {
		return nil, err
	}
	if err := registry.RegisterBridge(config.Ark.Family, currencyBridge, accountBridge); err != nil {
		return nil, err
	}

	return registry, nil
}

// chainClientFactory caches one client per endpoint so the circuit breaker
// state is shared across invocations.
func chainClientFactory() ports.ChainClientFactory {
	mtx := &sync.Mutex{}
	clients := map[string]chain.Client{}
	return func(endpoint string) (chain.Client, error) {
		mtx.Lock()
		defer mtx.Unlock()

		if client, ok := clients[endpoint]; ok {
			return client, nil
		}
		client, err := arkio.NewService(endpoint)
		if err != nil {
			return nil, err
		}
		clients[endpoint] = client
		return client, nil
	}
}

func signerFactory() ports.SignerFactory {
	return func(deviceID string) (device.Signer, error) {
		return softsigner.NewSigner(softsigner.NewSignerOpts{
			Mnemonic:       config.GetMnemonic(),
			AddressVersion: config.GetAddressVersion(),
		})
	}
}
