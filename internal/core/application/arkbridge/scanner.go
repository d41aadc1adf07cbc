package arkbridge

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/orbit-wallet/wallet-daemon/internal/core/domain"
	"github.com/orbit-wallet/wallet-daemon/internal/core/ports"
	"github.com/orbit-wallet/wallet-daemon/pkg/chain"
	"github.com/orbit-wallet/wallet-daemon/pkg/device"
)

func (b *bridge) ScanAccountsOnDevice(
	ctx context.Context, currency domain.Currency, deviceID string,
) <-chan ports.ScanEvent {
	events := make(chan ports.ScanEvent)

	go func() {
		defer close(events)

		signer, err := b.signerFactory(deviceID)
		if err != nil {
			emitScan(ctx, events, ports.ScanEvent{Err: err})
			return
		}
		client, err := b.chainClient("")
		if err != nil {
			emitScan(ctx, events, ports.ScanEvent{Err: err})
			return
		}

		for _, mode := range currency.DerivationModes {
			if err := b.scanDerivationMode(ctx, events, client, signer, currency, mode); err != nil {
				if !errors.Is(err, context.Canceled) {
					emitScan(ctx, events, ports.ScanEvent{Err: err})
				}
				return
			}
		}
	}()

	return events
}

// scanDerivationMode walks the indices of one derivation mode. It returns
// context.Canceled once cancellation is observed, and stops at the first
// address with no on-chain history (gap-stop heuristic).
func (b *bridge) scanDerivationMode(
	ctx context.Context,
	events chan<- ports.ScanEvent,
	client chain.Client,
	signer device.Signer,
	currency domain.Currency,
	mode domain.DerivationMode,
) error {
	for index := 0; index < mode.ScanCap(); index++ {
		if !mode.SupportsIndex(index) {
			continue
		}
		if ctx.Err() != nil {
			return context.Canceled
		}

		path := mode.RunScheme(index)
		address, err := signer.DeriveAddress(path)
		if err != nil {
			return err
		}

		if err := b.scanLimiter.Wait(ctx); err != nil {
			return context.Canceled
		}
		wallet, err := client.GetWallet(address)
		if err != nil {
			if errors.Is(err, chain.ErrWalletNotFound) {
				// Unused address: emit one placeholder for the default
				// mode and stop scanning further indices of this mode.
				if mode.IsDefault() {
					account := newScannedAccount(currency, mode, index, address, path)
					account.Name = newAccountName(currency, index)
					if !emitScan(ctx, events, ports.ScanEvent{Account: &account}) {
						return context.Canceled
					}
				}
				return nil
			}
			return err
		}

		if ctx.Err() != nil {
			return context.Canceled
		}
		txs, err := client.GetTransactions(address, 0)
		if err != nil {
			return err
		}

		account := newScannedAccount(currency, mode, index, address, path)
		account.Name = accountName(currency, index)
		account.Balance = wallet.Balance

		incoming := make([]domain.Operation, 0, len(txs))
		for _, tx := range txs {
			incoming = append(incoming, txToOperation(account, tx))
		}
		account.Operations = domain.MergeOperations(nil, incoming)
		if len(account.Operations) > 0 {
			account.BlockHeight = account.Operations[0].BlockHeight
		}

		log.WithFields(log.Fields{
			"account":    account.ID,
			"operations": len(account.Operations),
		}).Debug("scanned account on device")

		if !emitScan(ctx, events, ports.ScanEvent{Account: &account}) {
			return context.Canceled
		}
	}
	return nil
}

func newScannedAccount(
	currency domain.Currency, mode domain.DerivationMode, index int, address, path string,
) domain.Account {
	return domain.Account{
		ID:                domain.NewAccountID(BridgeType, currency.ID, address, mode.Name),
		SeedIdentifier:    address,
		DerivationMode:    mode.Name,
		Index:             index,
		FreshAddress:      address,
		FreshAddressPath:  path,
		Currency:          currency,
		Operations:        []domain.Operation{},
		PendingOperations: []domain.Operation{},
		Unit:              currency.DefaultUnit(),
		LastSyncDate:      time.Now().UTC(),
	}
}

func accountName(currency domain.Currency, index int) string {
	return fmt.Sprintf("%s %d", currency.Name, index+1)
}

func newAccountName(currency domain.Currency, index int) string {
	return fmt.Sprintf("New %s account", currency.Name)
}

// emitScan delivers an event unless cancellation wins first. It reports
// whether the event was delivered.
func emitScan(ctx context.Context, events chan<- ports.ScanEvent, event ports.ScanEvent) bool {
	select {
	case events <- event:
		return true
	case <-ctx.Done():
		return false
	}
}
