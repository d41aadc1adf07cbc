package arkbridge

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/orbit-wallet/wallet-daemon/internal/core/domain"
	"github.com/orbit-wallet/wallet-daemon/internal/core/ports"
	"github.com/orbit-wallet/wallet-daemon/pkg/chain"
)

func (b *bridge) Synchronize(
	ctx context.Context, account domain.Account,
) <-chan ports.SyncEvent {
	events := make(chan ports.SyncEvent)

	go func() {
		defer close(events)

		client, err := b.chainClient(account.EndpointConfig)
		if err != nil {
			emitSync(ctx, events, ports.SyncEvent{Err: err})
			return
		}

		if ctx.Err() != nil {
			return
		}
		wallet, err := client.GetWallet(account.FreshAddress)
		if err != nil {
			if errors.Is(err, chain.ErrWalletNotFound) {
				// The account never existed on-chain, nothing to sync.
				return
			}
			emitSync(ctx, events, ports.SyncEvent{Err: err})
			return
		}

		balance := wallet.Balance
		if !emitSync(ctx, events, ports.SyncEvent{Patch: func(a domain.Account) domain.Account {
			a.Balance = balance
			return a
		}}) {
			return
		}

		if ctx.Err() != nil {
			return
		}
		txs, err := client.GetTransactions(account.FreshAddress, account.BlockHeight)
		if err != nil {
			emitSync(ctx, events, ports.SyncEvent{Err: err})
			return
		}

		log.WithFields(log.Fields{
			"account": account.ID,
			"fetched": len(txs),
		}).Debug("synchronized account")

		now := time.Now().UTC()
		emitSync(ctx, events, ports.SyncEvent{Patch: func(a domain.Account) domain.Account {
			incoming := make([]domain.Operation, 0, len(txs))
			for _, tx := range txs {
				incoming = append(incoming, txToOperation(a, tx))
			}

			operations := domain.MergeOperations(a.Operations, incoming)
			a.Operations = operations
			a.PendingOperations = domain.ReconcilePending(a.PendingOperations, operations)
			if len(operations) > 0 {
				a.BlockHeight = operations[0].BlockHeight
			}
			a.LastSyncDate = now
			return a
		}})
	}()

	return events
}

// PullMoreOperations is an identity patch for the ark family: the public API
// always returns the full history, so Synchronize already covers it.
func (b *bridge) PullMoreOperations(
	ctx context.Context, account domain.Account,
) (domain.Patch, error) {
	return func(a domain.Account) domain.Account { return a }, nil
}

// emitSync delivers an event unless cancellation wins first. It reports
// whether the event was delivered.
func emitSync(ctx context.Context, events chan<- ports.SyncEvent, event ports.SyncEvent) bool {
	select {
	case events <- event:
		return true
	case <-ctx.Done():
		return false
	}
}
