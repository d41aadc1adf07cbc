package application

import (
	"context"
	"errors"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/orbit-wallet/wallet-daemon/internal/core/domain"
	"github.com/orbit-wallet/wallet-daemon/internal/core/ports"
)

var (
	// ErrNullRegistry ...
	ErrNullRegistry = errors.New("bridge registry must not be null")
	// ErrNullRepository ...
	ErrNullRepository = errors.New("account repository must not be null")
	// ErrInvalidInterval ...
	ErrInvalidInterval = errors.New("sync interval must be positive")
)

// Syncer periodically synchronizes every stored account through its bridge,
// applying the emitted patches to the account store as they arrive. Accounts
// synchronize concurrently as independent tasks.
type Syncer struct {
	registry   *BridgeRegistry
	repository ports.AccountRepository
	interval   time.Duration
}

// SyncerOpts is the struct given to the NewSyncer method.
type SyncerOpts struct {
	Registry   *BridgeRegistry
	Repository ports.AccountRepository
	Interval   time.Duration
}

func (o SyncerOpts) validate() error {
	if o.Registry == nil {
		return ErrNullRegistry
	}
	if o.Repository == nil {
		return ErrNullRepository
	}
	if o.Interval <= 0 {
		return ErrInvalidInterval
	}
	return nil
}

// NewSyncer returns a Syncer ready to be started.
func NewSyncer(opts SyncerOpts) (*Syncer, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Syncer{
		registry:   opts.Registry,
		repository: opts.Repository,
		interval:   opts.Interval,
	}, nil
}

// Start runs sync rounds at the configured interval until ctx is cancelled.
func (s *Syncer) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.syncAll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.syncAll(ctx)
		}
	}
}

func (s *Syncer) syncAll(ctx context.Context) {
	accounts, err := s.repository.ListAccounts(ctx)
	if err != nil {
		log.WithError(err).Error("failed to list accounts for sync round")
		return
	}

	wg := &sync.WaitGroup{}
	for _, account := range accounts {
		if account.Archived {
			continue
		}
		wg.Add(1)
		go func(account domain.Account) {
			defer wg.Done()
			s.SyncAccount(ctx, account)
		}(account)
	}
	wg.Wait()
}

// SyncAccount runs one synchronization for the given account, applying each
// emitted patch to the store as soon as it arrives so that partial progress
// is never lost.
func (s *Syncer) SyncAccount(ctx context.Context, account domain.Account) {
	bridge, err := s.registry.GetAccountBridge(account)
	if err != nil {
		log.WithError(err).WithField("account", account.ID).Warn("no bridge for account")
		return
	}

	for event := range bridge.Synchronize(ctx, account) {
		if event.Err != nil {
			log.WithError(event.Err).WithField("account", account.ID).Warn("sync failed")
			return
		}
		if event.Patch == nil {
			continue
		}
		if err := s.repository.UpdateAccount(ctx, account.ID, event.Patch); err != nil {
			log.WithError(err).WithField("account", account.ID).Error("failed to apply sync patch")
			return
		}
	}
}
