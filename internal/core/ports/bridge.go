package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/orbit-wallet/wallet-daemon/internal/core/domain"
)

// Transaction is an in-progress transfer being edited by the consumer. Each
// currency family defines its own concrete shape; values are immutable and
// every edit returns a new one. Consumers must pass the latest value back on
// the next call.
type Transaction interface {
	Amount() decimal.Decimal
	Recipient() string
	Fee() *decimal.Decimal
}

// ScanEvent is emitted by account discovery. Either Account is set, or Err
// carries the terminal failure of the scan. The channel is closed once the
// scan completes, fails or is cancelled.
type ScanEvent struct {
	Account *domain.Account
	Err     error
}

// SyncEvent is emitted during an account synchronization. Either Patch is
// set, or Err carries the terminal failure. Patches already emitted remain
// valid when a later event fails.
type SyncEvent struct {
	Patch domain.Patch
	Err   error
}

// SignEventType enumerates the milestones of a sign-and-broadcast flow.
type SignEventType int

const (
	// SignEventSigned is emitted once the device returned a signature and
	// the signed payload has been assembled.
	SignEventSigned SignEventType = iota
	// SignEventBroadcast is emitted once the network accepted the
	// transaction. From this point on the effect is irreversible.
	SignEventBroadcast
)

// SignEvent is emitted during a sign-and-broadcast flow. On broadcast it
// describes the pending operation the store should append to the account.
type SignEvent struct {
	Type             SignEventType
	TxID             string
	PendingOperation *domain.Operation
	Err              error
}

// CurrencyBridge is the per-currency-family contract for operations that are
// not tied to an existing account.
type CurrencyBridge interface {
	// ScanAccountsOnDevice walks the derivation modes of the currency and
	// emits the accounts found on the device, incrementally. It stops
	// scanning a mode once an address with no on-chain history is found.
	// The producer checks ctx before every device round-trip and chain
	// query and emits nothing after cancellation is observed.
	ScanAccountsOnDevice(ctx context.Context, currency domain.Currency, deviceID string) <-chan ScanEvent
}

// AccountBridge is the per-currency-family contract for synchronizing an
// account and building, validating, signing and broadcasting transactions.
type AccountBridge interface {
	// Synchronize emits patches bringing the account state up to date with
	// the chain. An account that never existed on-chain completes with
	// zero patches.
	Synchronize(ctx context.Context, account domain.Account) <-chan SyncEvent
	// PullMoreOperations fetches history older than what Synchronize
	// covers. Bridges whose chain API always returns the full history
	// return an identity patch.
	PullMoreOperations(ctx context.Context, account domain.Account) (domain.Patch, error)

	CreateTransaction(account domain.Account) Transaction
	EditTransactionAmount(account domain.Account, tx Transaction, amount decimal.Decimal) Transaction
	EditTransactionRecipient(account domain.Account, tx Transaction, recipient string) Transaction
	EditTransactionFee(account domain.Account, tx Transaction, fee decimal.Decimal) Transaction
	// EditTransactionExtra sets a currency-specific field like a memo or
	// vendor field. Unknown fields leave the transaction unchanged.
	EditTransactionExtra(account domain.Account, tx Transaction, field, value string) Transaction

	// IsRecipientValid reports whether recipient is a well-formed address
	// the account can send to. Self-sends are rejected for families whose
	// chain disallows them.
	IsRecipientValid(account domain.Account, recipient string) bool
	// GetRecipientWarning returns a non-fatal advisory for the recipient,
	// like domain.ErrDestinationIsSource, or nil.
	GetRecipientWarning(account domain.Account, recipient string) error
	// GetTotalSpent returns amount plus fee, a missing fee counting as
	// zero.
	GetTotalSpent(account domain.Account, tx Transaction) decimal.Decimal
	// GetMaxAmount returns balance minus fee, clamped at zero.
	GetMaxAmount(account domain.Account, tx Transaction) decimal.Decimal
	// CheckValidTransaction returns nil when the transaction is ready to
	// be signed, or the distinguishing domain error kind otherwise.
	CheckValidTransaction(account domain.Account, tx Transaction) error

	// SignAndBroadcast signs tx with the device identified by deviceID and
	// submits it to the network. Cancellation is honored up to the device
	// signature step; once the broadcast has been submitted the effect is
	// external and irreversible.
	SignAndBroadcast(ctx context.Context, account domain.Account, tx Transaction, deviceID string) <-chan SignEvent
}
