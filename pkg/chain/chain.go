package chain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrWalletNotFound is returned by GetWallet when the address has never
	// been seen on-chain. It marks a valid empty state, not a failure.
	ErrWalletNotFound = errors.New("wallet not found")
)

// WalletInfo is the on-chain state of an address.
type WalletInfo struct {
	Address   string
	PublicKey string
	Balance   decimal.Decimal
	Nonce     uint64
}

// FeeEstimates holds the fee bounds advertised by the network for a plain
// transfer, expressed in the chain's base unit.
type FeeEstimates struct {
	Min decimal.Decimal
	Avg decimal.Decimal
	Max decimal.Decimal
}

// Tx represents a raw transaction record fetched from a chain backend.
type Tx interface {
	Hash() string
	BlockHash() string
	// Epoch is the chain timestamp of the transaction, used as the paging
	// key when fetching incremental history.
	Epoch() int64
	Sender() string
	Recipient() string
	Amount() decimal.Decimal
	Fee() decimal.Decimal
	Confirmations() uint64
	Date() time.Time
	// Extra returns backend-specific attributes of the transaction, like a
	// memo or vendor field.
	Extra() map[string]string
}

// Client is the representation of a remote node/indexer that allows to look
// up wallets, fetch transaction history and broadcast signed transactions.
type Client interface {
	// GetWallet returns the on-chain state of the given address. It fails
	// with ErrWalletNotFound if the address never received funds.
	GetWallet(address string) (*WalletInfo, error)
	// GetTransactions returns the txs relative to the given address whose
	// epoch timestamp is equal or greater than sinceEpoch. A zero
	// sinceEpoch returns the full history.
	GetTransactions(address string, sinceEpoch int64) ([]Tx, error)
	// Broadcast attempts to add the given signed payload to the mempool
	// and returns its tx hash.
	Broadcast(signedPayload []byte) (string, error)
	// GetFeeEstimates returns the network fee bounds for a transfer.
	GetFeeEstimates() (*FeeEstimates, error)
}
