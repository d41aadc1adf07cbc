package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// accountIDVersion is bumped whenever the account id layout changes.
const accountIDVersion = "1"

// Account is the state of a wallet account as known by the application's
// account store. Bridges receive a read-only copy and describe updates with
// Patch values; they never mutate an Account in place.
type Account struct {
	ID               string
	SeedIdentifier   string
	DerivationMode   string
	Index            int
	FreshAddress     string
	FreshAddressPath string
	Name             string
	Balance          decimal.Decimal
	// BlockHeight is the chain paging key of the most recently synced
	// operation. For the ark family this is the epoch timestamp of the
	// newest transaction.
	BlockHeight int64
	Currency    Currency
	// Operations are confirmed operations, unique by ID and sorted
	// descending by date.
	Operations []Operation
	// PendingOperations are locally broadcast transfers not yet seen
	// confirmed on-chain.
	PendingOperations []Operation
	Unit              Unit
	Archived          bool
	LastSyncDate      time.Time
	// EndpointConfig optionally overrides the chain API endpoint.
	EndpointConfig string
}

// Patch is a pure transform describing how to update an Account. The account
// store is responsible for applying patches atomically.
type Patch func(Account) Account

// AccountIDParts holds the decoded segments of an account id.
type AccountIDParts struct {
	Type           string
	Version        string
	CurrencyID     string
	Address        string
	DerivationMode string
}

// NewAccountID encodes a stable account id from the bridge type, the
// currency, the address and the derivation mode.
func NewAccountID(bridgeType, currencyID, address, derivationMode string) string {
	return fmt.Sprintf(
		"%s:%s:%s:%s:%s",
		bridgeType, accountIDVersion, currencyID, address, derivationMode,
	)
}

// DecodeAccountID extracts the segments of an account id.
func DecodeAccountID(id string) (*AccountIDParts, error) {
	parts := strings.Split(id, ":")
	if len(parts) != 5 {
		return nil, ErrMalformedAccountID
	}
	return &AccountIDParts{
		Type:           parts[0],
		Version:        parts[1],
		CurrencyID:     parts[2],
		Address:        parts[3],
		DerivationMode: parts[4],
	}, nil
}
