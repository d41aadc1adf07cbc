package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// OperationTypeIn marks funds received by the account.
	OperationTypeIn OperationType = "IN"
	// OperationTypeOut marks funds sent by the account.
	OperationTypeOut OperationType = "OUT"
)

// OperationType is the direction of an operation relative to its account.
type OperationType string

// Operation is one confirmed (or locally pending) transfer of an account.
// Operations are immutable once created.
type Operation struct {
	// ID is globally unique per account: accountID + chain tx hash +
	// direction, so a self-send yields two distinct operations.
	ID        string
	Hash      string
	AccountID string
	Type      OperationType
	// Value moved by the operation. Fee-inclusive for outgoing operations.
	Value     decimal.Decimal
	Fee       decimal.Decimal
	BlockHash string
	// BlockHeight is the chain paging key of the tx. For the ark family
	// this is the epoch timestamp of the transaction.
	BlockHeight int64
	Senders     []string
	Recipients  []string
	Date        time.Time
	// TransactionSequenceNumber is a monotonic per-account ordering key.
	// Its exact semantics are currency-family specific, e.g. confirmation
	// count or account nonce.
	TransactionSequenceNumber uint64
	// Extra carries currency-specific attributes like a memo or vendor
	// field.
	Extra map[string]string
}

// NewOperationID encodes the unique id of an operation.
func NewOperationID(accountID, hash string, opType OperationType) string {
	return fmt.Sprintf("%s-%s-%s", accountID, hash, opType)
}
